package game

// AttackResultTable maps [investment][die roll] to a success margin.
// Positive margins deal that much damage to the target, negative margins
// backfire on the attacker, zero is a whiff. Column 0 is unused padding so
// die rolls 1-6 index directly.
var AttackResultTable = [7][7]int{
	{0, 0, 0, 0, 0, 0, 0},
	{0, 0, 1, 1, 1, 1, 2},
	{0, 0, 1, 1, 1, 2, 2},
	{0, -1, 0, 1, 2, 2, 3},
	{0, -1, 0, 1, 2, 3, 4},
	{0, -2, -1, 2, 3, 3, 4},
	{0, -2, -1, 0, 3, 5, 6},
}

// MaxInvestment is the largest resource commitment the table resolves.
const MaxInvestment = 6

// VitalityRecoveryCost is the resource price of recovering N vitality.
var VitalityRecoveryCost = [7]int{0, 1, 2, 4, 5, 6, 7}

// vitalityMaxRecovery maps available resource to the largest affordable
// vitality recovery.
var vitalityMaxRecovery = [7]int{0, 1, 2, 2, 4, 5, 6}

// CalculateMaxRevitalization returns the most vitality an entity can afford
// to recover with the given resource on hand.
func CalculateMaxRevitalization(availableResource int) int {
	if availableResource < 0 {
		return 0
	}
	if availableResource >= len(vitalityMaxRecovery) {
		return vitalityMaxRecovery[len(vitalityMaxRecovery)-1]
	}
	return vitalityMaxRecovery[availableResource]
}

var monthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// EndOfMonth returns the turn number at which the given 1-based month ends.
func EndOfMonth(month int) int {
	return 2*month - 1
}

// EndsOfMonths maps each month through EndOfMonth.
func EndsOfMonths(months ...int) []int {
	out := make([]int, len(months))
	for i, m := range months {
		out[i] = EndOfMonth(m)
	}
	return out
}

// FinalTurn is the turn at which the game ends (end of month 12).
var FinalTurn = EndOfMonth(12)

// TurnToMonth renders a turn as a display string for the board view.
func TurnToMonth(turn int) string {
	month := turn / 2
	if month >= len(monthNames) {
		return "Game Over"
	}
	color := Teams[turn%2]
	return monthNames[month] + " / " + titleCase(string(color)) + " team's turn"
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}

// TotalVPs sums victory points across a side's entities.
func TotalVPs(ts *TeamState) int {
	total := 0
	for _, e := range ts.Entities {
		total += e.VictoryPoints
	}
	return total
}
