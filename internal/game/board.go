package game

// TeamColor identifies one of the two sides. Using a dedicated type instead
// of a plain string makes code safer and self-documenting.
type TeamColor string

const (
	Red  TeamColor = "red"
	Blue TeamColor = "blue"
)

// Teams lists both sides in acting order (red acts first).
var Teams = [2]TeamColor{Red, Blue}

// Entity ids for the fixed ten-entity roster.
const (
	RusGov = "rus_gov"
	Bear   = "bear"
	Trolls = "trolls"
	SCS    = "scs"
	Ros    = "ros"

	UKGov  = "uk_gov"
	PLC    = "plc"
	Elect  = "elect"
	GCHQ   = "gchq"
	Energy = "energy"
)

// Role names the five player seats of a team.
type Role string

const (
	RoleGovernment Role = "government"
	RoleIndustry   Role = "industry"
	RolePeople     Role = "people"
	RoleSecurity   Role = "security"
	RoleEnergy     Role = "energy"
)

// Roles lists the seats in roster order.
var Roles = [5]Role{RoleGovernment, RoleIndustry, RolePeople, RoleSecurity, RoleEnergy}

// GrowthTrack remembers the vitality recorded at the last scoring checkpoint
// and the current streak length. Used by the recruitment-drive and
// grow-capacity victory-point rules.
type GrowthTrack struct {
	Vitality int `json:"vitality"`
	Count    int `json:"count"`
}

// Traits holds the named modifiers an entity can carry. Counters tick down
// once per resolved turn; booleans are either permanent grants or one-shot
// flags cleared by the decay pass.
type Traits struct {
	// Duration counters (turns remaining).
	SoftwareUpdate int `json:"software_update,omitempty"`
	Education      int `json:"education,omitempty"`
	BargainingChip int `json:"bargaining_chip,omitempty"`
	Paralyzed      int `json:"paralyzed,omitempty"`
	CannotAttack   int `json:"cannot_attack,omitempty"`
	CannotBid      int `json:"cannot_bid,omitempty"`
	CannotAct      int `json:"cannot_perform_actions,omitempty"`

	// One-shot flags, cleared after a turn of effect.
	Stuxnet      bool `json:"stuxnet,omitempty"`
	Ransomware   bool `json:"ransomware,omitempty"`
	BankingError bool `json:"banking_error,omitempty"`
	Embargoed    bool `json:"embargoed,omitempty"`
	PeopleRevolt bool `json:"people_revolt,omitempty"`

	// Permanent grants.
	NetworkPolicy   bool `json:"network_policy,omitempty"`
	CyberInvestment bool `json:"cyber_investment,omitempty"`

	// Recovery management: heal +1 per turn while below the recorded target.
	RecoveryActive bool `json:"recovery_active,omitempty"`
	RecoveryTarget int  `json:"recovery_target,omitempty"`

	// Checkpoint trackers for victory-point scoring.
	Growth             *GrowthTrack `json:"growth,omitempty"`
	LastGrowthVitality int          `json:"last_growth_vitality,omitempty"`
}

// Entity is one of the ten playable units. Connections and attack targets
// reference sibling/opponent entities by id, never by pointer, so the board
// stays trivially serializable and history snapshots cannot alias.
type Entity struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Connections   []string `json:"connections"`
	Attacks       []string `json:"attacks"`
	Resource      int      `json:"resource"`
	Vitality      int      `json:"vitality"`
	VictoryPoints int      `json:"victory_points"`
	Traits        Traits   `json:"traits"`
}

// MarketItem is one visible black-market row. HasBid records that a nonzero
// bid landed on this row at some point, so an uncontested standing bid can be
// told apart from a row nobody ever bid on.
type MarketItem struct {
	Asset  string `json:"asset"`
	Bid    int    `json:"bid"`
	HasBid bool   `json:"has_bid"`
}

// TeamState is one side of the board. Entities keep roster order (a slice,
// not a map) so iteration is deterministic; look up by id via Entity.
type TeamState struct {
	Entities []*Entity `json:"entities"`
	Assets   []string  `json:"assets"`
}

// Entity returns the entity with the given id, or nil.
func (ts *TeamState) Entity(id string) *Entity {
	for _, e := range ts.Entities {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// Connected returns the entities adjacent to the given id within this team.
// Adjacency is undirected; the config loader normalizes connection lists to
// be symmetric so a single pass suffices.
func (ts *TeamState) Connected(id string) []*Entity {
	e := ts.Entity(id)
	if e == nil {
		return nil
	}
	out := make([]*Entity, 0, len(e.Connections))
	for _, cid := range e.Connections {
		if c := ts.Entity(cid); c != nil {
			out = append(out, c)
		}
	}
	return out
}

// BoardState is the single mutable document describing a game in progress.
type BoardState struct {
	Turn            int                      `json:"turn"`
	Teams           map[TeamColor]*TeamState `json:"teams"`
	BlackMarket     []MarketItem             `json:"black_market"`
	BlackMarketPool []string                 `json:"black_market_pool"`
}

// Entity finds an entity by id on either team.
func (b *BoardState) Entity(id string) *Entity {
	for _, color := range Teams {
		if e := b.Teams[color].Entity(id); e != nil {
			return e
		}
	}
	return nil
}

// ActiveTeam returns the side acting this turn. Red acts on even turns.
func (b *BoardState) ActiveTeam() TeamColor {
	return Teams[b.Turn%2]
}

// OpposingTeam returns the side not acting this turn.
func (b *BoardState) OpposingTeam() TeamColor {
	return Teams[1-b.Turn%2]
}

// Government returns a side's government entity (rus_gov or uk_gov).
func (b *BoardState) Government(color TeamColor) *Entity {
	if color == Red {
		return b.Teams[Red].Entity(RusGov)
	}
	return b.Teams[Blue].Entity(UKGov)
}

// Clone produces a deep copy suitable for appending to history. Mutating the
// live board afterwards must not affect the snapshot.
func (b *BoardState) Clone() *BoardState {
	out := &BoardState{
		Turn:  b.Turn,
		Teams: make(map[TeamColor]*TeamState, len(b.Teams)),
	}
	out.BlackMarket = append([]MarketItem(nil), b.BlackMarket...)
	out.BlackMarketPool = append([]string(nil), b.BlackMarketPool...)
	for color, ts := range b.Teams {
		cp := &TeamState{Assets: append([]string(nil), ts.Assets...)}
		for _, e := range ts.Entities {
			ec := *e
			ec.Connections = append([]string(nil), e.Connections...)
			ec.Attacks = append([]string(nil), e.Attacks...)
			if e.Traits.Growth != nil {
				g := *e.Traits.Growth
				ec.Traits.Growth = &g
			}
			cp.Entities = append(cp.Entities, &ec)
		}
		out.Teams[color] = cp
	}
	return out
}
