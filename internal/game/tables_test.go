package game

import "testing"

func TestAttackResultTable_KnownMargins(t *testing.T) {
	cases := []struct {
		investment, roll, margin int
	}{
		{1, 2, 1},
		{1, 6, 2},
		{2, 1, 0},
		{3, 1, -1},
		{3, 6, 3},
		{5, 1, -2},
		{5, 3, 2},
		{6, 3, 0},
		{6, 6, 6},
	}
	for _, c := range cases {
		if got := AttackResultTable[c.investment][c.roll]; got != c.margin {
			t.Fatalf("table[%d][%d] = %d, want %d", c.investment, c.roll, got, c.margin)
		}
	}
}

func TestVitalityRecoveryCost(t *testing.T) {
	want := [7]int{0, 1, 2, 4, 5, 6, 7}
	if VitalityRecoveryCost != want {
		t.Fatalf("recovery cost table = %v, want %v", VitalityRecoveryCost, want)
	}
}

func TestCalculateMaxRevitalization(t *testing.T) {
	cases := []struct{ resource, max int }{
		{-1, 0},
		{0, 0},
		{1, 1},
		{2, 2},
		{3, 2},
		{4, 4},
		{6, 6},
		{10, 6},
	}
	for _, c := range cases {
		if got := CalculateMaxRevitalization(c.resource); got != c.max {
			t.Fatalf("CalculateMaxRevitalization(%d) = %d, want %d", c.resource, got, c.max)
		}
	}
}

func TestEndOfMonth(t *testing.T) {
	if got := EndOfMonth(1); got != 1 {
		t.Fatalf("EndOfMonth(1) = %d, want 1", got)
	}
	if got := EndOfMonth(12); got != 23 {
		t.Fatalf("EndOfMonth(12) = %d, want 23", got)
	}
	if FinalTurn != 23 {
		t.Fatalf("FinalTurn = %d, want 23", FinalTurn)
	}
	if got := EndsOfMonths(4, 8, 12); got[0] != 7 || got[1] != 15 || got[2] != 23 {
		t.Fatalf("EndsOfMonths(4,8,12) = %v, want [7 15 23]", got)
	}
}

func TestTurnToMonth(t *testing.T) {
	if got := TurnToMonth(0); got != "January / Red team's turn" {
		t.Fatalf("TurnToMonth(0) = %q", got)
	}
	if got := TurnToMonth(1); got != "January / Blue team's turn" {
		t.Fatalf("TurnToMonth(1) = %q", got)
	}
	if got := TurnToMonth(23); got != "December / Blue team's turn" {
		t.Fatalf("TurnToMonth(23) = %q", got)
	}
	if got := TurnToMonth(24); got != "Game Over" {
		t.Fatalf("TurnToMonth(24) = %q", got)
	}
}
