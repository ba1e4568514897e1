package domain

import "testing"

func TestFilterMatchesSpace(t *testing.T) {
	space := &Space{
		ID:         "CP-324B",
		Capacity:   8,
		Features:   []string{"whiteboard", "monitors", "power outlets"},
		NoiseLevel: NoiseModerate,
	}

	tests := []struct {
		name    string
		filter  Filter
		matches bool
	}{
		{
			name:    "empty filter matches everything",
			filter:  Filter{},
			matches: true,
		},
		{
			name:    "capacity satisfied",
			filter:  Filter{MinCapacity: 8},
			matches: true,
		},
		{
			name:    "capacity too small",
			filter:  Filter{MinCapacity: 9},
			matches: false,
		},
		{
			name:    "all requested features present",
			filter:  Filter{Features: []string{"whiteboard", "monitors"}},
			matches: true,
		},
		{
			name:    "features are conjunctive",
			filter:  Filter{Features: []string{"whiteboard", "soundproofing"}},
			matches: false,
		},
		{
			name:    "noise level match",
			filter:  Filter{NoiseLevel: NoiseModerate},
			matches: true,
		},
		{
			name:    "noise level mismatch",
			filter:  Filter{NoiseLevel: NoiseQuiet},
			matches: false,
		},
		{
			name: "all predicates together",
			filter: Filter{
				NoiseLevel:  NoiseModerate,
				MinCapacity: 4,
				Features:    []string{"power outlets"},
			},
			matches: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.MatchesSpace(space); got != tt.matches {
				t.Errorf("MatchesSpace() = %v, want %v", got, tt.matches)
			}
		})
	}
}

func TestFilterWantsSlot(t *testing.T) {
	if (Filter{Date: "2025-05-17"}).WantsSlot() {
		t.Error("date alone must not target a slot")
	}
	if (Filter{TimeSlot: "10:00"}).WantsSlot() {
		t.Error("time without date must not target a slot")
	}
	if !(Filter{Date: "2025-05-17", TimeSlot: "10:00"}).WantsSlot() {
		t.Error("date plus time must target a slot")
	}
}
