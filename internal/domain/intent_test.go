package domain

import (
	"testing"
)

func TestExtractFilter(t *testing.T) {
	tests := []struct {
		name             string
		utterance        string
		expectedNoise    string
		expectedCapacity int
		expectedFeatures []string
	}{
		{
			name:          "quiet keyword sets noise level",
			utterance:     "I need somewhere quiet to study",
			expectedNoise: NoiseQuiet,
		},
		{
			name:          "collaborative keyword sets noise level",
			utterance:     "looking for a collaborative area",
			expectedNoise: NoiseCollaborative,
		},
		{
			name:          "quiet wins over collaborative in table order",
			utterance:     "quiet but also collaborative",
			expectedNoise: NoiseQuiet,
		},
		{
			name:             "large group sets capacity 8",
			utterance:        "we are a large group",
			expectedCapacity: 8,
		},
		{
			name:             "big team sets capacity 8",
			utterance:        "room for a big team please",
			expectedCapacity: 8,
		},
		{
			name:             "plain group sets capacity 4",
			utterance:        "a room for my group",
			expectedCapacity: 4,
		},
		{
			name:             "independent rules both fire",
			utterance:        "I need a quiet room for a big group",
			expectedNoise:    NoiseQuiet,
			expectedCapacity: 8,
		},
		{
			name:             "whiteboard feature",
			utterance:        "somewhere with a whiteboard",
			expectedFeatures: []string{FeatureWhiteboard},
		},
		{
			name:             "monitor synonyms map to monitors",
			utterance:        "need a big screen to present",
			expectedFeatures: []string{FeatureMonitors},
		},
		{
			name:             "power synonyms map to power outlets",
			utterance:        "need outlets for charging laptops",
			expectedFeatures: []string{FeaturePowerOutlets},
		},
		{
			name:      "multiple features accumulate",
			utterance: "whiteboard and power outlets please",
			expectedFeatures: []string{
				FeatureWhiteboard,
				FeaturePowerOutlets,
			},
		},
		{
			name:      "unmatched utterance yields unconstrained filter",
			utterance: "hello there",
		},
		{
			name:      "empty utterance yields unconstrained filter",
			utterance: "",
		},
		{
			name:             "matching is case-insensitive",
			utterance:        "QUIET room with a WHITEBOARD",
			expectedNoise:    NoiseQuiet,
			expectedFeatures: []string{FeatureWhiteboard},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := ExtractFilter(tt.utterance)

			if f.NoiseLevel != tt.expectedNoise {
				t.Errorf("NoiseLevel = %q, want %q", f.NoiseLevel, tt.expectedNoise)
			}
			if f.MinCapacity != tt.expectedCapacity {
				t.Errorf("MinCapacity = %d, want %d", f.MinCapacity, tt.expectedCapacity)
			}
			if !stringSlicesEqual(f.Features, tt.expectedFeatures) {
				t.Errorf("Features = %v, want %v", f.Features, tt.expectedFeatures)
			}
			if f.Date != "" || f.TimeSlot != "" {
				t.Errorf("extractor must not set date/time, got date=%q time=%q", f.Date, f.TimeSlot)
			}
		})
	}
}

func TestExtractFilterFirstMatchWinsPerField(t *testing.T) {
	// The large-group rule precedes the plain group rule; once capacity
	// is set the later rule must not overwrite it.
	f := ExtractFilter("a big group, just a small group really")
	if f.MinCapacity != 8 {
		t.Errorf("MinCapacity = %d, want 8 (first matching rule wins)", f.MinCapacity)
	}
}

func stringSlicesEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
