package domain

import "strings"

// Feature tokens produced by the extractor. They match the canonical
// feature names used in the catalog definition.
const (
	FeatureWhiteboard   = "whiteboard"
	FeatureMonitors     = "monitors"
	FeaturePowerOutlets = "power outlets"
)

// intentRule is one entry of the fixed extraction table. Rules are
// evaluated independently and in table order; a rule that would set an
// already-set field is skipped, so the first matching rule wins for
// each field. Feature rules accumulate instead.
type intentRule struct {
	match func(text string) bool
	apply func(f *Filter)
}

// intentRules is the ordered rule table. Order matters only between
// rules that target the same field.
var intentRules = []intentRule{
	// Noise level
	{
		match: containsAny("quiet", "silent"),
		apply: setNoise(NoiseQuiet),
	},
	{
		match: containsAny("collaborative", "social"),
		apply: setNoise(NoiseCollaborative),
	},

	// Capacity. The large-group rule must precede the plain group rule.
	{
		match: both(containsAny("group", "team"), containsAny("large", "big")),
		apply: setCapacity(8),
	},
	{
		match: containsAny("group", "team"),
		apply: setCapacity(4),
	},

	// Features
	{
		match: containsAny("whiteboard"),
		apply: addFeature(FeatureWhiteboard),
	},
	{
		match: containsAny("monitor", "screen", "display"),
		apply: addFeature(FeatureMonitors),
	},
	{
		match: containsAny("power", "outlet", "charging"),
		apply: addFeature(FeaturePowerOutlets),
	},
}

// ExtractFilter maps a free-text utterance to a structured search
// filter using case-insensitive keyword matching over the rule table.
// It is pure and never fails: input that matches no rule yields the
// zero-value, fully unconstrained Filter.
func ExtractFilter(utterance string) Filter {
	text := strings.ToLower(utterance)

	var f Filter
	for _, rule := range intentRules {
		if rule.match(text) {
			rule.apply(&f)
		}
	}
	return f
}

func containsAny(keywords ...string) func(string) bool {
	return func(text string) bool {
		for _, kw := range keywords {
			if strings.Contains(text, kw) {
				return true
			}
		}
		return false
	}
}

func both(a, b func(string) bool) func(string) bool {
	return func(text string) bool {
		return a(text) && b(text)
	}
}

func setNoise(level string) func(*Filter) {
	return func(f *Filter) {
		if f.NoiseLevel == "" {
			f.NoiseLevel = level
		}
	}
}

func setCapacity(n int) func(*Filter) {
	return func(f *Filter) {
		if f.MinCapacity == 0 {
			f.MinCapacity = n
		}
	}
}

func addFeature(name string) func(*Filter) {
	return func(f *Filter) {
		for _, existing := range f.Features {
			if existing == name {
				return
			}
		}
		f.Features = append(f.Features, name)
	}
}
