package engine

import "strings"

const (
	defaultMultiplier = 1.0
	trustCap          = 1.5
)

// firstMatch scans ordered rules and returns the first one whose
// pattern is contained in text. Rule order is the priority: when
// several patterns would match, the first listed rule wins.
func firstMatch(rules []MatchMultiplier, text string) (MatchMultiplier, bool) {
	text = strings.ToLower(text)
	for _, rule := range rules {
		for _, pattern := range rule.Patterns {
			if strings.Contains(text, pattern) {
				return rule, true
			}
		}
	}
	return MatchMultiplier{}, false
}

// NicheMultiplier resolves the niche factor from the biography and
// category tags. Unrecognized niches price at the default 1.0.
func NicheMultiplier(rates *Rates, biography string, categories []string) float64 {
	text := biography + " " + strings.Join(categories, " ")
	if rule, ok := firstMatch(rates.Niches, text); ok {
		return rule.Multiplier
	}
	return defaultMultiplier
}

// AudienceMultiplier resolves the market factor. The creator's own
// stated location is the strongest signal; failing that, the top
// audience location counts at a discount. The result never drops
// below the 1.0 default.
func AudienceMultiplier(rates *Rates, location string, demographics *Demographics) float64 {
	if rule, ok := firstMatch(rates.Countries, location); ok {
		return rule.Multiplier
	}
	if demographics != nil && len(demographics.TopLocations) > 0 {
		top := demographics.TopLocations[0]
		if rule, ok := firstMatch(rates.Countries, top.Country); ok {
			discounted := rule.Multiplier * rates.AudienceDiscount
			if discounted < defaultMultiplier {
				return defaultMultiplier
			}
			return discounted
		}
	}
	return defaultMultiplier
}

// audienceMarket reports the matched country name for rationale text.
func audienceMarket(rates *Rates, location string, demographics *Demographics) string {
	if rule, ok := firstMatch(rates.Countries, location); ok {
		return rule.Name
	}
	if demographics != nil && len(demographics.TopLocations) > 0 {
		if rule, ok := firstMatch(rates.Countries, demographics.TopLocations[0].Country); ok {
			return rule.Name
		}
	}
	return ""
}

// TrustMultiplier accumulates account credibility signals, capped at 1.5.
func TrustMultiplier(verified bool, healthScore *float64, consistency Consistency) float64 {
	m := defaultMultiplier
	if verified {
		m += 0.2
	}
	if healthScore != nil {
		switch {
		case *healthScore > 80:
			m += 0.15
		case *healthScore > 60:
			m += 0.10
		}
	}
	if consistency == ConsistencyHigh || consistency == ConsistencyExcellent {
		m += 0.10
	}
	if m > trustCap {
		return trustCap
	}
	return m
}

// ComplexityMultiplier looks up the production complexity factor for a
// content format. Unknown formats price at the default 1.0.
func ComplexityMultiplier(rates *Rates, format Format) float64 {
	for _, c := range rates.Complexity {
		if c.Format == format {
			return c.Multiplier
		}
	}
	return defaultMultiplier
}

// nicheName reports the matched niche for rationale text.
func nicheName(rates *Rates, biography string, categories []string) string {
	text := biography + " " + strings.Join(categories, " ")
	if rule, ok := firstMatch(rates.Niches, text); ok {
		return rule.Name
	}
	return ""
}
