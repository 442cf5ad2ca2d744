package engine

import (
	"errors"
	"fmt"
)

var ErrInvalidRates = errors.New("invalid rates")

// BaseRate is the reference price per 1,000 followers for one
// (platform, format) pair, before multipliers.
type BaseRate struct {
	Platform Platform `json:"platform" yaml:"platform"`
	Format   Format   `json:"format" yaml:"format"`
	Rate     float64  `json:"rate" yaml:"rate"`
}

// FormatMultiplier scales a price by content production complexity.
type FormatMultiplier struct {
	Format     Format  `json:"format" yaml:"format"`
	Multiplier float64 `json:"multiplier" yaml:"multiplier"`
}

// MatchMultiplier is one ordered lookup rule: the first rule whose
// pattern is contained in the scanned text wins. Order in the parent
// slice is the tie-break and is part of the contract.
type MatchMultiplier struct {
	Name       string   `json:"name" yaml:"name"`
	Patterns   []string `json:"patterns" yaml:"patterns"`
	Multiplier float64  `json:"multiplier" yaml:"multiplier"`
}

// Rates is the static reference data behind rate card computation.
// It is loaded once at startup and treated as immutable afterwards.
type Rates struct {
	BaseRates  []BaseRate         `json:"base_rates" yaml:"base_rates"`
	Complexity []FormatMultiplier `json:"complexity" yaml:"complexity"`
	Niches     []MatchMultiplier  `json:"niches" yaml:"niches"`
	Countries  []MatchMultiplier  `json:"countries" yaml:"countries"`

	// AudienceDiscount scales a country multiplier matched through
	// audience demographics rather than the creator's own location.
	AudienceDiscount float64 `json:"audience_discount" yaml:"audience_discount"`
}

// DefaultRates returns the hand-authored reference tables. The values
// are deliberately constants, not fit from market data.
func DefaultRates() *Rates {
	return &Rates{
		BaseRates: []BaseRate{
			{Platform: PlatformInstagram, Format: FormatPost, Rate: 30},
			{Platform: PlatformInstagram, Format: FormatStory, Rate: 15},
			{Platform: PlatformInstagram, Format: FormatReel, Rate: 45},
			{Platform: PlatformTikTok, Format: FormatVideo, Rate: 25},
			{Platform: PlatformYouTube, Format: FormatVideo, Rate: 60},
			{Platform: PlatformFacebook, Format: FormatPost, Rate: 20},
			{Platform: PlatformFacebook, Format: FormatVideo, Rate: 30},
		},
		Complexity: []FormatMultiplier{
			{Format: FormatVideo, Multiplier: 1.5},
			{Format: FormatReel, Multiplier: 1.3},
			{Format: FormatPost, Multiplier: 1.0},
			{Format: FormatStory, Multiplier: 0.8},
		},
		Niches: []MatchMultiplier{
			{Name: "beauty", Patterns: []string{"beauty"}, Multiplier: 1.8},
			{Name: "fashion", Patterns: []string{"fashion"}, Multiplier: 1.6},
			{Name: "tech", Patterns: []string{"tech"}, Multiplier: 1.5},
			{Name: "finance", Patterns: []string{"finance"}, Multiplier: 1.7},
			{Name: "fitness", Patterns: []string{"fitness"}, Multiplier: 1.4},
			{Name: "food", Patterns: []string{"food"}, Multiplier: 1.3},
			{Name: "travel", Patterns: []string{"travel"}, Multiplier: 1.5},
			{Name: "lifestyle", Patterns: []string{"lifestyle"}, Multiplier: 1.2},
			{Name: "gaming", Patterns: []string{"gaming"}, Multiplier: 1.3},
			{Name: "education", Patterns: []string{"education"}, Multiplier: 1.1},
		},
		Countries: []MatchMultiplier{
			{Name: "United States", Patterns: []string{"united states", "usa"}, Multiplier: 1.5},
			{Name: "United Kingdom", Patterns: []string{"united kingdom", "uk"}, Multiplier: 1.4},
			{Name: "Canada", Patterns: []string{"canada"}, Multiplier: 1.3},
			{Name: "Australia", Patterns: []string{"australia"}, Multiplier: 1.3},
			{Name: "Germany", Patterns: []string{"germany"}, Multiplier: 1.2},
			{Name: "France", Patterns: []string{"france"}, Multiplier: 1.2},
		},
		AudienceDiscount: 0.8,
	}
}

// Validate checks rates loaded from an operator-edited file.
func (r *Rates) Validate() error {
	if r == nil {
		return fmt.Errorf("%w: nil", ErrInvalidRates)
	}
	if len(r.BaseRates) == 0 {
		return fmt.Errorf("%w: at least one base rate is required", ErrInvalidRates)
	}
	for _, br := range r.BaseRates {
		if br.Platform == "" || br.Format == "" {
			return fmt.Errorf("%w: base rate platform and format are required", ErrInvalidRates)
		}
		if br.Rate <= 0 {
			return fmt.Errorf("%w: base rate for %s/%s must be positive, got %v",
				ErrInvalidRates, br.Platform, br.Format, br.Rate)
		}
	}
	for _, c := range r.Complexity {
		if c.Multiplier <= 0 {
			return fmt.Errorf("%w: complexity multiplier for %s must be positive, got %v",
				ErrInvalidRates, c.Format, c.Multiplier)
		}
	}
	for _, m := range append(append([]MatchMultiplier{}, r.Niches...), r.Countries...) {
		if len(m.Patterns) == 0 {
			return fmt.Errorf("%w: rule %q has no patterns", ErrInvalidRates, m.Name)
		}
		if m.Multiplier <= 0 {
			return fmt.Errorf("%w: multiplier for rule %q must be positive, got %v",
				ErrInvalidRates, m.Name, m.Multiplier)
		}
	}
	if r.AudienceDiscount <= 0 || r.AudienceDiscount > 1 {
		return fmt.Errorf("%w: audience discount must be in (0, 1], got %v",
			ErrInvalidRates, r.AudienceDiscount)
	}
	return nil
}

// baseRatesFor returns the configured rows for one platform, in
// declaration order.
func (r *Rates) baseRatesFor(platform Platform) []BaseRate {
	rows := make([]BaseRate, 0, len(r.BaseRates))
	for _, br := range r.BaseRates {
		if br.Platform == platform {
			rows = append(rows, br)
		}
	}
	return rows
}
