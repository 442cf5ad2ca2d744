package engine

import (
	"errors"
	"fmt"
	"math"
)

const (
	// 2% engagement is the reference baseline: creators above or below
	// it scale proportionally.
	baselineEngagement = 0.02

	// Tiers are fixed ratios of the base price, not percentiles. That
	// trades statistical rigor for explainability and determinism.
	tierConservativeRatio = 0.8
	tierPremiumRatio      = 1.6

	// Hard price floors per tier, in whole currency units. Degenerate
	// inputs (zero followers, zero engagement) collapse to the floor,
	// never below it.
	floorConservative = 10
	floorExpected     = 15
	floorPremium      = 25
)

var ErrNoBaseRates = errors.New("no base rates configured")

// RateRow is the priced output for one (platform, format) pair.
type RateRow struct {
	Platform     Platform `json:"platform" yaml:"platform"`
	Format       Format   `json:"format" yaml:"format"`
	Conservative int64    `json:"conservative" yaml:"conservative"`
	Expected     int64    `json:"expected" yaml:"expected"`
	Premium      int64    `json:"premium" yaml:"premium"`
	Confidence   float64  `json:"confidence" yaml:"confidence"`
	Rationale    []string `json:"rationale" yaml:"rationale"`
}

// Multipliers records the resolved profile-level factors behind a card.
type Multipliers struct {
	Niche    float64 `json:"niche" yaml:"niche"`
	Audience float64 `json:"audience" yaml:"audience"`
	Trust    float64 `json:"trust" yaml:"trust"`
}

// RateCard is the full pricing output for one profile snapshot.
type RateCard struct {
	Profile           ProfileSummary `json:"profile" yaml:"profile"`
	Multipliers       Multipliers    `json:"multipliers" yaml:"multipliers"`
	Rows              []RateRow      `json:"rows" yaml:"rows"`
	OverallConfidence float64        `json:"overall_confidence" yaml:"overallConfidence"`
}

// ComputeRateCard prices every content format configured for the
// profile's platform. The computation is pure and deterministic:
// identical inputs yield identical cards.
func ComputeRateCard(p *Profile, rates *Rates) (*RateCard, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := rates.Validate(); err != nil {
		return nil, err
	}

	baseRates := rates.baseRatesFor(p.Platform)
	if len(baseRates) == 0 {
		return nil, fmt.Errorf("%w for platform %q", ErrNoBaseRates, p.Platform)
	}

	niche := NicheMultiplier(rates, p.Biography, p.Categories)
	audience := AudienceMultiplier(rates, p.Location, p.Demographics)
	trust := TrustMultiplier(p.Verified, p.HealthScore, p.Consistency)
	confidence := Confidence(p)

	card := &RateCard{
		Profile: p.Summary(),
		Multipliers: Multipliers{
			Niche:    niche,
			Audience: audience,
			Trust:    trust,
		},
		Rows: make([]RateRow, 0, len(baseRates)),
	}

	var confidenceSum float64
	for _, br := range baseRates {
		complexity := ComplexityMultiplier(rates, br.Format)
		base := basePrice(br.Rate, p.Followers, p.EngagementRate, niche, audience, complexity, trust)

		rationale := buildRationale(rowContext{
			profile:    p,
			format:     br.Format,
			niche:      niche,
			nicheName:  nicheName(rates, p.Biography, p.Categories),
			audience:   audience,
			market:     audienceMarket(rates, p.Location, p.Demographics),
			complexity: complexity,
			trust:      trust,
		})

		card.Rows = append(card.Rows, RateRow{
			Platform:     br.Platform,
			Format:       br.Format,
			Conservative: roundWithFloor(base*tierConservativeRatio, floorConservative),
			Expected:     roundWithFloor(base, floorExpected),
			Premium:      roundWithFloor(base*tierPremiumRatio, floorPremium),
			Confidence:   confidence,
			Rationale:    topRationale(rationale),
		})
		confidenceSum += confidence
	}

	card.OverallConfidence = confidenceSum / float64(len(card.Rows))
	return card, nil
}

// basePrice combines the per-1k-follower base rate with audience size,
// engagement relative to the 2% baseline, and the four multipliers.
func basePrice(rate float64, followers int64, engagementPercent, niche, audience, complexity, trust float64) float64 {
	return rate *
		(float64(followers) / 1000) *
		((engagementPercent / 100) / baselineEngagement) *
		niche * audience * complexity * trust
}

// roundWithFloor rounds to whole currency units and enforces the tier
// floor as a safety net, not an error condition.
func roundWithFloor(v float64, floor int64) int64 {
	r := int64(math.Round(v))
	if r < floor {
		return floor
	}
	return r
}
