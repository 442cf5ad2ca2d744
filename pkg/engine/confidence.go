package engine

const confidenceBase = 0.5

// gate pairs a bonus with the condition that earns it.
type gate struct {
	points float64
	when   bool
}

// evidence accumulates additive, independently gated bonuses. Both the
// pricing confidence estimator and the audit completion scorer use it:
// same accumulate-then-clamp pattern, different weights.
type evidence struct {
	total float64
}

// add grants the first open gate in the bucket. Passing a single gate
// is the degenerate one-condition bucket; passing several makes a
// tiered bucket where only the strongest matching tier counts.
func (e *evidence) add(bucket ...gate) {
	for _, g := range bucket {
		if g.when {
			e.total += g.points
			return
		}
	}
}

// scale grants a proportional share of weight, with fraction clamped
// to [0, 1].
func (e *evidence) scale(weight, fraction float64) {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	e.total += weight * fraction
}

// value clamps the accumulated total to [min, max].
func (e *evidence) value(min, max float64) float64 {
	if e.total < min {
		return min
	}
	if e.total > max {
		return max
	}
	return e.total
}

// Confidence scores how much evidence supports a price estimate, from
// 0.5 (metrics only) up to 1.0 (fully populated, verified profile).
// It measures data completeness and strength, not price magnitude.
func Confidence(p *Profile) float64 {
	e := evidence{total: confidenceBase}

	e.add(
		gate{0.20, p.Followers > 100_000},
		gate{0.15, p.Followers > 10_000},
		gate{0.10, p.Followers > 1_000},
	)
	e.add(
		gate{0.15, p.EngagementRate > 5},
		gate{0.10, p.EngagementRate > 2},
		gate{0.05, p.EngagementRate > 1},
	)
	e.add(gate{0.10, p.AvgViews30d > 0})
	e.add(
		gate{0.10, p.RecentPosts >= 12},
		gate{0.05, p.RecentPosts >= 6},
	)
	e.add(gate{0.05, len(p.Biography) > 50})
	e.add(gate{0.10, p.Verified})

	return e.value(0, 1)
}
