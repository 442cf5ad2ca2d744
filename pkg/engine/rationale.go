package engine

import "fmt"

// rationaleLimit caps the externally visible justification list.
const rationaleLimit = 3

// rowContext carries everything a rationale rule may inspect: the
// profile plus the resolved multipliers that drove the row's price.
type rowContext struct {
	profile    *Profile
	format     Format
	niche      float64
	nicheName  string
	audience   float64
	market     string
	complexity float64
	trust      float64
}

// rationaleRule is one condition -> sentence pair. Rules are evaluated
// in declaration order and that order is part of the contract: the
// exported rationale is the first N fired rules, so reordering this
// list changes output.
type rationaleRule struct {
	when func(c rowContext) bool
	text func(c rowContext) string
}

var rationaleRules = []rationaleRule{
	{
		when: func(c rowContext) bool { return c.profile.Followers > 10_000 },
		text: func(c rowContext) string {
			if c.profile.Followers > 100_000 {
				return fmt.Sprintf("Large audience of %s followers commands premium rates", formatCount(c.profile.Followers))
			}
			return fmt.Sprintf("Established audience of %s followers", formatCount(c.profile.Followers))
		},
	},
	{
		when: func(c rowContext) bool { return c.profile.EngagementRate > 2 },
		text: func(c rowContext) string {
			if c.profile.EngagementRate > 5 {
				return fmt.Sprintf("Exceptional engagement at %.1f%%, well above the 2%% baseline", c.profile.EngagementRate)
			}
			return fmt.Sprintf("Above-baseline engagement at %.1f%%", c.profile.EngagementRate)
		},
	},
	{
		when: func(c rowContext) bool { return c.niche > defaultMultiplier },
		text: func(c rowContext) string {
			if c.niche >= 1.4 {
				return fmt.Sprintf("High-value %s niche increases advertiser demand", c.nicheName)
			}
			return fmt.Sprintf("Recognized %s niche", c.nicheName)
		},
	},
	{
		when: func(c rowContext) bool { return c.audience > defaultMultiplier },
		text: func(c rowContext) string {
			return fmt.Sprintf("Reach into the high-value %s market", c.market)
		},
	},
	{
		when: func(c rowContext) bool { return c.complexity > defaultMultiplier },
		text: func(c rowContext) string {
			return fmt.Sprintf("Higher production value of %s content", c.format)
		},
	},
	{
		when: func(c rowContext) bool { return c.trust >= 1.2 },
		text: func(c rowContext) string {
			return "Strong trust signals support premium pricing"
		},
	},
}

// buildRationale evaluates every rule and returns all fired sentences
// in rule order. The full list stays internal; callers expose only the
// first rationaleLimit entries.
func buildRationale(c rowContext) []string {
	fired := make([]string, 0, len(rationaleRules))
	for _, rule := range rationaleRules {
		if rule.when(c) {
			fired = append(fired, rule.text(c))
		}
	}
	return fired
}

// topRationale slices the exported prefix of the full list.
func topRationale(full []string) []string {
	if len(full) > rationaleLimit {
		return full[:rationaleLimit]
	}
	return full
}

func formatCount(n int64) string {
	switch {
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.1fk", float64(n)/1_000)
	default:
		return fmt.Sprintf("%d", n)
	}
}
