package engine

import (
	"math"
	"strings"
)

// PerformanceMetrics holds the six normalized quality dimensions plus
// their unweighted mean. Every score is clamped to 0-100.
type PerformanceMetrics struct {
	EngagementScore         int `json:"engagement_score" yaml:"engagementScore"`
	AuthenticityScore       int `json:"authenticity_score" yaml:"authenticityScore"`
	AudienceQualityScore    int `json:"audience_quality_score" yaml:"audienceQualityScore"`
	ContentConsistencyScore int `json:"content_consistency_score" yaml:"contentConsistencyScore"`
	BrandFitScore           int `json:"brand_fit_score" yaml:"brandFitScore"`
	GrowthTrendScore        int `json:"growth_trend_score" yaml:"growthTrendScore"`
	OverallRating           int `json:"overall_rating" yaml:"overallRating"`
}

// AuditReport is the quality assessment output for one profile snapshot.
type AuditReport struct {
	Profile         ProfileSummary     `json:"profile" yaml:"profile"`
	Performance     PerformanceMetrics `json:"performance" yaml:"performance"`
	CompletionScore int                `json:"completion_score" yaml:"completionScore"`
	Recommendations []string           `json:"recommendations" yaml:"recommendations"`
}

// ComputeAuditReport scores six independent quality dimensions, the
// profile completeness, and the improvement recommendations for one
// profile. Pure and deterministic, like ComputeRateCard.
func ComputeAuditReport(p *Profile) (*AuditReport, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	m := PerformanceMetrics{
		EngagementScore:         engagementScore(p.EngagementRate),
		AuthenticityScore:       authenticityScore(p),
		AudienceQualityScore:    audienceQualityScore(p),
		ContentConsistencyScore: contentConsistencyScore(p),
		BrandFitScore:           brandFitScore(p),
		GrowthTrendScore:        growthTrendScore(p.FollowerGrowth),
	}
	m.OverallRating = int(math.Round(float64(
		m.EngagementScore+m.AuthenticityScore+m.AudienceQualityScore+
			m.ContentConsistencyScore+m.BrandFitScore+m.GrowthTrendScore) / 6))

	completion := CompletionScore(p)

	return &AuditReport{
		Profile:         p.Summary(),
		Performance:     m,
		CompletionScore: completion,
		Recommendations: recommendations(p, completion),
	}, nil
}

func engagementScore(ratePercent float64) int {
	switch {
	case ratePercent >= 6:
		return 95
	case ratePercent >= 4:
		return 85
	case ratePercent >= 2:
		return 75
	case ratePercent >= 1:
		return 65
	default:
		return 45
	}
}

func authenticityScore(p *Profile) int {
	score := 70
	if p.Verified {
		score += 15
	}
	if p.HealthScore != nil && *p.HealthScore > 80 {
		score += 10
	}
	if p.FollowerGrowth > 0 {
		score += 5
	}
	return clampScore(score)
}

func audienceQualityScore(p *Profile) int {
	score := 60
	if strings.Contains(strings.ToLower(p.Location), "united states") {
		score += 20
	}
	if p.EngagementRate > 3 {
		score += 15
	}
	if p.Followers > 10_000 {
		score += 5
	}
	return clampScore(score)
}

func contentConsistencyScore(p *Profile) int {
	score := 50
	switch {
	case p.RecentPosts >= 20:
		score += 25
	case p.RecentPosts >= 12:
		score += 15
	}
	// Excellent cadence satisfies the high bar too.
	if p.Consistency == ConsistencyHigh || p.Consistency == ConsistencyExcellent {
		score += 25
	}
	return clampScore(score)
}

func brandFitScore(p *Profile) int {
	score := 70
	if len(p.Categories) > 0 && !strings.EqualFold(p.Categories[0], "lifestyle") {
		score += 10
	}
	if len(p.Biography) > 50 {
		score += 10
	}
	if p.Website != "" {
		score += 10
	}
	return clampScore(score)
}

func growthTrendScore(growthPercent float64) int {
	switch {
	case growthPercent > 10:
		return 90
	case growthPercent > 5:
		return 80
	case growthPercent > 0:
		return 70
	default:
		return 50
	}
}

// CompletionScore measures how much of the optional profile data is
// populated, independent of its quality. Weights sum to 100.
func CompletionScore(p *Profile) int {
	var e evidence
	e.add(gate{15, p.Followers > 0})
	e.add(gate{15, p.EngagementRate > 0})
	e.add(gate{10, p.Biography != ""})
	e.add(gate{10, len(p.Categories) > 0})
	e.add(gate{10, p.Location != ""})
	e.scale(15, float64(p.RecentPosts)/12)
	e.add(gate{15, p.Demographics != nil && len(p.Demographics.TopLocations) > 0})
	e.add(gate{5, p.Website != ""})
	e.add(gate{5, p.Verified})
	return int(math.Round(e.value(0, 100)))
}

// recommendations is an ordered rule list like the pricing rationale,
// but unbounded: every triggered improvement is returned.
func recommendations(p *Profile, completion int) []string {
	recs := make([]string, 0, 4)
	if completion < 80 {
		recs = append(recs, "Complete your profile: fill in biography, categories, location, and audience demographics")
	}
	if !strings.Contains(p.Biography, "@") {
		recs = append(recs, "Add a business contact email to your biography so brands can reach you")
	}
	if p.EngagementRate < 3 {
		recs = append(recs, "Grow engagement above 3% with interactive formats and timely replies")
	}
	if p.Website == "" {
		recs = append(recs, "Link an external portfolio or media kit so brands can verify past work")
	}
	return recs
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
