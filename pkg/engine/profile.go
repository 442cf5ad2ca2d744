package engine

import (
	"errors"
	"fmt"
	"strings"
)

// Platform identifies the social network a profile lives on.
type Platform string

const (
	PlatformInstagram Platform = "instagram"
	PlatformYouTube   Platform = "youtube"
	PlatformTikTok    Platform = "tiktok"
	PlatformFacebook  Platform = "facebook"
)

// Format identifies a content format priced on a platform.
type Format string

const (
	FormatPost  Format = "post"
	FormatStory Format = "story"
	FormatReel  Format = "reel"
	FormatVideo Format = "video"
)

// Consistency is the posting cadence bucket reported by the profile source.
type Consistency string

const (
	ConsistencyLow       Consistency = "low"
	ConsistencyHigh      Consistency = "high"
	ConsistencyExcellent Consistency = "excellent"
)

var (
	ErrInvalidProfile = errors.New("invalid profile")

	consistencyValues = []Consistency{ConsistencyLow, ConsistencyHigh, ConsistencyExcellent}
)

// LocationShare is one entry in the audience location breakdown.
type LocationShare struct {
	Country    string  `json:"country" yaml:"country"`
	Percentage float64 `json:"percentage" yaml:"percentage"`
}

// Demographics describes the audience composition of a profile.
type Demographics struct {
	TopLocations       []LocationShare    `json:"top_locations,omitempty" yaml:"topLocations,omitempty"`
	AgeGroups          map[string]float64 `json:"age_groups,omitempty" yaml:"ageGroups,omitempty"`
	GenderDistribution map[string]float64 `json:"gender_distribution,omitempty" yaml:"genderDistribution,omitempty"`
}

// Profile is a point-in-time snapshot of a creator's public metrics.
// Optional signals are zero-valued when the source did not report them;
// absence degrades confidence and completion, never fails a computation.
type Profile struct {
	Handle         string        `json:"handle" yaml:"handle"`
	Platform       Platform      `json:"platform" yaml:"platform"`
	Followers      int64         `json:"followers" yaml:"followers"`
	EngagementRate float64       `json:"engagement_rate" yaml:"engagementRate"` // percent, 3.5 means 3.5%
	Biography      string        `json:"biography,omitempty" yaml:"biography,omitempty"`
	Categories     []string      `json:"categories,omitempty" yaml:"categories,omitempty"`
	Location       string        `json:"location,omitempty" yaml:"location,omitempty"` // "City, Country" convention
	Demographics   *Demographics `json:"demographics,omitempty" yaml:"demographics,omitempty"`
	Verified       bool          `json:"verified" yaml:"verified"`
	HealthScore    *float64      `json:"health_score,omitempty" yaml:"healthScore,omitempty"` // 0-100
	Consistency    Consistency   `json:"consistency,omitempty" yaml:"consistency,omitempty"`
	RecentPosts    int           `json:"recent_posts,omitempty" yaml:"recentPosts,omitempty"`
	Website        string        `json:"website,omitempty" yaml:"website,omitempty"`
	AvgViews30d    float64       `json:"avg_views_30d,omitempty" yaml:"avgViews30d,omitempty"`
	FollowerGrowth float64       `json:"follower_growth,omitempty" yaml:"followerGrowth,omitempty"` // percent, last 30 days
}

// ProfileSummary is the denormalized header carried on computed outputs.
type ProfileSummary struct {
	Handle         string   `json:"handle" yaml:"handle"`
	Platform       Platform `json:"platform" yaml:"platform"`
	Followers      int64    `json:"followers" yaml:"followers"`
	EngagementRate float64  `json:"engagement_rate" yaml:"engagementRate"`
	Location       string   `json:"location,omitempty" yaml:"location,omitempty"`
	Verified       bool     `json:"verified" yaml:"verified"`
}

// Validate rejects malformed profiles once, at the boundary. The engine
// deliberately does not coerce negative metrics to zero: callers are
// expected to fix the input and retry.
func (p *Profile) Validate() error {
	if p == nil {
		return fmt.Errorf("%w: nil", ErrInvalidProfile)
	}
	if strings.TrimSpace(p.Handle) == "" {
		return fmt.Errorf("%w: handle is required", ErrInvalidProfile)
	}
	if p.Platform == "" {
		return fmt.Errorf("%w: platform is required", ErrInvalidProfile)
	}
	if p.Followers < 0 {
		return fmt.Errorf("%w: followers must not be negative, got %d", ErrInvalidProfile, p.Followers)
	}
	if p.EngagementRate < 0 {
		return fmt.Errorf("%w: engagement rate must not be negative, got %v", ErrInvalidProfile, p.EngagementRate)
	}
	if p.HealthScore != nil && (*p.HealthScore < 0 || *p.HealthScore > 100) {
		return fmt.Errorf("%w: health score must be 0-100, got %v", ErrInvalidProfile, *p.HealthScore)
	}
	if p.Consistency != "" && !Contains(consistencyValues, p.Consistency) {
		return fmt.Errorf("%w: unknown consistency %q", ErrInvalidProfile, p.Consistency)
	}
	if p.RecentPosts < 0 {
		return fmt.Errorf("%w: recent posts must not be negative, got %d", ErrInvalidProfile, p.RecentPosts)
	}
	if p.AvgViews30d < 0 {
		return fmt.Errorf("%w: average views must not be negative, got %v", ErrInvalidProfile, p.AvgViews30d)
	}
	if p.Demographics != nil {
		for _, loc := range p.Demographics.TopLocations {
			if loc.Percentage < 0 || loc.Percentage > 100 {
				return fmt.Errorf("%w: location share for %q must be 0-100, got %v",
					ErrInvalidProfile, loc.Country, loc.Percentage)
			}
		}
	}
	return nil
}

// Summary projects the fields surfaced on rate cards and audit reports.
func (p *Profile) Summary() ProfileSummary {
	return ProfileSummary{
		Handle:         p.Handle,
		Platform:       p.Platform,
		Followers:      p.Followers,
		EngagementRate: p.EngagementRate,
		Location:       p.Location,
		Verified:       p.Verified,
	}
}

// Contains checks for val in list.
func Contains[T comparable](list []T, val T) bool {
	for _, item := range list {
		if item == val {
			return true
		}
	}
	return false
}
