package data

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/creatorpulse/creatorpulse/pkg/engine"
	"github.com/creatorpulse/creatorpulse/pkg/net"
	"golang.org/x/sync/errgroup"
)

// fetchConcurrency bounds parallel calls against the profile source API.
const fetchConcurrency = 4

// sourceProfile is the wire shape of the profile data source API.
type sourceProfile struct {
	Handle                string              `json:"handle"`
	Platform              string              `json:"platform"`
	FollowersCount        int64               `json:"followersCount"`
	EngagementRatePercent float64             `json:"engagementRatePercent"`
	Biography             string              `json:"biography"`
	Categories            []string            `json:"categories"`
	Location              string              `json:"location"`
	AudienceDemographics  *sourceDemographics `json:"audienceDemographics"`
	IsVerified            bool                `json:"isVerified"`
	HealthScore           *float64            `json:"healthScore"`
	Consistency           string              `json:"consistency"`
	RecentPosts           []map[string]any    `json:"recentPosts"` // only the count matters
	Website               string              `json:"website"`
	AvgViews30d           float64             `json:"avgViews30d"`
	FollowerGrowth        float64             `json:"followerGrowth"`
}

type sourceDemographics struct {
	TopLocations       []sourceLocationShare `json:"topLocations"`
	AgeGroups          map[string]float64    `json:"ageGroups"`
	GenderDistribution map[string]float64    `json:"genderDistribution"`
}

type sourceLocationShare struct {
	Country    string  `json:"country"`
	Percentage float64 `json:"percentage"`
}

// FetchProfile pulls one profile snapshot from the profile data source
// and validates it at the boundary.
func FetchProfile(ctx context.Context, client *http.Client, baseURL string, platform engine.Platform, handle string) (*engine.Profile, error) {
	if baseURL == "" {
		return nil, errors.New("source URL is required")
	}

	u := fmt.Sprintf("%s/v1/profiles/%s/%s",
		strings.TrimRight(baseURL, "/"),
		url.PathEscape(string(platform)),
		url.PathEscape(handle),
	)

	var sp sourceProfile
	if err := net.GetJSON(ctx, client, u, &sp); err != nil {
		return nil, fmt.Errorf("failed to fetch profile %s/%s: %w", platform, handle, err)
	}

	p := sp.toProfile()
	if p.Handle == "" {
		p.Handle = handle
	}
	if p.Platform == "" {
		p.Platform = platform
	}

	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("profile source returned malformed data for %s/%s: %w", platform, handle, err)
	}

	return p, nil
}

// FetchProfiles pulls several handles concurrently. The first failure
// cancels the remaining fetches.
func FetchProfiles(ctx context.Context, client *http.Client, baseURL string, platform engine.Platform, handles []string) ([]*engine.Profile, error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(fetchConcurrency)

	profiles := make([]*engine.Profile, len(handles))
	for i, handle := range handles {
		i, handle := i, handle
		g.Go(func() error {
			p, err := FetchProfile(ctx, client, baseURL, platform, handle)
			if err != nil {
				return err
			}
			profiles[i] = p
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return profiles, nil
}

func (sp *sourceProfile) toProfile() *engine.Profile {
	p := &engine.Profile{
		Handle:         sp.Handle,
		Platform:       engine.Platform(sp.Platform),
		Followers:      sp.FollowersCount,
		EngagementRate: sp.EngagementRatePercent,
		Biography:      sp.Biography,
		Categories:     sp.Categories,
		Location:       sp.Location,
		Verified:       sp.IsVerified,
		HealthScore:    sp.HealthScore,
		Consistency:    engine.Consistency(sp.Consistency),
		RecentPosts:    len(sp.RecentPosts),
		Website:        sp.Website,
		AvgViews30d:    sp.AvgViews30d,
		FollowerGrowth: sp.FollowerGrowth,
	}

	if sp.AudienceDemographics != nil {
		d := &engine.Demographics{
			AgeGroups:          sp.AudienceDemographics.AgeGroups,
			GenderDistribution: sp.AudienceDemographics.GenderDistribution,
		}
		for _, loc := range sp.AudienceDemographics.TopLocations {
			d.TopLocations = append(d.TopLocations, engine.LocationShare{
				Country:    loc.Country,
				Percentage: loc.Percentage,
			})
		}
		p.Demographics = d
	}

	return p
}
