package data

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/creatorpulse/creatorpulse/pkg/engine"
)

const (
	upsertProfileSQL = `INSERT INTO profile (
			platform,
			handle,
			followers,
			engagement_rate,
			biography,
			categories,
			location,
			demographics,
			verified,
			health_score,
			consistency,
			recent_posts,
			website,
			avg_views_30d,
			follower_growth,
			updated_at
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(platform, handle) DO UPDATE SET
			followers = excluded.followers,
			engagement_rate = excluded.engagement_rate,
			biography = excluded.biography,
			categories = excluded.categories,
			location = excluded.location,
			demographics = excluded.demographics,
			verified = excluded.verified,
			health_score = excluded.health_score,
			consistency = excluded.consistency,
			recent_posts = excluded.recent_posts,
			website = excluded.website,
			avg_views_30d = excluded.avg_views_30d,
			follower_growth = excluded.follower_growth,
			updated_at = excluded.updated_at
	`

	selectProfileSQL = `SELECT
			platform,
			handle,
			followers,
			engagement_rate,
			COALESCE(biography, ''),
			COALESCE(categories, ''),
			COALESCE(location, ''),
			COALESCE(demographics, ''),
			verified,
			health_score,
			COALESCE(consistency, ''),
			recent_posts,
			COALESCE(website, ''),
			avg_views_30d,
			follower_growth,
			updated_at
		FROM profile
		WHERE platform = ? AND handle = ?
	`

	searchProfilesSQL = `SELECT
			platform,
			handle,
			followers,
			engagement_rate,
			COALESCE(location, '') AS location,
			verified,
			updated_at
		FROM profile
		WHERE handle LIKE ?
		   OR location LIKE ?
		   OR categories LIKE ?
		ORDER BY followers DESC
		LIMIT ?
	`
)

var ErrProfileNotFound = errors.New("profile not found")

// ProfileListItem is the abbreviated search result row.
type ProfileListItem struct {
	Platform       engine.Platform `json:"platform" yaml:"platform"`
	Handle         string          `json:"handle" yaml:"handle"`
	Followers      int64           `json:"followers" yaml:"followers"`
	EngagementRate float64         `json:"engagement_rate" yaml:"engagementRate"`
	Location       string          `json:"location,omitempty" yaml:"location,omitempty"`
	Verified       bool            `json:"verified" yaml:"verified"`
	UpdatedAt      string          `json:"updated_at" yaml:"updatedAt"`
}

// SaveProfile upserts a profile snapshot keyed by (platform, handle).
func SaveProfile(db *sql.DB, p *engine.Profile) error {
	if db == nil {
		return errDBNotInitialized
	}
	if err := p.Validate(); err != nil {
		return err
	}

	categories, err := marshalOrEmpty(p.Categories, len(p.Categories) > 0)
	if err != nil {
		return fmt.Errorf("failed to marshal categories for %s: %w", p.Handle, err)
	}
	demographics, err := marshalOrEmpty(p.Demographics, p.Demographics != nil)
	if err != nil {
		return fmt.Errorf("failed to marshal demographics for %s: %w", p.Handle, err)
	}

	var healthScore sql.NullFloat64
	if p.HealthScore != nil {
		healthScore = sql.NullFloat64{Float64: *p.HealthScore, Valid: true}
	}

	now := time.Now().UTC().Format(time.RFC3339)

	_, err = db.Exec(upsertProfileSQL,
		string(p.Platform),
		p.Handle,
		p.Followers,
		p.EngagementRate,
		p.Biography,
		categories,
		p.Location,
		demographics,
		boolToInt(p.Verified),
		healthScore,
		string(p.Consistency),
		p.RecentPosts,
		p.Website,
		p.AvgViews30d,
		p.FollowerGrowth,
		now,
	)
	if err != nil {
		return fmt.Errorf("failed to save profile %s/%s: %w", p.Platform, p.Handle, err)
	}

	return nil
}

// GetProfile loads one snapshot, or ErrProfileNotFound.
func GetProfile(db *sql.DB, platform engine.Platform, handle string) (*engine.Profile, error) {
	if db == nil {
		return nil, errDBNotInitialized
	}

	var (
		p            engine.Profile
		categories   string
		demographics string
		verified     int
		healthScore  sql.NullFloat64
		updatedAt    string
	)

	err := db.QueryRow(selectProfileSQL, string(platform), handle).Scan(
		&p.Platform,
		&p.Handle,
		&p.Followers,
		&p.EngagementRate,
		&p.Biography,
		&categories,
		&p.Location,
		&demographics,
		&verified,
		&healthScore,
		&p.Consistency,
		&p.RecentPosts,
		&p.Website,
		&p.AvgViews30d,
		&p.FollowerGrowth,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s/%s", ErrProfileNotFound, platform, handle)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query profile %s/%s: %w", platform, handle, err)
	}

	p.Verified = verified != 0
	if healthScore.Valid {
		p.HealthScore = &healthScore.Float64
	}
	if categories != "" {
		if err := json.Unmarshal([]byte(categories), &p.Categories); err != nil {
			return nil, fmt.Errorf("failed to unmarshal categories for %s: %w", handle, err)
		}
	}
	if demographics != "" {
		var d engine.Demographics
		if err := json.Unmarshal([]byte(demographics), &d); err != nil {
			return nil, fmt.Errorf("failed to unmarshal demographics for %s: %w", handle, err)
		}
		p.Demographics = &d
	}

	return &p, nil
}

// SearchProfiles does a fuzzy lookup across handle, location, and
// category tags.
func SearchProfiles(db *sql.DB, like string, limit int) ([]*ProfileListItem, error) {
	if db == nil {
		return nil, errDBNotInitialized
	}

	pattern := "%" + like + "%"
	rows, err := db.Query(searchProfilesSQL, pattern, pattern, pattern, limit)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to search profiles: %w", err)
	}
	defer rows.Close()

	list := make([]*ProfileListItem, 0)
	for rows.Next() {
		var (
			item     ProfileListItem
			verified int
		)
		if err := rows.Scan(
			&item.Platform,
			&item.Handle,
			&item.Followers,
			&item.EngagementRate,
			&item.Location,
			&verified,
			&item.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan profile row: %w", err)
		}
		item.Verified = verified != 0
		list = append(list, &item)
	}

	return list, nil
}

func marshalOrEmpty(v any, present bool) (string, error) {
	if !present {
		return "", nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
