package data

import (
	"testing"

	"github.com/creatorpulse/creatorpulse/pkg/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProfile() *engine.Profile {
	hs := 82.0
	return &engine.Profile{
		Handle:         "style.maven",
		Platform:       engine.PlatformInstagram,
		Followers:      50_000,
		EngagementRate: 4.2,
		Biography:      "Fashion and street style from Mumbai",
		Categories:     []string{"fashion", "lifestyle"},
		Location:       "Mumbai, India",
		Demographics: &engine.Demographics{
			TopLocations: []engine.LocationShare{{Country: "India", Percentage: 58}},
			AgeGroups:    map[string]float64{"18-24": 40, "25-34": 35},
		},
		Verified:       true,
		HealthScore:    &hs,
		Consistency:    engine.ConsistencyHigh,
		RecentPosts:    14,
		Website:        "https://example.com",
		AvgViews30d:    22_000,
		FollowerGrowth: 2.5,
	}
}

func TestSaveProfile_RoundTrip(t *testing.T) {
	db := setupTestDB(t)
	want := testProfile()

	require.NoError(t, SaveProfile(db, want))

	got, err := GetProfile(db, want.Platform, want.Handle)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSaveProfile_MinimalProfile(t *testing.T) {
	db := setupTestDB(t)
	want := &engine.Profile{Handle: "newcomer", Platform: engine.PlatformTikTok}

	require.NoError(t, SaveProfile(db, want))

	got, err := GetProfile(db, engine.PlatformTikTok, "newcomer")
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Nil(t, got.HealthScore)
	assert.Nil(t, got.Demographics)
}

func TestSaveProfile_Upserts(t *testing.T) {
	db := setupTestDB(t)
	p := testProfile()

	require.NoError(t, SaveProfile(db, p))

	p.Followers = 60_000
	p.Verified = false
	require.NoError(t, SaveProfile(db, p))

	got, err := GetProfile(db, p.Platform, p.Handle)
	require.NoError(t, err)
	assert.Equal(t, int64(60_000), got.Followers)
	assert.False(t, got.Verified)

	list, err := SearchProfiles(db, "style", 10)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestSaveProfile_RejectsInvalid(t *testing.T) {
	db := setupTestDB(t)
	p := testProfile()
	p.Followers = -1

	err := SaveProfile(db, p)
	assert.ErrorIs(t, err, engine.ErrInvalidProfile)
}

func TestSaveProfile_NilDB(t *testing.T) {
	assert.Error(t, SaveProfile(nil, testProfile()))
}

func TestGetProfile_NotFound(t *testing.T) {
	db := setupTestDB(t)

	_, err := GetProfile(db, engine.PlatformYouTube, "ghost")
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestGetProfile_NilDB(t *testing.T) {
	_, err := GetProfile(nil, engine.PlatformYouTube, "x")
	assert.Error(t, err)
}

func TestSearchProfiles(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, SaveProfile(db, testProfile()))
	require.NoError(t, SaveProfile(db, &engine.Profile{
		Handle: "tech.talks", Platform: engine.PlatformYouTube,
		Followers: 250_000, EngagementRate: 3.1, Location: "Austin, USA",
		Categories: []string{"tech"},
	}))

	byHandle, err := SearchProfiles(db, "style", 10)
	require.NoError(t, err)
	require.Len(t, byHandle, 1)
	assert.Equal(t, "style.maven", byHandle[0].Handle)

	byLocation, err := SearchProfiles(db, "austin", 10)
	require.NoError(t, err)
	require.Len(t, byLocation, 1)
	assert.Equal(t, "tech.talks", byLocation[0].Handle)

	byCategory, err := SearchProfiles(db, "fashion", 10)
	require.NoError(t, err)
	require.Len(t, byCategory, 1)

	// Ordered by follower count, descending.
	all, err := SearchProfiles(db, "t", 10)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "tech.talks", all[0].Handle)

	none, err := SearchProfiles(db, "zzz", 10)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestSearchProfiles_NilDB(t *testing.T) {
	_, err := SearchProfiles(nil, "x", 10)
	assert.Error(t, err)
}
