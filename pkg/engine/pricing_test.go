package engine

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fashionProfile() *Profile {
	return &Profile{
		Handle:         "style.maven",
		Platform:       PlatformInstagram,
		Followers:      50_000,
		EngagementRate: 4.2,
		Categories:     []string{"fashion"},
		Location:       "Mumbai, India",
		Verified:       true,
	}
}

func TestComputeRateCard_FashionScenario(t *testing.T) {
	card, err := ComputeRateCard(fashionProfile(), DefaultRates())
	require.NoError(t, err)

	assert.Equal(t, 1.6, card.Multipliers.Niche)
	assert.Equal(t, 1.0, card.Multipliers.Audience)
	assert.GreaterOrEqual(t, card.Multipliers.Trust, 1.2)

	row := findRow(t, card, FormatPost)

	// 30 * (50000/1000) * (0.042/0.02) * 1.6 * 1.0 * 1.0 * 1.2 = 6048
	assert.Equal(t, int64(6048), row.Expected)
	assert.Equal(t, int64(4838), row.Conservative)
	assert.Equal(t, int64(9677), row.Premium)
	assert.Greater(t, row.Expected, int64(floorExpected))
}

func TestComputeRateCard_ZeroProfileHitsFloors(t *testing.T) {
	p := &Profile{Handle: "newcomer", Platform: PlatformInstagram}

	card, err := ComputeRateCard(p, DefaultRates())
	require.NoError(t, err)
	require.NotEmpty(t, card.Rows)

	for _, row := range card.Rows {
		assert.Equal(t, int64(10), row.Conservative)
		assert.Equal(t, int64(15), row.Expected)
		assert.Equal(t, int64(25), row.Premium)
		assert.Equal(t, 0.5, row.Confidence)
	}
	assert.Equal(t, 0.5, card.OverallConfidence)
}

func TestComputeRateCard_TierOrderingAndFloors(t *testing.T) {
	profiles := []*Profile{
		{Handle: "a", Platform: PlatformInstagram},
		{Handle: "b", Platform: PlatformTikTok, Followers: 800, EngagementRate: 0.7},
		fashionProfile(),
		{Handle: "d", Platform: PlatformYouTube, Followers: 2_500_000, EngagementRate: 9.5, Biography: "beauty and fitness", Location: "Austin, USA", Verified: true},
	}

	for _, p := range profiles {
		card, err := ComputeRateCard(p, DefaultRates())
		require.NoError(t, err, p.Handle)
		for _, row := range card.Rows {
			assert.LessOrEqual(t, row.Conservative, row.Expected, "%s %s", p.Handle, row.Format)
			assert.LessOrEqual(t, row.Expected, row.Premium, "%s %s", p.Handle, row.Format)
			assert.GreaterOrEqual(t, row.Conservative, int64(floorConservative))
			assert.GreaterOrEqual(t, row.Expected, int64(floorExpected))
			assert.GreaterOrEqual(t, row.Premium, int64(floorPremium))
			assert.LessOrEqual(t, len(row.Rationale), 3)
		}
	}
}

func TestComputeRateCard_MonotonicInFollowers(t *testing.T) {
	rates := DefaultRates()
	var prev int64 = -1

	for _, followers := range []int64{0, 500, 5_000, 50_000, 500_000, 5_000_000} {
		p := fashionProfile()
		p.Followers = followers

		card, err := ComputeRateCard(p, rates)
		require.NoError(t, err)

		row := findRow(t, card, FormatPost)
		assert.GreaterOrEqual(t, row.Expected, prev, "followers=%d", followers)
		prev = row.Expected
	}
}

func TestComputeRateCard_MonotonicInEngagement(t *testing.T) {
	rates := DefaultRates()
	var prev int64 = -1

	for _, rate := range []float64{0, 0.5, 1, 2, 3.5, 6, 11} {
		p := fashionProfile()
		p.EngagementRate = rate

		card, err := ComputeRateCard(p, rates)
		require.NoError(t, err)

		row := findRow(t, card, FormatPost)
		assert.GreaterOrEqual(t, row.Expected, prev, "rate=%v", rate)
		prev = row.Expected
	}
}

func TestComputeRateCard_Deterministic(t *testing.T) {
	p := fashionProfile()
	rates := DefaultRates()

	first, err := ComputeRateCard(p, rates)
	require.NoError(t, err)
	second, err := ComputeRateCard(p, rates)
	require.NoError(t, err)

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestComputeRateCard_VerifiedFlipDropsTrustByPointTwo(t *testing.T) {
	on := fashionProfile()
	off := fashionProfile()
	off.Verified = false

	cardOn, err := ComputeRateCard(on, DefaultRates())
	require.NoError(t, err)
	cardOff, err := ComputeRateCard(off, DefaultRates())
	require.NoError(t, err)

	assert.InDelta(t, 0.2, cardOn.Multipliers.Trust-cardOff.Multipliers.Trust, 1e-9)
}

func TestComputeRateCard_UnknownPlatformFailsClosed(t *testing.T) {
	p := fashionProfile()
	p.Platform = Platform("threads")

	_, err := ComputeRateCard(p, DefaultRates())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoBaseRates)
}

func TestComputeRateCard_InvalidProfile(t *testing.T) {
	p := fashionProfile()
	p.Followers = -1

	_, err := ComputeRateCard(p, DefaultRates())
	assert.ErrorIs(t, err, ErrInvalidProfile)
}

func TestComputeRateCard_InvalidRates(t *testing.T) {
	_, err := ComputeRateCard(fashionProfile(), &Rates{})
	assert.ErrorIs(t, err, ErrInvalidRates)
}

func TestComputeRateCard_RowPerConfiguredFormat(t *testing.T) {
	card, err := ComputeRateCard(fashionProfile(), DefaultRates())
	require.NoError(t, err)

	// instagram configures post, story, and reel.
	require.Len(t, card.Rows, 3)
	assert.Equal(t, FormatPost, card.Rows[0].Format)
	assert.Equal(t, FormatStory, card.Rows[1].Format)
	assert.Equal(t, FormatReel, card.Rows[2].Format)
}

func findRow(t *testing.T, card *RateCard, format Format) RateRow {
	t.Helper()
	for _, row := range card.Rows {
		if row.Format == format {
			return row
		}
	}
	t.Fatalf("no row for format %s", format)
	return RateRow{}
}
