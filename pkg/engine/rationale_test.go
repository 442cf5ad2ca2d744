package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRationale_FiredRulesKeepDeclarationOrder(t *testing.T) {
	ctx := rowContext{
		profile:    fashionProfile(),
		format:     FormatPost,
		niche:      1.6,
		nicheName:  "fashion",
		audience:   1.0,
		complexity: 1.0,
		trust:      1.2,
	}

	full := buildRationale(ctx)

	// Follower, engagement, niche, and trust rules fire, in that order.
	require.Equal(t, []string{
		"Established audience of 50.0k followers",
		"Above-baseline engagement at 4.2%",
		"High-value fashion niche increases advertiser demand",
		"Strong trust signals support premium pricing",
	}, full)
}

func TestTopRationale_CapsAtThree(t *testing.T) {
	full := []string{"one", "two", "three", "four", "five"}
	assert.Equal(t, []string{"one", "two", "three"}, topRationale(full))

	short := []string{"one"}
	assert.Equal(t, short, topRationale(short))
	assert.Empty(t, topRationale(nil))
}

func TestRationale_StableAcrossRuns(t *testing.T) {
	ctx := rowContext{
		profile:    fashionProfile(),
		format:     FormatReel,
		niche:      1.6,
		nicheName:  "fashion",
		audience:   1.2,
		market:     "United States",
		complexity: 1.3,
		trust:      1.2,
	}

	first := buildRationale(ctx)
	second := buildRationale(ctx)
	assert.Equal(t, first, second)
}

func TestRationale_EmptyProfileFiresNothing(t *testing.T) {
	ctx := rowContext{
		profile:    &Profile{Handle: "n", Platform: PlatformInstagram},
		format:     FormatPost,
		niche:      1.0,
		audience:   1.0,
		complexity: 1.0,
		trust:      1.0,
	}

	assert.Empty(t, buildRationale(ctx))
}

func TestRationale_TieredSentences(t *testing.T) {
	big := fashionProfile()
	big.Followers = 250_000
	big.EngagementRate = 6.5

	ctx := rowContext{profile: big, format: FormatPost, niche: 1.0, audience: 1.0, complexity: 1.0, trust: 1.0}
	full := buildRationale(ctx)

	require.Len(t, full, 2)
	assert.Equal(t, "Large audience of 250.0k followers commands premium rates", full[0])
	assert.Equal(t, "Exceptional engagement at 6.5%, well above the 2% baseline", full[1])
}

func TestFormatCount(t *testing.T) {
	assert.Equal(t, "950", formatCount(950))
	assert.Equal(t, "50.0k", formatCount(50_000))
	assert.Equal(t, "1.5M", formatCount(1_500_000))
}
