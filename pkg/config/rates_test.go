package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/creatorpulse/creatorpulse/pkg/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadOrCreateRates_SeedsDefaults(t *testing.T) {
	dir := t.TempDir()

	r, err := ReadOrCreateRates(dir)
	require.NoError(t, err)
	require.NotNil(t, r)
	assert.Equal(t, engine.DefaultRates(), r)

	_, err = os.Stat(filepath.Join(dir, RatesFileName))
	assert.NoError(t, err)
}

func TestReadOrCreateRates_RoundTrip(t *testing.T) {
	dir := t.TempDir()

	custom := engine.DefaultRates()
	custom.BaseRates[0].Rate = 42
	require.NoError(t, SaveRates(dir, custom))

	got, err := ReadOrCreateRates(dir)
	require.NoError(t, err)
	assert.Equal(t, custom, got)
}

func TestReadOrCreateRates_EmptyDir(t *testing.T) {
	_, err := ReadOrCreateRates("")
	assert.Error(t, err)
}

func TestReadOrCreateRates_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")

	_, err := ReadOrCreateRates(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestSaveRates_NilRates(t *testing.T) {
	assert.Error(t, SaveRates(t.TempDir(), nil))
}

func TestReadRates_InvalidContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, RatesFileName)

	require.NoError(t, os.WriteFile(path, []byte("base_rates: []\n"), 0600))
	_, err := ReadRates(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, engine.ErrInvalidRates)
}

func TestReadRates_MissingFile(t *testing.T) {
	_, err := ReadRates(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
