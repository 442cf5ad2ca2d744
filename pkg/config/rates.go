package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/creatorpulse/creatorpulse/pkg/engine"
	"gopkg.in/yaml.v3"
)

const (
	RatesFileName = "rates.yaml"

	dirMode  = 0700
	fileMode = 0600
)

// SaveRates writes the reference tables to dirPath/rates.yaml.
func SaveRates(dirPath string, r *engine.Rates) error {
	if dirPath == "" {
		return errors.New("config directory required")
	}
	if r == nil {
		return errors.New("rates required")
	}

	b, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal rates: %w", err)
	}

	path := filepath.Join(dirPath, RatesFileName)
	if err := os.WriteFile(path, b, fileMode); err != nil {
		return fmt.Errorf("failed to write rates file %s: %w", path, err)
	}
	return nil
}

// ReadOrCreateRates reads the rate tables from dirPath, seeding the file
// with the built-in defaults on first run so operators can tune it. The
// returned tables are validated and treated as immutable afterwards.
func ReadOrCreateRates(dirPath string) (*engine.Rates, error) {
	if dirPath == "" {
		return nil, errors.New("config directory required")
	}

	if _, err := os.Stat(dirPath); errors.Is(err, os.ErrNotExist) {
		if err := os.Mkdir(dirPath, dirMode); err != nil {
			return nil, fmt.Errorf("failed to create dir %s: %w", dirPath, err)
		}
	}

	path := filepath.Join(dirPath, RatesFileName)

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		slog.Debug("seeding default rates", "path", path)
		if err := SaveRates(dirPath, engine.DefaultRates()); err != nil {
			return nil, fmt.Errorf("failed to create default rates: %w", err)
		}
	}

	return ReadRates(path)
}

// ReadRates loads and validates rate tables from an explicit file path.
func ReadRates(path string) (*engine.Rates, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading rates file %s: %w", path, err)
	}

	var r engine.Rates
	if err := yaml.Unmarshal(b, &r); err != nil {
		return nil, fmt.Errorf("error unmarshalling rates file %s: %w", path, err)
	}

	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("rates file %s: %w", path, err)
	}
	return &r, nil
}
