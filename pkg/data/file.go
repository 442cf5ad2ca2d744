package data

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/creatorpulse/creatorpulse/pkg/engine"
)

// ReadProfilesFile loads profile snapshots from a local JSON export.
// The file holds an array in the same wire shape the source API returns.
func ReadProfilesFile(path string) ([]*engine.Profile, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profile file %s: %w", path, err)
	}

	var sps []sourceProfile
	if err := json.Unmarshal(b, &sps); err != nil {
		return nil, fmt.Errorf("parsing profile file %s: %w", path, err)
	}

	profiles := make([]*engine.Profile, 0, len(sps))
	for i := range sps {
		p := sps[i].toProfile()
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("invalid profile at index %d in %s: %w", i, path, err)
		}
		profiles = append(profiles, p)
	}

	return profiles, nil
}
