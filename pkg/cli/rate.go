package cli

import (
	"fmt"

	"github.com/creatorpulse/creatorpulse/pkg/data"
	"github.com/creatorpulse/creatorpulse/pkg/engine"
	"github.com/urfave/cli/v2"
)

var (
	rateCmd = &cli.Command{
		Name:    "rate",
		Aliases: []string{"r"},
		Usage:   "Compute a tiered rate card for a stored profile",
		UsageText: `creatorpulse rate --platform instagram --handle style.maven
   creatorpulse --format yaml rate --platform tiktok --handle dancer`,
		Action: cmdRate,
		Flags: []cli.Flag{
			platformFlag,
			handleFlag,
			profileFileFlag,
		},
	}
)

func cmdRate(c *cli.Context) error {
	p, err := loadProfile(c)
	if err != nil {
		return err
	}
	if p == nil {
		return cli.ShowSubcommandHelp(c)
	}

	cfg := getConfig(c)

	card, err := engine.ComputeRateCard(p, cfg.Rates)
	if err != nil {
		return fmt.Errorf("failed to compute rate card for %s/%s: %w", p.Platform, p.Handle, err)
	}

	if err := getEncoder().Encode(card); err != nil {
		return fmt.Errorf("error encoding rate card: %w", err)
	}

	return nil
}

// loadProfile reads the profile named by the platform/handle flags,
// either from the store or from a local export when --file is given.
// Returns nil without error when the identifying flags are missing.
func loadProfile(c *cli.Context) (*engine.Profile, error) {
	platform := engine.Platform(c.String(platformFlag.Name))
	handles := c.StringSlice(handleFlag.Name)

	if file := c.String(profileFileFlag.Name); file != "" {
		return loadProfileFromFile(file, platform, handles)
	}

	if platform == "" || len(handles) == 0 {
		return nil, nil
	}

	cfg := getConfig(c)

	p, err := data.GetProfile(cfg.DB, platform, handles[0])
	if err != nil {
		return nil, fmt.Errorf("failed to load profile %s/%s: %w", platform, handles[0], err)
	}

	return p, nil
}

func loadProfileFromFile(file string, platform engine.Platform, handles []string) (*engine.Profile, error) {
	profiles, err := data.ReadProfilesFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read profiles from %s: %w", file, err)
	}

	if platform == "" && len(handles) == 0 && len(profiles) == 1 {
		return profiles[0], nil
	}

	for _, p := range profiles {
		if p.Platform == platform && len(handles) > 0 && p.Handle == handles[0] {
			return p, nil
		}
	}

	return nil, fmt.Errorf("no matching profile in %s", file)
}
