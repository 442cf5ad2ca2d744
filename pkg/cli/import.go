package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/creatorpulse/creatorpulse/pkg/data"
	"github.com/creatorpulse/creatorpulse/pkg/engine"
	"github.com/creatorpulse/creatorpulse/pkg/net"
	"github.com/urfave/cli/v2"
)

var (
	platformFlag = &cli.StringFlag{
		Name:  "platform",
		Usage: "Creator platform [instagram, tiktok, youtube, facebook]",
	}

	handleFlag = &cli.StringSliceFlag{
		Name:  "handle",
		Usage: "Creator handle (can be specified multiple times)",
	}

	sourceURLFlag = &cli.StringFlag{
		Name:    "source",
		Usage:   "Base URL of the profile source API",
		EnvVars: []string{"CREATORPULSE_SOURCE_URL"},
	}

	profileFileFlag = &cli.StringFlag{
		Name:  "file",
		Usage: "Path to a local JSON export of profile snapshots",
	}

	importCmd = &cli.Command{
		Name:    "import",
		Aliases: []string{"i"},
		Usage:   "Import creator profile snapshots from the source API or a local file",
		UsageText: `creatorpulse import --platform instagram --handle style.maven   # import one profile
   creatorpulse import --platform tiktok --handle a --handle b      # import several profiles
   creatorpulse import --file profiles.json                         # import from a local export`,
		Action: cmdImport,
		Flags: []cli.Flag{
			platformFlag,
			handleFlag,
			sourceURLFlag,
			profileFileFlag,
		},
	}
)

type ImportResult struct {
	Platform string                  `json:"platform,omitempty" yaml:"platform,omitempty"`
	Profiles []engine.ProfileSummary `json:"profiles" yaml:"profiles"`
	Duration string                  `json:"duration" yaml:"duration"`
}

func cmdImport(c *cli.Context) error {
	start := time.Now()
	cfg := getConfig(c)

	profiles, platform, err := resolveProfiles(c)
	if err != nil {
		return err
	}
	if profiles == nil {
		return cli.ShowSubcommandHelp(c)
	}

	res := &ImportResult{
		Platform: string(platform),
		Profiles: make([]engine.ProfileSummary, 0, len(profiles)),
	}

	for _, p := range profiles {
		slog.Info("saving profile", "platform", p.Platform, "handle", p.Handle)
		if err := data.SaveProfile(cfg.DB, p); err != nil {
			return fmt.Errorf("failed to save profile %s/%s: %w", p.Platform, p.Handle, err)
		}
		res.Profiles = append(res.Profiles, p.Summary())
	}

	res.Duration = time.Since(start).String()

	if err := getEncoder().Encode(res); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}

	return nil
}

func resolveProfiles(c *cli.Context) ([]*engine.Profile, engine.Platform, error) {
	if file := c.String(profileFileFlag.Name); file != "" {
		profiles, err := data.ReadProfilesFile(file)
		if err != nil {
			return nil, "", fmt.Errorf("failed to read profiles from %s: %w", file, err)
		}
		return profiles, "", nil
	}

	platform := engine.Platform(c.String(platformFlag.Name))
	handles := c.StringSlice(handleFlag.Name)
	if platform == "" || len(handles) == 0 {
		return nil, "", nil
	}

	src := c.String(sourceURLFlag.Name)
	if src == "" {
		return nil, "", errors.New("profile source URL is required (--source or CREATORPULSE_SOURCE_URL)")
	}

	ctx := context.Background()
	client := net.GetOAuthClient(ctx, getSourceToken())

	slog.Info("fetching profiles", "platform", platform, "handles", len(handles))
	profiles, err := data.FetchProfiles(ctx, client, src, platform, handles)
	if err != nil {
		return nil, "", fmt.Errorf("failed to fetch profiles: %w", err)
	}

	return profiles, platform, nil
}
