package cli

import (
	"fmt"

	"github.com/creatorpulse/creatorpulse/pkg/data"
	"github.com/urfave/cli/v2"
)

const (
	queryResultLimitDefault = 100
)

var (
	queryLimitFlag = &cli.IntFlag{
		Name:  "limit",
		Usage: "Limits number of results returned",
		Value: queryResultLimitDefault,
	}

	profileLikeQueryFlag = &cli.StringFlag{
		Name:     "like",
		Usage:    "Fuzzy search profiles by handle, location, or category",
		Required: true,
	}

	queryCmd = &cli.Command{
		Name:    "query",
		Aliases: []string{"q"},
		Usage:   "List data query operations",
		Subcommands: []*cli.Command{
			{
				Name:    "profiles",
				Usage:   "List stored profiles",
				Aliases: []string{"p"},
				Action:  cmdQueryProfiles,
				Flags: []cli.Flag{
					profileLikeQueryFlag,
					queryLimitFlag,
				},
			},
			{
				Name:    "profile",
				Usage:   "Get a stored profile snapshot",
				Aliases: []string{"d"},
				Action:  cmdQueryProfile,
				Flags: []cli.Flag{
					platformFlag,
					handleFlag,
				},
			},
		},
	}
)

func cmdQueryProfiles(c *cli.Context) error {
	val := c.String(profileLikeQueryFlag.Name)
	if val == "" {
		return cli.ShowSubcommandHelp(c)
	}

	limit := c.Int(queryLimitFlag.Name)
	if limit <= 0 || limit > queryResultLimitDefault {
		limit = queryResultLimitDefault
	}

	cfg := getConfig(c)

	list, err := data.SearchProfiles(cfg.DB, val, limit)
	if err != nil {
		return fmt.Errorf("failed to query profiles: %w", err)
	}

	return getEncoder().Encode(list)
}

func cmdQueryProfile(c *cli.Context) error {
	p, err := loadProfile(c)
	if err != nil {
		return err
	}
	if p == nil {
		return cli.ShowSubcommandHelp(c)
	}

	if err := getEncoder().Encode(p); err != nil {
		return fmt.Errorf("error encoding: %+v: %w", p, err)
	}

	return nil
}
