package cli

import (
	"fmt"

	"github.com/creatorpulse/creatorpulse/pkg/engine"
	"github.com/urfave/cli/v2"
)

var (
	auditCmd = &cli.Command{
		Name:      "audit",
		Aliases:   []string{"a"},
		Usage:     "Score a stored profile and list improvement recommendations",
		UsageText: `creatorpulse audit --platform instagram --handle style.maven`,
		Action:    cmdAudit,
		Flags: []cli.Flag{
			platformFlag,
			handleFlag,
			profileFileFlag,
		},
	}
)

func cmdAudit(c *cli.Context) error {
	p, err := loadProfile(c)
	if err != nil {
		return err
	}
	if p == nil {
		return cli.ShowSubcommandHelp(c)
	}

	report, err := engine.ComputeAuditReport(p)
	if err != nil {
		return fmt.Errorf("failed to compute audit report for %s/%s: %w", p.Platform, p.Handle, err)
	}

	if err := getEncoder().Encode(report); err != nil {
		return fmt.Errorf("error encoding audit report: %w", err)
	}

	return nil
}
