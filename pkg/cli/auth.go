package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path"
	"strings"

	"github.com/urfave/cli/v2"
	"github.com/zalando/go-keyring"
)

const (
	tokenFileName  = "source_token"
	keyringService = "creatorpulse"
	keyringUser    = "source_token"
)

var (
	tokenFlag = &cli.StringFlag{
		Name:  "token",
		Usage: "Profile source API access token",
	}

	authCmd = &cli.Command{
		Name:            "auth",
		HideHelpCommand: true,
		Usage:           "Store the profile source API token",
		Action:          cmdAuth,
		Flags: []cli.Flag{
			tokenFlag,
		},
	}
)

func cmdAuth(c *cli.Context) error {
	token := strings.TrimSpace(c.String(tokenFlag.Name))
	if token == "" {
		return cli.ShowSubcommandHelp(c)
	}

	if err := saveSourceToken(token); err != nil {
		return fmt.Errorf("saving token: %w", err)
	}

	fmt.Println("Token saved to OS keychain")
	return nil
}

func saveSourceToken(token string) error {
	if err := keyring.Set(keyringService, keyringUser, token); err != nil {
		slog.Warn("keychain unavailable, falling back to file", "error", err)
		return saveSourceTokenFile(token)
	}

	// Clean up legacy file if it exists
	legacyPath := path.Join(getHomeDir(), tokenFileName)
	os.Remove(legacyPath)

	return nil
}

// getSourceToken returns the stored token, or an empty string when no
// token has been saved. The profile source works unauthenticated with
// tighter rate limits.
func getSourceToken() string {
	token, err := keyring.Get(keyringService, keyringUser)
	if err == nil && token != "" {
		return token
	}

	token, err = getSourceTokenFile()
	if err != nil {
		return ""
	}

	// Migrate to keychain
	if migrateErr := keyring.Set(keyringService, keyringUser, token); migrateErr == nil {
		slog.Info("migrated token from file to OS keychain")
		legacyPath := path.Join(getHomeDir(), tokenFileName)
		os.Remove(legacyPath)
	}

	return token
}

func saveSourceTokenFile(token string) error {
	tokenPath := path.Join(getHomeDir(), tokenFileName)
	return os.WriteFile(tokenPath, []byte(token), 0600)
}

func getSourceTokenFile() (string, error) {
	tokenPath := path.Join(getHomeDir(), tokenFileName)
	b, err := os.ReadFile(tokenPath)
	if err != nil {
		return "", fmt.Errorf("reading token file %s: %w", tokenPath, err)
	}
	return strings.TrimSpace(string(b)), nil
}
