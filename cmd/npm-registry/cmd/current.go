package cmd

import (
	"fmt"
	"strings"

	"github.com/devtools/npm-registry/internal/npm"
	"github.com/devtools/npm-registry/internal/profile"
	"github.com/devtools/npm-registry/internal/registry"
	"github.com/spf13/cobra"
)

var currentCmd = &cobra.Command{
	Use:   "current",
	Short: "Show npm's active registry and the matching profile",
	Long: `Run 'npm config get registry' and report which profile, if any, the
active registry belongs to.`,
	Args: cobra.NoArgs,
	RunE: runCurrent,
}

func init() {
	rootCmd.AddCommand(currentCmd)
}

func runCurrent(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	logger := newLogger(cmd, cfg)
	out := cmd.OutOrStdout()

	client := npm.NewClient(newRunner(), cfg.Npm.Command)
	active, err := client.GetRegistry(commandContext(cmd))
	if err != nil {
		return err
	}

	resolver := registry.NewResolver(nil, logger)
	resolver.HomeDir = homeDir

	match, err := matchProfile(resolver, active)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Registry: %s\n", active)
	fmt.Fprintf(out, "Profile:  %s\n", match)
	return nil
}

// matchProfile names the profile whose registry equals active, or "none".
// The saved work registry is compared without surrounding whitespace since
// npm reports the value trimmed.
func matchProfile(resolver *registry.Resolver, active string) (string, error) {
	for _, p := range profile.All() {
		url, found, err := resolver.Peek(p)
		if err != nil {
			return "", err
		}
		if found && strings.TrimSpace(url) == active {
			return p.String(), nil
		}
	}
	return "none", nil
}
