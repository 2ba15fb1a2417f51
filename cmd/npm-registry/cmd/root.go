package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/devtools/npm-registry/internal/cli"
	rerrors "github.com/devtools/npm-registry/internal/errors"
	"github.com/devtools/npm-registry/internal/executor"
	"github.com/devtools/npm-registry/internal/logging"
	"github.com/devtools/npm-registry/internal/npm"
	"github.com/devtools/npm-registry/internal/profile"
	"github.com/devtools/npm-registry/internal/registry"
	"github.com/spf13/cobra"
)

// ProfilePrompt is shown when no profile argument is given.
const ProfilePrompt = "Choose your profile mode (home/work): "

var (
	// Version is set at build time via ldflags
	Version = "dev"

	// Global flags
	verbose    bool
	configPath string

	// Swapped out in tests.
	newRunner = func() executor.Runner { return executor.NewExecRunner() }
	homeDir   = os.UserHomeDir
)

var rootCmd = &cobra.Command{
	Use:   "npm-registry [home|work]",
	Short: "Switch npm between the public registry and your work registry",
	Long: `npm-registry switches npm's registry between two profiles:

  home  https://registry.npmjs.org/
  work  your private registry, asked for once and kept in ~/.config/npm-registry.txt

It runs 'npm config set registry <url>' for the chosen profile. Without an
argument the profile is read from standard input.

Edit or delete ~/.config/npm-registry.txt to change the work registry, or run
'npm-registry show --reset'.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runSwitch,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "settings file (default: ~/.config/npm-registry.toml)")

	// Profile names are the only positional arguments; keep "completion" free.
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// Version flag
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("npm-registry {{.Version}}\n")
}

func runSwitch(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	prompter := cli.NewConsolePrompter(cmd.InOrStdin(), out)

	name, err := selectProfile(args, prompter)
	if err != nil {
		return err
	}

	p, err := profile.Parse(name)
	if err != nil {
		fmt.Fprintf(out, "type `npm-registry work` or `npm-registry home` to switch npm registry. Got: %s\n", name)
		return nil
	}

	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	logger := logging.WithProfile(newLogger(cmd, cfg), p.String())

	resolver := registry.NewResolver(prompter, logger)
	resolver.HomeDir = homeDir

	url, err := resolver.Resolve(p)
	if err != nil {
		return err
	}

	applier := npm.NewApplier(npm.NewClient(newRunner(), cfg.Npm.Command), out, logger)
	return applier.Apply(commandContext(cmd), p, url)
}

// selectProfile returns the first argument, or asks for a profile when
// there is none. The answer is trimmed; an empty input is not an error.
func selectProfile(args []string, prompter cli.Prompter) (string, error) {
	if len(args) > 0 {
		return strings.TrimSpace(args[0]), nil
	}

	answer, err := prompter.Prompt(ProfilePrompt)
	if err != nil && !errors.Is(err, cli.ErrNoInput) {
		return "", rerrors.InputRead("profile", err)
	}
	return strings.TrimSpace(answer), nil
}
