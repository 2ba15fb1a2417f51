package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/devtools/npm-registry/internal/cli"
	"github.com/devtools/npm-registry/internal/profile"
	"github.com/devtools/npm-registry/internal/registry"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	showOutput string
	showReset  bool
	showYes    bool
)

var showCmd = &cobra.Command{
	Use:   "show [home|work]",
	Short: "Show the registry each profile resolves to",
	Long: `Show the registry each profile resolves to, without prompting and
without running npm.

The work registry is read from ~/.config/npm-registry.txt. Use --reset to
delete that file so the next 'npm-registry work' asks for it again.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().StringVarP(&showOutput, "output", "o", "text", "output format: text, yaml or json")
	showCmd.Flags().BoolVar(&showReset, "reset", false, "forget the saved work registry")
	showCmd.Flags().BoolVarP(&showYes, "yes", "y", false, "do not ask for confirmation with --reset")
	rootCmd.AddCommand(showCmd)
}

// profileView is how a profile is reported by show.
type profileView struct {
	Profile  string `json:"profile" yaml:"profile"`
	Registry string `json:"registry,omitempty" yaml:"registry,omitempty"`
	Source   string `json:"source" yaml:"source"` // built-in, saved or unset
	Path     string `json:"path,omitempty" yaml:"path,omitempty"`
}

func runShow(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	resolver := registry.NewResolver(nil, nil)
	resolver.HomeDir = homeDir

	if showReset {
		return resetWork(cmd, resolver)
	}

	profiles := profile.All()
	if len(args) == 1 {
		p, err := profile.Parse(strings.TrimSpace(args[0]))
		if err != nil {
			return err
		}
		profiles = []profile.Profile{p}
	}

	views := make([]profileView, 0, len(profiles))
	for _, p := range profiles {
		v, err := describe(resolver, p)
		if err != nil {
			return err
		}
		views = append(views, v)
	}

	return writeViews(out, views, showOutput)
}

func describe(resolver *registry.Resolver, p profile.Profile) (profileView, error) {
	v := profileView{Profile: p.String()}

	url, found, err := resolver.Peek(p)
	if err != nil {
		return v, err
	}

	switch {
	case p == profile.Home:
		v.Source = "built-in"
	case found:
		v.Source = "saved"
	default:
		v.Source = "unset"
	}
	v.Registry = url

	if p == profile.Work {
		if store, ok := resolver.WorkStore(); ok {
			v.Path = store.Path()
		}
	}
	return v, nil
}

func writeViews(w io.Writer, views []profileView, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(views)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(views); err != nil {
			return err
		}
		return enc.Close()
	case "text":
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		for _, v := range views {
			url := strings.TrimRight(v.Registry, "\r\n")
			if v.Source == "unset" {
				url = "(not set)"
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\n", v.Profile, url, v.Source)
		}
		return tw.Flush()
	default:
		return fmt.Errorf("unknown output format %q (want text, yaml or json)", format)
	}
}

func resetWork(cmd *cobra.Command, resolver *registry.Resolver) error {
	out := cmd.OutOrStdout()

	store, ok := resolver.WorkStore()
	if !ok {
		return fmt.Errorf("cannot locate home directory")
	}

	if !store.Exists() {
		fmt.Fprintf(out, "No saved work registry at %s\n", store.Path())
		return nil
	}

	if !showYes {
		prompter := cli.NewConsolePrompter(cmd.InOrStdin(), out)
		ok, err := prompter.Confirm(fmt.Sprintf("Remove saved work registry %s?", store.Path()), false)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(out, "Cancelled.")
			return nil
		}
	}

	if err := store.Remove(); err != nil {
		return err
	}
	fmt.Fprintf(out, "Removed %s\n", store.Path())
	return nil
}
