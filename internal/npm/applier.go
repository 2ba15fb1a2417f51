package npm

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/devtools/npm-registry/internal/executor"
	"github.com/devtools/npm-registry/internal/profile"
)

// Applier makes npm use a resolved registry and reports the outcome.
type Applier struct {
	Client *Client
	Out    io.Writer
	Logger *slog.Logger
}

// NewApplier creates an Applier writing user-facing messages to out.
func NewApplier(client *Client, out io.Writer, logger *slog.Logger) *Applier {
	return &Applier{
		Client: client,
		Out:    out,
		Logger: logger,
	}
}

// Apply sets npm's registry to url on behalf of p.
//
// A failed npm run is reported on Out and is not an error. Errors are
// returned only when npm cannot be started or its output is not UTF-8.
func (a *Applier) Apply(ctx context.Context, p profile.Profile, url string) error {
	logger := a.logger()
	logger.Debug("running npm",
		"command", executor.CommandLine(a.Client.Command, SetRegistryArgs(url)...))

	result, err := a.Client.SetRegistry(ctx, url)
	if err != nil {
		return err
	}

	if result.Success() {
		stdout, err := a.Client.decode(result.Stdout, "stdout")
		if err != nil {
			return err
		}
		fmt.Fprintf(a.Out, "Switching registry to %s successfully.\n%s\n", p, stdout)
		return nil
	}

	stderr, err := a.Client.decode(result.Stderr, "stderr")
	if err != nil {
		return err
	}
	logger.Debug("npm failed", "exit_code", result.ExitCode, "exited", result.Exited)
	fmt.Fprintf(a.Out, "Error: %s\n", stderr)
	return nil
}

func (a *Applier) logger() *slog.Logger {
	if a.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return a.Logger
}
