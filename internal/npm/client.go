// Package npm drives the npm CLI's registry configuration.
package npm

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	rerrors "github.com/devtools/npm-registry/internal/errors"
	"github.com/devtools/npm-registry/internal/executor"
)

// DefaultCommand is the npm executable looked up on PATH.
const DefaultCommand = "npm"

// Client runs npm registry configuration commands through a Runner.
type Client struct {
	Runner  executor.Runner
	Command string
}

// NewClient creates a Client. An empty command falls back to DefaultCommand.
func NewClient(runner executor.Runner, command string) *Client {
	if command == "" {
		command = DefaultCommand
	}
	return &Client{
		Runner:  runner,
		Command: command,
	}
}

// SetRegistryArgs returns the arguments for `npm config set registry <url>`.
func SetRegistryArgs(url string) []string {
	return []string{"config", "set", "registry", url}
}

// SetRegistry runs `npm config set registry <url>`. A non-zero exit is not
// an error here; callers inspect the Result.
func (c *Client) SetRegistry(ctx context.Context, url string) (*executor.Result, error) {
	result, err := c.Runner.Run(ctx, c.Command, SetRegistryArgs(url)...)
	if err != nil {
		return nil, rerrors.SpawnFailed(c.Command, err)
	}
	return result, nil
}

// GetRegistry runs `npm config get registry` and returns the active
// registry with surrounding whitespace removed.
func (c *Client) GetRegistry(ctx context.Context) (string, error) {
	result, err := c.Runner.Run(ctx, c.Command, "config", "get", "registry")
	if err != nil {
		return "", rerrors.SpawnFailed(c.Command, err)
	}

	if !result.Success() {
		stderr, err := c.decode(result.Stderr, "stderr")
		if err != nil {
			return "", err
		}
		return "", fmt.Errorf("%s config get registry failed (exit %d): %s",
			c.Command, result.ExitCode, strings.TrimSpace(stderr))
	}

	stdout, err := c.decode(result.Stdout, "stdout")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(stdout), nil
}

// decode converts captured output to a string, rejecting invalid UTF-8.
func (c *Client) decode(b []byte, stream string) (string, error) {
	if !utf8.Valid(b) {
		return "", rerrors.DecodeFailed(c.Command, stream)
	}
	return string(b), nil
}
