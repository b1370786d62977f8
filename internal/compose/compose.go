// Package compose resolves which Docker Compose entrypoint the host provides
// and builds its invocation arguments.
package compose

import (
	"context"
	"errors"

	"umdev/internal/execx"
)

// Command identifies the compose entrypoint: either the `docker compose`
// plugin or the legacy standalone `docker-compose` binary.
type Command struct {
	Name   string
	Prefix []string
}

// Resolve probes for the compose plugin first and falls back to the legacy
// binary. Neither being available is a precondition failure.
func Resolve(ctx context.Context, r execx.Runner) (Command, error) {
	if _, err := r.LookPath("docker"); err == nil {
		if _, res := r.Capture(ctx, "docker", "compose", "version"); res.Code == 0 {
			return Command{Name: "docker", Prefix: []string{"compose"}}, nil
		}
	}
	if _, err := r.LookPath("docker-compose"); err == nil {
		return Command{Name: "docker-compose"}, nil
	}
	return Command{}, errors.New("docker compose not found: install Docker with the compose plugin or docker-compose")
}

// Args builds the full argument list: prefix, -f flags for every compose
// file, then the subcommand and its arguments.
func (c Command) Args(files []string, sub ...string) []string {
	args := append([]string{}, c.Prefix...)
	for _, f := range files {
		args = append(args, "-f", f)
	}
	return append(args, sub...)
}
