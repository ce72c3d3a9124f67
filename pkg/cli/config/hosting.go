package config

import (
	"log/slog"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/hostdeploy/pkg/domain/model"
	"github.com/secmon-lab/hostdeploy/pkg/domain/types"
	"github.com/secmon-lab/hostdeploy/pkg/service/hosting"
	"github.com/secmon-lab/hostdeploy/pkg/service/process"
	"github.com/urfave/cli/v3"
)

// Hosting holds the hosting CLI invocation settings
type Hosting struct {
	Tool        string
	Credentials string
	ProjectID   string
	Agent       string
}

// Flags returns CLI flags for Hosting configuration
func (h *Hosting) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "tool",
			Usage:       "Hosting CLI command line",
			Category:    "Hosting",
			Value:       hosting.DefaultCommand,
			Sources:     cli.EnvVars("HOSTDEPLOY_TOOL"),
			Destination: &h.Tool,
		},
		&cli.StringFlag{
			Name:        "credentials",
			Usage:       "Path to the service account key file",
			Category:    "Hosting",
			Sources:     cli.EnvVars("HOSTDEPLOY_CREDENTIALS", hosting.EnvCredentials),
			Destination: &h.Credentials,
		},
		&cli.StringFlag{
			Name:        "project-id",
			Usage:       "Hosting project ID (the CLI's default project is used if omitted)",
			Category:    "Hosting",
			Sources:     cli.EnvVars("HOSTDEPLOY_PROJECT_ID", "INPUT_PROJECTID"),
			Destination: &h.ProjectID,
		},
		&cli.StringFlag{
			Name:        "agent",
			Usage:       "Deploy agent name reported to the hosting CLI",
			Category:    "Hosting",
			Value:       hosting.DefaultAgent,
			Sources:     cli.EnvVars("HOSTDEPLOY_AGENT"),
			Destination: &h.Agent,
		},
	}
}

// Configure creates the hosting CLI client
func (h *Hosting) Configure() (*hosting.Client, error) {
	if !h.IsConfigured() {
		return nil, goerr.New("credentials file is required",
			goerr.T(model.ErrTagInvalidConfig),
			goerr.V("env", "HOSTDEPLOY_CREDENTIALS"))
	}

	var opts []hosting.Option
	if h.Tool != "" {
		opts = append(opts, hosting.WithCommand(h.Tool))
	}
	if h.Agent != "" {
		opts = append(opts, hosting.WithAgent(h.Agent))
	}

	runner := process.New(process.WithStderr(os.Stderr))
	return hosting.New(runner, h.Credentials, opts...), nil
}

// Project returns the configured project ID
func (h *Hosting) Project() types.ProjectID {
	return types.ProjectID(h.ProjectID)
}

// IsConfigured checks if a credentials file is set
func (h *Hosting) IsConfigured() bool {
	return h.Credentials != ""
}

// LogValue returns structured log value
func (h Hosting) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("tool", h.Tool),
		slog.String("credentials", h.Credentials),
		slog.String("project", h.ProjectID),
		slog.String("agent", h.Agent),
	)
}
