package config

import (
	"log/slog"

	"github.com/secmon-lab/hostdeploy/pkg/domain/model"
	"github.com/secmon-lab/hostdeploy/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

// Channel holds preview channel settings
type Channel struct {
	ID      string
	Expires string
}

// Flags returns CLI flags for Channel configuration
func (c *Channel) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "channel-id",
			Usage:       "Preview channel ID (\"live\" deploys to production)",
			Category:    "Channel",
			Sources:     cli.EnvVars("HOSTDEPLOY_CHANNEL_ID", "INPUT_CHANNELID"),
			Destination: &c.ID,
		},
		&cli.StringFlag{
			Name:        "expires",
			Usage:       "Duration after which the preview channel expires, e.g. 7d",
			Category:    "Channel",
			Sources:     cli.EnvVars("HOSTDEPLOY_EXPIRES", "INPUT_EXPIRES"),
			Destination: &c.Expires,
		},
	}
}

// Build returns the channel operation parameters
func (c *Channel) Build(projectID types.ProjectID, target types.Target) model.ChannelConfig {
	return model.ChannelConfig{
		ProjectID: projectID,
		ChannelID: types.ChannelID(c.ID),
		Target:    target,
		Expires:   c.Expires,
	}
}

// LogValue returns structured log value
func (c Channel) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("id", c.ID),
		slog.String("expires", c.Expires),
	)
}

// Target holds the optional deploy target
type Target struct {
	Name string
}

// Flags returns CLI flags for Target configuration
func (t *Target) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "target",
			Usage:       "Hosting target to deploy (all targets if omitted)",
			Category:    "Channel",
			Sources:     cli.EnvVars("HOSTDEPLOY_TARGET", "INPUT_TARGET"),
			Destination: &t.Name,
		},
	}
}

// Value returns the target
func (t *Target) Value() types.Target {
	return types.Target(t.Name)
}
