package model

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/hostdeploy/pkg/domain/types"
)

// ChannelConfig holds the parameters of a preview channel operation
type ChannelConfig struct {
	ProjectID types.ProjectID
	ChannelID types.ChannelID
	Target    types.Target // Optional: restricts the deploy to one target
	Expires   string       // Optional: duration after which the channel is reclaimed, e.g. "7d"
}

// Validate validates the channel configuration
func (c *ChannelConfig) Validate() error {
	if c.ChannelID == "" {
		return goerr.New("channel ID is required", goerr.T(ErrTagInvalidConfig))
	}
	return nil
}

// Production returns the production configuration sharing project and target
func (c *ChannelConfig) Production() ProductionConfig {
	return ProductionConfig{
		ProjectID: c.ProjectID,
		Target:    c.Target,
	}
}

// LogValue returns structured log value
func (c ChannelConfig) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("project", c.ProjectID.String()),
		slog.String("channel", c.ChannelID.String()),
		slog.String("target", c.Target.String()),
		slog.String("expires", c.Expires),
	)
}

// ProductionConfig holds the parameters of a production (live channel) operation
type ProductionConfig struct {
	ProjectID types.ProjectID
	Target    types.Target // Optional
}

// LogValue returns structured log value
func (c ProductionConfig) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("project", c.ProjectID.String()),
		slog.String("target", c.Target.String()),
	)
}
