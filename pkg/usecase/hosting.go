package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/hostdeploy/pkg/domain/interfaces"
	"github.com/secmon-lab/hostdeploy/pkg/domain/model"
	"github.com/secmon-lab/hostdeploy/pkg/domain/types"
)

// Hosting assembles hosting CLI invocations for each deploy operation and
// parses their results. Results are returned as-is: an ErrorResult is a value,
// not an error.
type Hosting struct {
	cli interfaces.HostingCLI
}

// NewHosting creates a new Hosting use case
func NewHosting(cli interfaces.HostingCLI) *Hosting {
	return &Hosting{cli: cli}
}

// DeployPreview deploys to the preview channel cfg.ChannelID
func (h *Hosting) DeployPreview(ctx context.Context, cfg model.ChannelConfig) (model.ChannelDeployResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	ctxlog.From(ctx).Debug("Deploying to preview channel", slog.Any("config", cfg))

	text, err := h.cli.RunWithCredentials(ctx, PreviewDeployArgs(cfg), cfg.ProjectID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to deploy preview channel", goerr.V("channel", cfg.ChannelID))
	}

	return model.ParseChannelDeployResult(text)
}

// DeployProduction deploys to the live channel
func (h *Hosting) DeployProduction(ctx context.Context, cfg model.ProductionConfig) (model.ProductionDeployResult, error) {
	ctxlog.From(ctx).Debug("Deploying to live channel", slog.Any("config", cfg))

	text, err := h.cli.RunWithCredentials(ctx, ProductionDeployArgs(cfg.Target), cfg.ProjectID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to deploy production")
	}

	return model.ParseProductionDeployResult(text)
}

// RemovePreview deletes the preview channel cfg.ChannelID. A channel that does
// not exist yields a RemovalSkippedResult.
func (h *Hosting) RemovePreview(ctx context.Context, cfg model.ChannelConfig) (model.RemovalResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	ctxlog.From(ctx).Debug("Removing preview channel", slog.Any("config", cfg))

	text, err := h.cli.RunWithCredentials(ctx, RemovePreviewArgs(cfg.ChannelID), cfg.ProjectID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to remove preview channel", goerr.V("channel", cfg.ChannelID))
	}

	return model.ParseRemovalResult(text)
}

// RemoveProductionPreview runs the production deploy verb for cleanup workflows
func (h *Hosting) RemoveProductionPreview(ctx context.Context, cfg model.ProductionConfig) (model.ProductionDeployResult, error) {
	ctxlog.From(ctx).Debug("Removing production preview", slog.Any("config", cfg))

	text, err := h.cli.RunWithCredentials(ctx, ProductionDeployArgs(cfg.Target), cfg.ProjectID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to remove production preview")
	}

	return model.ParseProductionDeployResult(text)
}

// PreviewDeployArgs builds hosting:channel:deploy arguments
func PreviewDeployArgs(cfg model.ChannelConfig) []string {
	args := []string{"hosting:channel:deploy", cfg.ChannelID.String()}
	if cfg.Target != "" {
		args = append(args, "--only", cfg.Target.String())
	}
	if cfg.Expires != "" {
		args = append(args, "--expires", cfg.Expires)
	}
	return args
}

// ProductionDeployArgs builds deploy arguments limited to hosting, or to a
// single hosting target when one is set
func ProductionDeployArgs(target types.Target) []string {
	only := "hosting"
	if target != "" {
		only += ":" + target.String()
	}
	return []string{"deploy", "--only", only}
}

// RemovePreviewArgs builds hosting:channel:delete arguments
func RemovePreviewArgs(channelID types.ChannelID) []string {
	return []string{"hosting:channel:delete", channelID.String()}
}
