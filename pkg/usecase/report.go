package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/hostdeploy/pkg/domain/interfaces"
	"github.com/secmon-lab/hostdeploy/pkg/domain/model"
	"github.com/secmon-lab/hostdeploy/pkg/domain/types"
	"github.com/secmon-lab/hostdeploy/pkg/utils/apperr"
)

// DefaultHistoryLimit is the number of records History returns when no limit is given
const DefaultHistoryLimit = 20

// Report records finished operations and announces them
type Report struct {
	repo     interfaces.Repository
	notifier interfaces.Notifier
}

// ReportOption configures a Report
type ReportOption func(*Report)

// WithNotifier enables deployment notifications
func WithNotifier(notifier interfaces.Notifier) ReportOption {
	return func(r *Report) {
		r.notifier = notifier
	}
}

// NewReport creates a new Report use case
func NewReport(repo interfaces.Repository, opts ...ReportOption) *Report {
	r := &Report{repo: repo}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Operation identifies a finished hosting operation
type Operation struct {
	Kind      types.OperationKind
	ProjectID types.ProjectID
	ChannelID types.ChannelID
	Target    types.Target
}

// Record stores the outcome of op and sends a notification if a notifier is
// configured. Storage and notification failures are logged, not returned.
func (r *Report) Record(ctx context.Context, op Operation, result model.Result) (*model.Deployment, error) {
	deployment, err := model.NewDeployment(op.Kind, op.ProjectID, op.ChannelID, op.Target, result)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create deployment record", goerr.V("kind", op.Kind))
	}

	logger := ctxlog.From(ctx)
	logger.Info("Hosting operation finished", slog.Any("deployment", deployment))
	if success, ok := result.(*model.ChannelSuccessResult); ok {
		if summary, err := model.InterpretChannelDeployResult(success); err == nil {
			logger.Info("Preview channel deployed",
				slog.String("details_url", summary.DetailsURL()),
				slog.String("expire_time", summary.ExpireTime),
				slog.Any("urls", summary.URLs),
			)
		}
	}

	r.publish(ctx, deployment)
	return deployment, nil
}

// RecordFailure stores and announces an operation that ended with cause
// instead of a result.
func (r *Report) RecordFailure(ctx context.Context, op Operation, cause error) (*model.Deployment, error) {
	deployment, err := model.NewFailedDeployment(op.Kind, op.ProjectID, op.ChannelID, op.Target, cause)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create deployment record", goerr.V("kind", op.Kind))
	}

	ctxlog.From(ctx).Info("Hosting operation failed", slog.Any("deployment", deployment))
	r.publish(ctx, deployment)
	return deployment, nil
}

func (r *Report) publish(ctx context.Context, deployment *model.Deployment) {
	if err := r.repo.PutDeployment(ctx, deployment); err != nil {
		apperr.Handle(ctx, goerr.Wrap(err, "failed to save deployment", goerr.V("id", deployment.ID)))
	}

	if r.notifier != nil {
		if err := r.notifier.NotifyDeployment(ctx, deployment); err != nil {
			apperr.Handle(ctx, goerr.Wrap(err, "failed to notify deployment", goerr.V("id", deployment.ID)))
		}
	}
}

// History returns recorded operations, newest first. An empty channelID lists every channel.
func (r *Report) History(ctx context.Context, channelID types.ChannelID, limit int) ([]*model.Deployment, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	deployments, err := r.repo.ListDeployments(ctx, channelID, limit)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list deployments", goerr.V("channel", channelID))
	}
	return deployments, nil
}

// Get returns one recorded operation
func (r *Report) Get(ctx context.Context, id types.DeploymentID) (*model.Deployment, error) {
	if err := id.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid deployment ID", goerr.T(model.ErrTagInvalidConfig))
	}

	deployment, err := r.repo.GetDeployment(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get deployment", goerr.V("id", id))
	}
	return deployment, nil
}
