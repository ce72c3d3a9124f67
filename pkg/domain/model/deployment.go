package model

import (
	"log/slog"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/hostdeploy/pkg/domain/types"
)

// Deployment is the history record of one hosting operation
type Deployment struct {
	ID         types.DeploymentID  `firestore:"id" json:"id" yaml:"id"`
	Kind       types.OperationKind `firestore:"kind" json:"kind" yaml:"kind"`
	ProjectID  types.ProjectID     `firestore:"project_id" json:"project_id,omitempty" yaml:"project_id,omitempty"`
	ChannelID  types.ChannelID     `firestore:"channel_id" json:"channel_id,omitempty" yaml:"channel_id,omitempty"`
	Target     types.Target        `firestore:"target" json:"target,omitempty" yaml:"target,omitempty"`
	Status     types.ResultStatus  `firestore:"status" json:"status" yaml:"status"`
	URLs       []string            `firestore:"urls" json:"urls,omitempty" yaml:"urls,omitempty"`
	ExpireTime string              `firestore:"expire_time" json:"expire_time,omitempty" yaml:"expire_time,omitempty"`
	Error      string              `firestore:"error" json:"error,omitempty" yaml:"error,omitempty"`
	CreatedAt  time.Time           `firestore:"created_at" json:"created_at" yaml:"created_at"`
}

// NewDeployment creates a deployment record for a finished operation
func NewDeployment(kind types.OperationKind, projectID types.ProjectID, channelID types.ChannelID, target types.Target, result Result) (*Deployment, error) {
	if result == nil {
		return nil, goerr.New("result is required")
	}

	d, err := newDeployment(kind, projectID, channelID, target, result.ResultStatus())
	if err != nil {
		return nil, err
	}

	switch r := result.(type) {
	case *ChannelSuccessResult:
		summary, err := InterpretChannelDeployResult(r)
		if err != nil {
			return nil, err
		}
		d.URLs = summary.URLs
		d.ExpireTime = summary.ExpireTime
	case *ErrorResult:
		d.Error = r.Error
	}

	return d, nil
}

// NewFailedDeployment creates a deployment record for an operation that
// ended without a result, e.g. both hosting CLI attempts failed.
func NewFailedDeployment(kind types.OperationKind, projectID types.ProjectID, channelID types.ChannelID, target types.Target, cause error) (*Deployment, error) {
	if cause == nil {
		return nil, goerr.New("cause is required")
	}

	d, err := newDeployment(kind, projectID, channelID, target, types.ResultStatusError)
	if err != nil {
		return nil, err
	}
	d.Error = cause.Error()
	return d, nil
}

func newDeployment(kind types.OperationKind, projectID types.ProjectID, channelID types.ChannelID, target types.Target, status types.ResultStatus) (*Deployment, error) {
	if !kind.IsValid() {
		return nil, goerr.New("invalid operation kind", goerr.V("kind", kind))
	}

	id, err := types.NewDeploymentID()
	if err != nil {
		return nil, err
	}

	return &Deployment{
		ID:        id,
		Kind:      kind,
		ProjectID: projectID,
		ChannelID: channelID,
		Target:    target,
		Status:    status,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// Validate validates the deployment record
func (d *Deployment) Validate() error {
	if err := d.ID.Validate(); err != nil {
		return err
	}
	if !d.Kind.IsValid() {
		return goerr.New("invalid operation kind", goerr.V("kind", d.Kind))
	}
	if !d.Status.IsValid() {
		return goerr.New("invalid result status", goerr.V("status", d.Status))
	}
	return nil
}

// LogValue returns structured log value
func (d Deployment) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("id", d.ID.String()),
		slog.String("kind", d.Kind.String()),
		slog.String("project", d.ProjectID.String()),
		slog.String("channel", d.ChannelID.String()),
		slog.String("status", d.Status.String()),
		slog.Any("urls", d.URLs),
	)
}
