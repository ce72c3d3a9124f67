package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/hostdeploy/pkg/domain/interfaces"
	"github.com/secmon-lab/hostdeploy/pkg/domain/model"
	"github.com/secmon-lab/hostdeploy/pkg/domain/types"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	// Collection names
	deploymentsCollection = "deployments"

	// Field names
	fieldChannelID = "channel_id"
)

// Firestore implements Repository interface with Firestore
type Firestore struct {
	client *firestore.Client
}

// NewFirestore creates a new Firestore repository
func NewFirestore(ctx context.Context, projectID, databaseID string) (*Firestore, error) {
	logger := ctxlog.From(ctx)

	client, err := firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client")
	}

	// Fail fast on invalid project or missing permissions
	_, err = client.Collection(deploymentsCollection).Limit(1).Documents(ctx).Next()
	if err != nil && err != iterator.Done {
		if status.Code(err) == codes.PermissionDenied || status.Code(err) == codes.Unauthenticated {
			_ = client.Close()
			return nil, goerr.Wrap(err, "failed to connect to firestore project",
				goerr.V("firestore error code", status.Code(err).String()),
			)
		}
		logger.Debug("Firestore connection test returned error (may be empty collection)",
			"error", err,
			"errorCode", status.Code(err).String(),
		)
	}

	logger.Debug("Firestore repository initialized",
		"projectID", projectID,
		"databaseID", databaseID,
	)

	return &Firestore{
		client: client,
	}, nil
}

// PutDeployment saves a deployment record to Firestore
func (f *Firestore) PutDeployment(ctx context.Context, deployment *model.Deployment) error {
	if deployment == nil {
		return goerr.New("deployment is nil")
	}
	if err := deployment.Validate(); err != nil {
		return goerr.Wrap(err, "invalid deployment")
	}

	_, err := f.client.Collection(deploymentsCollection).Doc(deployment.ID.String()).Set(ctx, deployment)
	if err != nil {
		return goerr.Wrap(err, "failed to save deployment to firestore", goerr.V("id", deployment.ID))
	}

	return nil
}

// GetDeployment retrieves a deployment record by ID
func (f *Firestore) GetDeployment(ctx context.Context, id types.DeploymentID) (*model.Deployment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	doc, err := f.client.Collection(deploymentsCollection).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(model.ErrDeploymentNotFound, "failed to get deployment", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get deployment from firestore", goerr.V("id", id))
	}

	var deployment model.Deployment
	if err := doc.DataTo(&deployment); err != nil {
		return nil, goerr.Wrap(err, "failed to decode deployment")
	}

	return &deployment, nil
}

// ListDeployments lists deployment records, newest first
func (f *Firestore) ListDeployments(ctx context.Context, channelID types.ChannelID, limit int) ([]*model.Deployment, error) {
	// No OrderBy so that a channel filter does not require a composite index.
	// Records are sorted in memory instead.
	query := f.client.Collection(deploymentsCollection).Query
	if channelID != "" {
		query = query.Where(fieldChannelID, "==", channelID.String())
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	deployments := []*model.Deployment{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate deployments")
		}

		var deployment model.Deployment
		if err := doc.DataTo(&deployment); err != nil {
			return nil, goerr.Wrap(err, "failed to decode deployment", goerr.V("doc", doc.Ref.ID))
		}

		deployments = append(deployments, &deployment)
	}

	sortNewestFirst(deployments)

	if limit > 0 && len(deployments) > limit {
		deployments = deployments[:limit]
	}

	return deployments, nil
}

// Close closes the Firestore client
func (f *Firestore) Close() error {
	if f.client != nil {
		return f.client.Close()
	}
	return nil
}

var _ interfaces.Repository = (*Firestore)(nil) // Compile-time interface check
