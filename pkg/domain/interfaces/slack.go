package interfaces

//go:generate moq -out mocks/slack_mock.go -pkg mocks . SlackClient Notifier

import (
	"context"

	"github.com/secmon-lab/hostdeploy/pkg/domain/model"
	"github.com/slack-go/slack"
)

// SlackClient is the subset of the Slack API used for notifications
type SlackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

// Notifier announces finished deployments
type Notifier interface {
	NotifyDeployment(ctx context.Context, deployment *model.Deployment) error
}
