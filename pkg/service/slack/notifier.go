package slack

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/hostdeploy/pkg/domain/interfaces"
	"github.com/secmon-lab/hostdeploy/pkg/domain/model"
	"github.com/slack-go/slack"
)

// Notifier posts deployment summaries to a Slack channel
type Notifier struct {
	client    interfaces.SlackClient
	channelID string
}

// NewNotifier creates a new Notifier posting to channelID
func NewNotifier(client interfaces.SlackClient, channelID string) *Notifier {
	return &Notifier{
		client:    client,
		channelID: channelID,
	}
}

// NotifyDeployment posts a summary of d
func (n *Notifier) NotifyDeployment(ctx context.Context, d *model.Deployment) error {
	if d == nil {
		return goerr.New("deployment is nil")
	}

	_, ts, err := n.client.PostMessageContext(ctx, n.channelID,
		slack.MsgOptionText(deploymentFallbackText(d), false),
		slack.MsgOptionBlocks(BuildDeploymentMessage(d)...),
	)
	if err != nil {
		return goerr.Wrap(err, "failed to post deployment notification",
			goerr.V("channel", n.channelID),
			goerr.V("deployment", d.ID),
		)
	}

	ctxlog.From(ctx).Debug("Posted deployment notification",
		"channel", n.channelID,
		"ts", ts,
	)
	return nil
}

var _ interfaces.Notifier = (*Notifier)(nil)
