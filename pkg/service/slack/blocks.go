package slack

import (
	"fmt"
	"strings"

	"github.com/secmon-lab/hostdeploy/pkg/domain/model"
	"github.com/secmon-lab/hostdeploy/pkg/domain/types"
	"github.com/slack-go/slack"
)

// maxErrorTextLen keeps the error section under Slack's 3000 character limit
// for section text, fence included.
const maxErrorTextLen = 2900

// GetStatusEmoji returns emoji based on result status
func GetStatusEmoji(status types.ResultStatus) string {
	switch status {
	case types.ResultStatusSuccess:
		return "✅"
	case types.ResultStatusSkipped:
		return "⏭️"
	case types.ResultStatusError:
		return "🚨"
	default:
		return "❓"
	}
}

func operationTitle(kind types.OperationKind) string {
	switch kind {
	case types.OperationDeployPreview:
		return "Preview deploy"
	case types.OperationDeployProduction:
		return "Production deploy"
	case types.OperationRemovePreview:
		return "Preview channel removal"
	case types.OperationRemoveProductionPreview:
		return "Production preview removal"
	default:
		return kind.String()
	}
}

// BuildDeploymentMessage creates Slack blocks announcing a finished deployment
func BuildDeploymentMessage(d *model.Deployment) []slack.Block {
	blocks := []slack.Block{}

	headerText := fmt.Sprintf("%s *%s* %s", GetStatusEmoji(d.Status), operationTitle(d.Kind), d.Status)
	blocks = append(blocks, slack.NewSectionBlock(
		slack.NewTextBlockObject(slack.MarkdownType, headerText, false, false),
		nil,
		nil,
	))

	var fields []*slack.TextBlockObject
	if d.ProjectID != "" {
		fields = append(fields, slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("*Project:*\n%s", d.ProjectID), false, false))
	}
	if d.ChannelID != "" {
		fields = append(fields, slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("*Channel:*\n%s", d.ChannelID), false, false))
	}
	if d.Target != "" {
		fields = append(fields, slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("*Target:*\n%s", d.Target), false, false))
	}
	if d.ExpireTime != "" {
		fields = append(fields, slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("*Expires:*\n%s", d.ExpireTime), false, false))
	}
	if len(fields) > 0 {
		blocks = append(blocks, slack.NewSectionBlock(nil, fields, nil))
	}

	if len(d.URLs) > 0 {
		links := make([]string, 0, len(d.URLs))
		for _, u := range d.URLs {
			links = append(links, fmt.Sprintf("• <%s>", u))
		}
		blocks = append(blocks, slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.MarkdownType, strings.Join(links, "\n"), false, false),
			nil,
			nil,
		))
	}

	if d.Error != "" {
		blocks = append(blocks, slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("```%s```", errorText(d.Error)), false, false),
			nil,
			nil,
		))
	}

	blocks = append(blocks, slack.NewContextBlock("",
		slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("ID: `%s`", d.ID), false, false),
	))

	return blocks
}

// deploymentFallbackText is shown in notifications where blocks are not rendered
func deploymentFallbackText(d *model.Deployment) string {
	text := fmt.Sprintf("%s %s", operationTitle(d.Kind), d.Status)
	if d.ChannelID != "" {
		text += fmt.Sprintf(" (%s)", d.ChannelID)
	}
	return text
}

// errorText makes CLI error output safe to put inside a code block. Backticks
// would close the fence early.
func errorText(s string) string {
	s = strings.ReplaceAll(s, "`", "'")
	if runes := []rune(s); len(runes) > maxErrorTextLen {
		s = string(runes[:maxErrorTextLen]) + "…"
	}
	return s
}
