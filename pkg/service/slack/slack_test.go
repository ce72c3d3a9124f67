package slack_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/hostdeploy/pkg/domain/interfaces/mocks"
	"github.com/secmon-lab/hostdeploy/pkg/domain/model"
	"github.com/secmon-lab/hostdeploy/pkg/domain/types"
	slackSvc "github.com/secmon-lab/hostdeploy/pkg/service/slack"
	"github.com/slack-go/slack"
)

func newPreviewDeployment() *model.Deployment {
	return &model.Deployment{
		ID:         "0192b3c4-0000-7000-8000-000000000001",
		Kind:       types.OperationDeployPreview,
		ProjectID:  "my-project",
		ChannelID:  "pr-1",
		Status:     types.ResultStatusSuccess,
		URLs:       []string{"https://a.web.app", "https://b.web.app"},
		ExpireTime: "2026-10-26T10:00:00Z",
		CreatedAt:  time.Now(),
	}
}

func TestBuildDeploymentMessage(t *testing.T) {
	t.Run("preview success", func(t *testing.T) {
		blocks := slackSvc.BuildDeploymentMessage(newPreviewDeployment())
		gt.A(t, blocks).Length(4)

		header, ok := blocks[0].(*slack.SectionBlock)
		gt.True(t, ok)
		gt.S(t, header.Text.Text).Contains("Preview deploy")
		gt.S(t, header.Text.Text).Contains("✅")

		fields := blocks[1].(*slack.SectionBlock).Fields
		gt.A(t, fields).Length(3)
		gt.S(t, fields[1].Text).Contains("pr-1")
		gt.S(t, fields[2].Text).Contains("2026-10-26T10:00:00Z")

		links := blocks[2].(*slack.SectionBlock).Text.Text
		gt.S(t, links).Contains("<https://a.web.app>")
		gt.S(t, links).Contains("<https://b.web.app>")

		_, ok = blocks[3].(*slack.ContextBlock)
		gt.True(t, ok)
	})

	t.Run("error carries message", func(t *testing.T) {
		d := &model.Deployment{
			ID:     "id-1",
			Kind:   types.OperationDeployProduction,
			Status: types.ResultStatusError,
			Error:  "quota exceeded",
		}
		blocks := slackSvc.BuildDeploymentMessage(d)
		gt.A(t, blocks).Length(3)
		gt.S(t, blocks[0].(*slack.SectionBlock).Text.Text).Contains("🚨")
		gt.S(t, blocks[1].(*slack.SectionBlock).Text.Text).Contains("quota exceeded")
	})

	t.Run("backticks in error do not break the code block", func(t *testing.T) {
		d := &model.Deployment{
			ID:     "id-1",
			Kind:   types.OperationDeployProduction,
			Status: types.ResultStatusError,
			Error:  "run ```firebase login``` and retry `now`",
		}
		text := slackSvc.BuildDeploymentMessage(d)[1].(*slack.SectionBlock).Text.Text
		gt.True(t, strings.HasPrefix(text, "```"))
		gt.True(t, strings.HasSuffix(text, "```"))
		gt.Equal(t, strings.Count(text, "`"), 6)
		gt.S(t, text).Contains("firebase login")
	})

	t.Run("long error is truncated", func(t *testing.T) {
		d := &model.Deployment{
			ID:     "id-1",
			Kind:   types.OperationDeployProduction,
			Status: types.ResultStatusError,
			Error:  strings.Repeat("debug trace line\n", 1000),
		}
		text := slackSvc.BuildDeploymentMessage(d)[1].(*slack.SectionBlock).Text.Text
		gt.True(t, utf8.RuneCountInString(text) <= 3000)
		gt.S(t, text).Contains("…```")
	})
}

func TestGetStatusEmoji(t *testing.T) {
	testCases := []struct {
		status   types.ResultStatus
		expected string
	}{
		{types.ResultStatusSuccess, "✅"},
		{types.ResultStatusSkipped, "⏭️"},
		{types.ResultStatusError, "🚨"},
		{"unknown", "❓"},
	}

	for _, tc := range testCases {
		t.Run(tc.status.String(), func(t *testing.T) {
			gt.Equal(t, slackSvc.GetStatusEmoji(tc.status), tc.expected)
		})
	}
}

func TestNotifier_NotifyDeployment(t *testing.T) {
	ctx := context.Background()

	t.Run("posts to configured channel", func(t *testing.T) {
		client := &mocks.SlackClientMock{
			PostMessageContextFunc: func(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error) {
				return channelID, "1234.5678", nil
			},
		}

		notifier := slackSvc.NewNotifier(client, "C0DEPLOY")
		gt.NoError(t, notifier.NotifyDeployment(ctx, newPreviewDeployment()))

		calls := client.PostMessageContextCalls()
		gt.Equal(t, len(calls), 1)
		gt.Equal(t, calls[0].ChannelID, "C0DEPLOY")
		gt.A(t, calls[0].Options).Longer(0)
	})

	t.Run("post failure is returned", func(t *testing.T) {
		client := &mocks.SlackClientMock{
			PostMessageContextFunc: func(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error) {
				return "", "", goerr.New("channel_not_found")
			},
		}

		err := slackSvc.NewNotifier(client, "C0DEPLOY").NotifyDeployment(ctx, newPreviewDeployment())
		gt.Error(t, err)
		gt.V(t, goerr.Values(err)["channel"]).Equal("C0DEPLOY")
	})

	t.Run("nil deployment", func(t *testing.T) {
		client := &mocks.SlackClientMock{}
		gt.Error(t, slackSvc.NewNotifier(client, "C0DEPLOY").NotifyDeployment(ctx, nil))
		gt.Equal(t, len(client.PostMessageContextCalls()), 0)
	})
}

func TestService_PostMessageContext(t *testing.T) {
	var received string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gt.NoError(t, r.ParseForm())
		received = r.FormValue("channel")
		w.Header().Set("Content-Type", "application/json")
		gt.NoError(t, json.NewEncoder(w).Encode(map[string]any{
			"ok":      true,
			"channel": received,
			"ts":      "1234.5678",
		}))
	}))
	defer server.Close()

	svc := slackSvc.New("xoxb-test", slack.OptionAPIURL(server.URL+"/"))
	notifier := slackSvc.NewNotifier(svc, "C0DEPLOY")

	gt.NoError(t, notifier.NotifyDeployment(context.Background(), newPreviewDeployment()))
	gt.Equal(t, received, "C0DEPLOY")
}
