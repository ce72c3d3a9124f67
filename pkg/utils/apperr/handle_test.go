package apperr_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/hostdeploy/pkg/domain/model"
	"github.com/secmon-lab/hostdeploy/pkg/utils/apperr"
)

func TestHandle(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected string
		level    string
	}{
		{"config", goerr.New("channel ID is required", goerr.T(model.ErrTagInvalidConfig)), "invalid configuration", "ERROR"},
		{"tool", goerr.New("exit status 1", goerr.T(model.ErrTagExternalTool)), "hosting CLI failed", "ERROR"},
		{"malformed", goerr.New("no status", goerr.T(model.ErrTagMalformedResult)), "unexpected hosting CLI output", "ERROR"},
		{"cancelled", goerr.Wrap(context.Canceled, "stopped"), "operation cancelled", "WARN"},
		{"other", goerr.New("boom"), "application error", "ERROR"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			ctx := ctxlog.With(context.Background(), slog.New(slog.NewJSONHandler(&buf, nil)))

			apperr.Handle(ctx, tc.err)

			var record map[string]any
			gt.NoError(t, json.Unmarshal(buf.Bytes(), &record)).Required()
			gt.V(t, record["msg"]).Equal(tc.expected)
			gt.V(t, record["level"]).Equal(tc.level)
		})
	}

	t.Run("nil error logs nothing", func(t *testing.T) {
		var buf bytes.Buffer
		ctx := ctxlog.With(context.Background(), slog.New(slog.NewJSONHandler(&buf, nil)))
		apperr.Handle(ctx, nil)
		gt.Equal(t, buf.Len(), 0)
	})
}
