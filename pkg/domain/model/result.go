package model

import (
	"encoding/json"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/hostdeploy/pkg/domain/types"
	"github.com/tidwall/gjson"
)

// ChannelSuccessResult is a successful preview channel deploy
type ChannelSuccessResult struct {
	Status types.ResultStatus `json:"status" yaml:"status"`
	Result SiteDeploys        `json:"result" yaml:"result"`
}

// ProductionSuccessResult is a successful deploy to the live channel
type ProductionSuccessResult struct {
	Status types.ResultStatus `json:"status" yaml:"status"`
	Result ProductionHosting  `json:"result" yaml:"result"`
}

// ProductionHosting is the payload of a production deploy
type ProductionHosting struct {
	Hosting HostingTargets `json:"hosting" yaml:"hosting"`
}

// RemovalSuccessResult is a deleted preview channel
type RemovalSuccessResult struct {
	Status types.ResultStatus `json:"status" yaml:"status"`
}

// RemovalSkippedResult is reported when there was no channel to delete
type RemovalSkippedResult struct {
	Status types.ResultStatus `json:"status" yaml:"status"`
}

// ErrorResult is a CLI run that completed but reported an application error
type ErrorResult struct {
	Status types.ResultStatus `json:"status" yaml:"status"`
	Error  string             `json:"error" yaml:"error"`
}

// Result is implemented by every result variant
type Result interface {
	ResultStatus() types.ResultStatus
}

// ChannelDeployResult is either *ChannelSuccessResult or *ErrorResult
type ChannelDeployResult interface {
	Result
	channelDeployResult()
}

// ProductionDeployResult is either *ProductionSuccessResult or *ErrorResult
type ProductionDeployResult interface {
	Result
	productionDeployResult()
}

// RemovalResult is *RemovalSuccessResult, *RemovalSkippedResult or *ErrorResult
type RemovalResult interface {
	Result
	removalResult()
}

func (r *ChannelSuccessResult) ResultStatus() types.ResultStatus    { return r.Status }
func (r *ProductionSuccessResult) ResultStatus() types.ResultStatus { return r.Status }
func (r *RemovalSuccessResult) ResultStatus() types.ResultStatus    { return r.Status }
func (r *RemovalSkippedResult) ResultStatus() types.ResultStatus    { return r.Status }
func (r *ErrorResult) ResultStatus() types.ResultStatus             { return r.Status }

func (*ChannelSuccessResult) channelDeployResult()       {}
func (*ProductionSuccessResult) productionDeployResult() {}
func (*RemovalSuccessResult) removalResult()             {}
func (*RemovalSkippedResult) removalResult()             {}
func (*ErrorResult) channelDeployResult()                {}
func (*ErrorResult) productionDeployResult()             {}
func (*ErrorResult) removalResult()                      {}

// ParseChannelDeployResult decodes the output of hosting:channel:deploy
func ParseChannelDeployResult(text string) (ChannelDeployResult, error) {
	raw, status, err := parseEnvelope(text, types.ResultStatusSuccess, types.ResultStatusError)
	if err != nil {
		return nil, err
	}

	if status == types.ResultStatusError {
		errResult, err := decodeErrorResult(raw)
		if err != nil {
			return nil, err
		}
		return errResult, nil
	}

	if !gjson.Get(raw, "result").IsObject() {
		return nil, goerr.New("channel deploy result has no result object",
			goerr.T(ErrTagMalformedResult),
			goerr.V("output", raw))
	}

	var result ChannelSuccessResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, goerr.Wrap(err, "failed to decode channel deploy result",
			goerr.T(ErrTagMalformedResult),
			goerr.V("output", raw))
	}
	if len(result.Result) == 0 {
		return nil, goerr.New("channel deploy result has no sites",
			goerr.T(ErrTagMalformedResult),
			goerr.V("output", raw))
	}

	return &result, nil
}

// ParseProductionDeployResult decodes the output of deploy --only hosting
func ParseProductionDeployResult(text string) (ProductionDeployResult, error) {
	raw, status, err := parseEnvelope(text, types.ResultStatusSuccess, types.ResultStatusError)
	if err != nil {
		return nil, err
	}

	if status == types.ResultStatusError {
		errResult, err := decodeErrorResult(raw)
		if err != nil {
			return nil, err
		}
		return errResult, nil
	}

	if !gjson.Get(raw, "result.hosting").Exists() {
		return nil, goerr.New("production deploy result has no hosting field",
			goerr.T(ErrTagMalformedResult),
			goerr.V("output", raw))
	}

	var result ProductionSuccessResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, goerr.Wrap(err, "failed to decode production deploy result",
			goerr.T(ErrTagMalformedResult),
			goerr.V("output", raw))
	}

	return &result, nil
}

// ParseRemovalResult decodes the output of hosting:channel:delete
func ParseRemovalResult(text string) (RemovalResult, error) {
	raw, status, err := parseEnvelope(text, types.ResultStatusSuccess, types.ResultStatusSkipped, types.ResultStatusError)
	if err != nil {
		return nil, err
	}

	switch status {
	case types.ResultStatusError:
		errResult, err := decodeErrorResult(raw)
		if err != nil {
			return nil, err
		}
		return errResult, nil
	case types.ResultStatusSkipped:
		return &RemovalSkippedResult{Status: status}, nil
	default:
		return &RemovalSuccessResult{Status: status}, nil
	}
}

// parseEnvelope validates the text as a JSON object whose status is one of allowed
func parseEnvelope(text string, allowed ...types.ResultStatus) (string, types.ResultStatus, error) {
	raw := strings.TrimSpace(text)
	if raw == "" {
		return "", "", goerr.New("hosting CLI produced no output",
			goerr.T(ErrTagMalformedResult))
	}
	if !gjson.Valid(raw) {
		return "", "", goerr.New("hosting CLI output is not valid JSON",
			goerr.T(ErrTagMalformedResult),
			goerr.V("output", raw))
	}

	parsed := gjson.Parse(raw)
	if !parsed.IsObject() {
		return "", "", goerr.New("hosting CLI output is not a JSON object",
			goerr.T(ErrTagMalformedResult),
			goerr.V("output", raw))
	}

	field := parsed.Get("status")
	if field.Type != gjson.String {
		return "", "", goerr.New("hosting CLI output has no status",
			goerr.T(ErrTagMalformedResult),
			goerr.V("output", raw))
	}

	status := types.ResultStatus(field.String())
	for _, s := range allowed {
		if s == status {
			return raw, status, nil
		}
	}

	return "", "", goerr.New("unexpected status in hosting CLI output",
		goerr.T(ErrTagMalformedResult),
		goerr.V("status", status),
		goerr.V("allowed", allowed))
}

func decodeErrorResult(raw string) (*ErrorResult, error) {
	var result ErrorResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, goerr.Wrap(err, "failed to decode error result",
			goerr.T(ErrTagMalformedResult),
			goerr.V("output", raw))
	}
	return &result, nil
}

// ChannelDeploySummary holds the fields reported for a channel deploy
type ChannelDeploySummary struct {
	ExpireTime string   `json:"expire_time" yaml:"expire_time"`
	URLs       []string `json:"urls" yaml:"urls"`
}

// DetailsURL returns the first URL, or an empty string
func (s *ChannelDeploySummary) DetailsURL() string {
	if len(s.URLs) == 0 {
		return ""
	}
	return s.URLs[0]
}

// InterpretChannelDeployResult extracts the expiration time and URLs of a channel deploy.
// Every site in one deploy shares the channel's expiration, so the first record's is used.
func InterpretChannelDeployResult(result *ChannelSuccessResult) (*ChannelDeploySummary, error) {
	if result == nil || len(result.Result) == 0 {
		return nil, goerr.New("channel deploy result has no sites",
			goerr.T(ErrTagMalformedResult))
	}

	return &ChannelDeploySummary{
		ExpireTime: result.Result[0].ExpireTime,
		URLs:       result.Result.URLs(),
	}, nil
}
