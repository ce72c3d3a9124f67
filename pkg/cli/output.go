package cli

import (
	"encoding/json"
	"io"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/hostdeploy/pkg/cli/config"
	"gopkg.in/yaml.v3"
)

// writeResult renders v to w in the given format
func writeResult(w io.Writer, format string, v any) error {
	switch format {
	case config.OutputFormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return goerr.Wrap(err, "failed to encode result as YAML")
		}
		if err := enc.Close(); err != nil {
			return goerr.Wrap(err, "failed to flush YAML encoder")
		}

	case config.OutputFormatJSON, "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return goerr.Wrap(err, "failed to encode result as JSON")
		}

	default:
		return goerr.New("unsupported output format", goerr.V("format", format))
	}

	return nil
}
