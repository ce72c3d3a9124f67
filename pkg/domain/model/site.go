package model

import (
	"bytes"
	"encoding/json"

	"github.com/m-mizutani/goerr/v2"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

// SiteDeploy is the per-site record of a preview channel deploy
type SiteDeploy struct {
	Site       string `json:"site" yaml:"site"`
	Target     string `json:"target,omitempty" yaml:"target,omitempty"`
	URL        string `json:"url" yaml:"url"`
	ExpireTime string `json:"expireTime" yaml:"expireTime"`

	// key is the object key the record was decoded from
	key string
}

// Key returns the object key of the record. Records built in code fall back to Site.
func (s SiteDeploy) Key() string {
	if s.key != "" {
		return s.key
	}
	return s.Site
}

// SiteDeploys is the site-keyed object of a channel deploy result.
// It is kept as a slice so the CLI's key order survives decoding.
type SiteDeploys []SiteDeploy

// UnmarshalJSON decodes a JSON object keyed by site, keeping key order
func (s *SiteDeploys) UnmarshalJSON(data []byte) error {
	parsed := gjson.ParseBytes(data)
	if !parsed.IsObject() {
		return goerr.New("site deploys must be a JSON object",
			goerr.T(ErrTagMalformedResult),
			goerr.V("type", parsed.Type.String()))
	}

	var (
		sites   SiteDeploys
		iterErr error
	)
	parsed.ForEach(func(key, value gjson.Result) bool {
		if !value.IsObject() {
			iterErr = goerr.New("site deploy record must be a JSON object",
				goerr.T(ErrTagMalformedResult),
				goerr.V("key", key.String()))
			return false
		}

		var site SiteDeploy
		if err := json.Unmarshal([]byte(value.Raw), &site); err != nil {
			iterErr = goerr.Wrap(err, "failed to decode site deploy record",
				goerr.T(ErrTagMalformedResult),
				goerr.V("key", key.String()))
			return false
		}
		site.key = key.String()
		sites = append(sites, site)
		return true
	})
	if iterErr != nil {
		return iterErr
	}

	*s = sites
	return nil
}

// MarshalJSON encodes the records as a JSON object under their original keys, in order
func (s SiteDeploys) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, site := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(site.Key())
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(site)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML encodes the records as an ordered YAML mapping under their original keys
func (s SiteDeploys) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, site := range s {
		var value yaml.Node
		if err := value.Encode(site); err != nil {
			return nil, goerr.Wrap(err, "failed to encode site deploy record", goerr.V("site", site.Key()))
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: site.Key()},
			&value,
		)
	}
	return node, nil
}

// URLs returns the url of every record in order
func (s SiteDeploys) URLs() []string {
	urls := make([]string, 0, len(s))
	for _, site := range s {
		urls = append(urls, site.URL)
	}
	return urls
}

// HostingTargets holds the "hosting" field of a production deploy, which the
// CLI reports as either a single string or a list of strings.
type HostingTargets []string

// UnmarshalJSON accepts a string or an array of strings
func (h *HostingTargets) UnmarshalJSON(data []byte) error {
	parsed := gjson.ParseBytes(data)
	switch {
	case parsed.Type == gjson.String:
		*h = HostingTargets{parsed.String()}
		return nil
	case parsed.IsArray():
		var targets HostingTargets
		for _, item := range parsed.Array() {
			if item.Type != gjson.String {
				return goerr.New("hosting entries must be strings",
					goerr.T(ErrTagMalformedResult),
					goerr.V("entry", item.Raw))
			}
			targets = append(targets, item.String())
		}
		*h = targets
		return nil
	default:
		return goerr.New("hosting must be a string or an array of strings",
			goerr.T(ErrTagMalformedResult),
			goerr.V("raw", parsed.Raw))
	}
}
