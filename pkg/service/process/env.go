package process

import (
	"sort"
	"strings"
)

// MergeEnv overlays variables on a base environment in "KEY=VALUE" form.
// Overlay values win; the base order is kept, keys only present in the
// overlay are appended in sorted order, and each key appears once.
func MergeEnv(base []string, overlay map[string]string) []string {
	result := make([]string, 0, len(base)+len(overlay))
	seen := make(map[string]bool, len(base)+len(overlay))

	for _, kv := range base {
		key, _, _ := strings.Cut(kv, "=")
		if seen[key] {
			continue
		}
		seen[key] = true

		if value, ok := overlay[key]; ok {
			result = append(result, key+"="+value)
			continue
		}
		result = append(result, kv)
	}

	keys := make([]string, 0, len(overlay))
	for key := range overlay {
		if !seen[key] {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	for _, key := range keys {
		result = append(result, key+"="+overlay[key])
	}

	return result
}
