package mcpserver

import (
	"encoding/json"

	"github.com/aditpras/folio/internal/content"
	"github.com/aditpras/folio/internal/models"
)

// Array fields that round-trip through the tools as comma-separated
// strings, the same editing form the HTTP API accepts.
var listFields = map[string][]string{
	models.CollectionExperiences: {"skills"},
	models.CollectionProjects:    {"tags"},
}

// coerceListFields re-parses delimited string inputs into the arrays the
// records store. Ready arrays pass through untouched.
func coerceListFields(collection string, fields map[string]any) {
	for _, key := range listFields[collection] {
		if s, ok := fields[key].(string); ok {
			fields[key] = content.ParseList(s)
		}
	}
}

// renderRecords marshals tool output, joining list-backed fields back
// into their comma-separated editing form. v may be a single record or a
// slice of them.
func renderRecords(collection string, v any) string {
	out, _ := json.MarshalIndent(v, "", "  ")
	keys := listFields[collection]
	if len(keys) == 0 {
		return string(out)
	}

	var decoded any
	if err := json.Unmarshal(out, &decoded); err != nil {
		return string(out)
	}
	switch d := decoded.(type) {
	case []any:
		for _, item := range d {
			if m, ok := item.(map[string]any); ok {
				joinListFields(m, keys)
			}
		}
	case map[string]any:
		joinListFields(d, keys)
	}
	out, _ = json.MarshalIndent(decoded, "", "  ")
	return string(out)
}

func joinListFields(m map[string]any, keys []string) {
	for _, key := range keys {
		arr, ok := m[key].([]any)
		if !ok {
			continue
		}
		items := make([]string, 0, len(arr))
		for _, v := range arr {
			if s, ok := v.(string); ok {
				items = append(items, s)
			}
		}
		m[key] = content.JoinList(items)
	}
}
