package content

import "strings"

// ParseList splits a comma-separated input into a clean slice: segments
// are trimmed and empty ones dropped. "React, Node,  Teaching" parses to
// ["React" "Node" "Teaching"].
func ParseList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// JoinList renders a slice back into the comma-separated editing form.
func JoinList(items []string) string {
	return strings.Join(items, ", ")
}
