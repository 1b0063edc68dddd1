package domain

import "strings"

// ParseList turns a comma-separated edit field into an ordered list.
// Pieces are trimmed and empty pieces dropped. Order and duplicates are kept.
func ParseList(raw string) []string {
	out := []string{}
	for _, piece := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(piece); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// JoinList renders a list back into its edit field form.
func JoinList(items []string) string {
	return strings.Join(items, ", ")
}
