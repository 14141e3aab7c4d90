package field

import "strings"

// joinDescriptors joins descriptor id tokens preserving first-seen order,
// dropping duplicates and the excluded label id. Labels must not double as
// descriptions, so the label id never survives even when a caller passes it
// in explicitly.
func joinDescriptors(tokens []string, exclude string) string {
	if len(tokens) == 0 {
		return ""
	}

	out := make([]string, 0, len(tokens))
	seen := make(map[string]struct{}, len(tokens))

	for _, token := range tokens {
		trimmed := strings.TrimSpace(token)
		if trimmed == "" || trimmed == exclude {
			continue
		}
		if _, dup := seen[trimmed]; dup {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}

	return strings.Join(out, " ")
}
