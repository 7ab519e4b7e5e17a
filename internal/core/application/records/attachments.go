package records

import (
	"encoding/json"
	"slices"
	"strings"
)

// DecodeAttachments reads an attachment cell. Both a comma-joined list and a
// JSON array of strings are accepted; blank entries are dropped.
func DecodeAttachments(cell string) []string {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return nil
	}

	if strings.HasPrefix(cell, "[") {
		var refs []string
		if err := json.Unmarshal([]byte(cell), &refs); err == nil {
			return compact(refs)
		}
	}

	return compact(strings.Split(cell, ","))
}

// EncodeAttachments writes the comma-joined form. When a reference itself
// contains a comma it writes a JSON array instead, so DecodeAttachments
// returns the same list.
func EncodeAttachments(refs []string) string {
	refs = compact(refs)
	if slices.ContainsFunc(refs, func(r string) bool { return strings.Contains(r, ",") }) {
		if payload, err := json.Marshal(refs); err == nil {
			return string(payload)
		}
	}
	return strings.Join(refs, ", ")
}

func compact(refs []string) []string {
	out := make([]string, 0, len(refs))
	for _, r := range refs {
		if r = strings.TrimSpace(r); r != "" {
			out = append(out, r)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
