package field

import (
	"strings"

	"github.com/google/uuid"
)

// LabelID derives the label element id for a field id.
func LabelID(id string) string {
	return suffixID(id, "-label")
}

// HelpTextID derives the help region id for a field id.
func HelpTextID(id string) string {
	return suffixID(id, "-help")
}

// ErrorTextID derives the error region id for a field id.
func ErrorTextID(id string) string {
	return suffixID(id, "-error")
}

// NewID produces a fallback field id. Used when Props arrive without one so
// the label/help/error wiring still resolves to real elements.
func NewID() string {
	return "fld-" + uuid.NewString()
}

func suffixID(id, suffix string) string {
	trimmed := strings.TrimSpace(id)
	if trimmed == "" {
		return ""
	}
	return trimmed + suffix
}
