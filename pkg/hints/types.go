// Package hints loads per-field presentation hints from YAML or JSON
// documents and overlays them onto field props: labels, sanitized help
// markup, autocomplete, control overrides, and the reserve-error-space flag.
package hints

import (
	"strings"

	"github.com/goliatone/go-fieldwrap/pkg/field"
)

// FieldHints is one field's presentation overrides. Zero values leave the
// corresponding prop untouched.
type FieldHints struct {
	Label             string `json:"label,omitempty" yaml:"label"`
	Help              string `json:"help,omitempty" yaml:"help"`
	Placeholder       string `json:"placeholder,omitempty" yaml:"placeholder"`
	Autocomplete      string `json:"autocomplete,omitempty" yaml:"autocomplete"`
	Control           string `json:"control,omitempty" yaml:"control"`
	AriaDescribedBy   string `json:"ariaDescribedby,omitempty" yaml:"ariaDescribedby"`
	Required          *bool  `json:"required,omitempty" yaml:"required"`
	ReserveErrorSpace *bool  `json:"reserveErrorSpace,omitempty" yaml:"reserveErrorSpace"`
}

// Store holds the hints of all loaded documents keyed by field id.
type Store struct {
	fields map[string]FieldHints
}

// Field returns the hints for a field id.
func (s *Store) Field(id string) (FieldHints, bool) {
	if s == nil {
		return FieldHints{}, false
	}
	h, ok := s.fields[strings.TrimSpace(id)]
	return h, ok
}

// Empty reports whether the store holds any hints.
func (s *Store) Empty() bool {
	return s == nil || len(s.fields) == 0
}

// Apply overlays the stored hints for props.ID onto a copy of props. Help
// markup is sanitized and flagged so renderers emit it unescaped.
func (s *Store) Apply(props field.Props) field.Props {
	h, ok := s.Field(props.ID)
	if !ok {
		return props
	}

	if v := strings.TrimSpace(h.Label); v != "" {
		props.Label = v
	}
	if v := strings.TrimSpace(h.Placeholder); v != "" {
		props.Placeholder = v
	}
	if v := strings.TrimSpace(h.Autocomplete); v != "" {
		props.Autocomplete = v
	}
	if v := strings.TrimSpace(h.Control); v != "" {
		props.Control = v
	}
	if v := strings.TrimSpace(h.AriaDescribedBy); v != "" {
		props.AriaDescribedBy = strings.TrimSpace(props.AriaDescribedBy + " " + v)
	}
	if h.Required != nil {
		props.Required = *h.Required
	}
	if h.ReserveErrorSpace != nil {
		props.ReserveErrorSpace = field.ReserveSpace(*h.ReserveErrorSpace)
	}
	if help := sanitizeHelpMarkup(h.Help); help != "" {
		props.HelpText = help
		if strings.Contains(help, "<") {
			if props.Metadata == nil {
				props.Metadata = make(map[string]string, 1)
			}
			props.Metadata["helpFormat"] = "html"
		}
	}
	return props
}
