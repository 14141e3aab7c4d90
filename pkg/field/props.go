package field

import "strings"

// Props carries the externally owned inputs of a field wrapper. Every value
// flows one way: the caller supplies Props, the wrapper derives ids and
// reports state, and edits come back to the caller as change events.
type Props struct {
	// ID is the field identity and the aggregation key reported to the
	// ErrorReporter. Expected unique among sibling fields; duplicates are not
	// detected and the later registration wins.
	ID string `json:"id"`

	// Label is rendered with a required marker when Required is set. Empty
	// suppresses the label element entirely.
	Label string `json:"label,omitempty"`

	// Value is the controlled value (string or number). The wrapper renders
	// it verbatim and never mutates it; edits surface via the change handler.
	Value any `json:"value,omitempty"`

	Required bool `json:"required"`

	// ErrorMessage is the sole validity signal. Empty means valid. The text
	// is externally computed and opaque to the wrapper.
	ErrorMessage string `json:"errorMessage,omitempty"`

	// ReserveErrorSpace keeps the error region in the layout even while the
	// field is valid so appearing errors do not shift content. Nil means true.
	ReserveErrorSpace *bool `json:"reserveErrorSpace,omitempty"`

	// AriaDescribedBy holds extra descriptor id tokens merged ahead of the
	// derived help/error ids.
	AriaDescribedBy string `json:"ariaDescribedby,omitempty"`

	Autocomplete string `json:"autocomplete,omitempty"`

	// HelpText is the help region content. Empty suppresses the region and
	// drops the help id from the descriptor list.
	HelpText string `json:"helpText,omitempty"`

	Placeholder string `json:"placeholder,omitempty"`

	// Control names the control renderer resolved from the controls registry;
	// empty falls back to "input".
	Control string `json:"control,omitempty"`

	Metadata map[string]string `json:"metadata,omitempty"`
}

// ControlContext is the read-only view handed to the control slot. The
// embedded control uses it to satisfy the accessibility linking contract.
type ControlContext struct {
	ID           string
	LabelID      string
	DescribedBy  string
	Invalid      bool
	Required     bool
	Autocomplete string
}

// Invalid reports whether the field currently carries an error message.
func (p Props) Invalid() bool {
	return strings.TrimSpace(p.ErrorMessage) != ""
}

// HasHelp reports whether help content was supplied.
func (p Props) HasHelp() bool {
	return strings.TrimSpace(p.HelpText) != ""
}

// ReservesErrorSpace resolves the nil-means-true default.
func (p Props) ReservesErrorSpace() bool {
	return p.ReserveErrorSpace == nil || *p.ReserveErrorSpace
}

// DescribedBy computes the descriptor id list for the control:
// caller-supplied extras first, then the help id when help content exists,
// then the error id while invalid. The label id is always excluded and
// duplicates collapse to their first occurrence.
func (p Props) DescribedBy() string {
	tokens := strings.Fields(p.AriaDescribedBy)
	if p.HasHelp() {
		tokens = append(tokens, HelpTextID(p.ID))
	}
	if p.Invalid() {
		tokens = append(tokens, ErrorTextID(p.ID))
	}
	return joinDescriptors(tokens, LabelID(p.ID))
}

// ControlContext derives the slot context from the current props.
func (p Props) ControlContext() ControlContext {
	return ControlContext{
		ID:           p.ID,
		LabelID:      LabelID(p.ID),
		DescribedBy:  p.DescribedBy(),
		Invalid:      p.Invalid(),
		Required:     p.Required,
		Autocomplete: p.Autocomplete,
	}
}

// ReserveSpace returns a *bool suitable for Props.ReserveErrorSpace.
func ReserveSpace(v bool) *bool {
	return &v
}
