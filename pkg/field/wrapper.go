package field

import (
	"strings"

	"github.com/goliatone/go-fieldwrap/pkg/form"
)

// Option configures a Wrapper at construction time.
type Option func(*Wrapper)

// WithReporter attaches the optional ancestor aggregator. A wrapper without
// one works identically minus the reporting calls.
func WithReporter(reporter form.ErrorReporter) Option {
	return func(w *Wrapper) {
		w.reporter = reporter
	}
}

// WithChangeHandler registers the callback invoked with every new value the
// control emits. The wrapper forwards the value untouched; applying it (or
// not) is the caller's decision.
func WithChangeHandler(fn func(value any)) Option {
	return func(w *Wrapper) {
		w.onChange = fn
	}
}

// WithBlurHandler registers the callback invoked when the control loses
// focus. The signal carries no payload.
func WithBlurHandler(fn func()) Option {
	return func(w *Wrapper) {
		w.onBlur = fn
	}
}

// Wrapper tracks one field's identity and error state and keeps the attached
// reporter synchronized. All methods are synchronous and must be called from
// a single goroutine; the reporter is the only shared collaborator.
type Wrapper struct {
	props Props

	// previous settled state, used to detect id/message transitions
	prevID  string
	prevErr string

	reporter form.ErrorReporter
	onChange func(value any)
	onBlur   func()

	mounted   bool
	unmounted bool
}

// New constructs a wrapper from its initial props. Props arriving without an
// id get a generated fallback so the derived element ids stay resolvable.
// No reporter call happens until Mount.
func New(props Props, options ...Option) *Wrapper {
	if strings.TrimSpace(props.ID) == "" {
		props.ID = NewID()
	}
	w := &Wrapper{props: props}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(w)
	}
	return w
}

// Props returns the current settled props.
func (w *Wrapper) Props() Props {
	return w.props
}

// ControlContext returns the slot context for the current props.
func (w *Wrapper) ControlContext() ControlContext {
	return w.props.ControlContext()
}

// Mount synchronizes the reporter with the initial error state. The report
// fires even when the message is empty: an aggregator that treats unreported
// fields as unknown must see a freshly mounted field as explicitly valid,
// and a field that mounts already invalid must be counted immediately.
func (w *Wrapper) Mount() {
	if w.unmounted || w.mounted {
		return
	}
	w.mounted = true
	w.prevID = w.props.ID
	w.prevErr = w.props.ErrorMessage
	if w.reporter != nil {
		w.reporter.UpdateErrorState(w.props.ID, w.props.ErrorMessage)
	}
}

// Update applies the next props and reports any id or error-message
// transition. One Update call is the settling boundary: when several values
// change at once only the final (id, message) pair is authoritative.
//
// Transition rules:
//   - message changed, id unchanged: UpdateErrorState(id, newMessage)
//   - id changed while the previous message was non-empty:
//     ClearErrorState(oldID) first, then UpdateErrorState(newID, message).
//     Reversing the order would leave both keys registered for an instant,
//     which an aggregator recomputing validity synchronously would observe
//   - id changed with no previous error: UpdateErrorState(newID, message)
//     re-keys the entry with no clear call
func (w *Wrapper) Update(next Props) {
	if w.unmounted {
		return
	}
	if strings.TrimSpace(next.ID) == "" {
		next.ID = NewID()
	}
	w.props = next

	if !w.mounted {
		return
	}

	idChanged := next.ID != w.prevID
	errChanged := next.ErrorMessage != w.prevErr

	switch {
	case idChanged:
		if w.reporter != nil {
			if w.prevErr != "" {
				w.reporter.ClearErrorState(w.prevID)
			}
			w.reporter.UpdateErrorState(next.ID, next.ErrorMessage)
		}
	case errChanged:
		if w.reporter != nil {
			w.reporter.UpdateErrorState(next.ID, next.ErrorMessage)
		}
	}

	w.prevID = next.ID
	w.prevErr = next.ErrorMessage
}

// Unmount withdraws the field from the reporter. Later Mount or Update calls
// become no-ops; a destroyed field must not resurrect its registration.
func (w *Wrapper) Unmount() {
	if w.unmounted {
		return
	}
	w.unmounted = true
	if w.mounted && w.reporter != nil {
		w.reporter.ClearErrorState(w.prevID)
	}
	w.mounted = false
}

// InputChanged forwards a new value from the control to the change handler.
// The wrapper keeps rendering the externally supplied value; it never adopts
// the emitted one.
func (w *Wrapper) InputChanged(value any) {
	if w.onChange != nil {
		w.onChange(value)
	}
}

// Blurred forwards the control's focus-loss signal.
func (w *Wrapper) Blurred() {
	if w.onBlur != nil {
		w.onBlur()
	}
}
