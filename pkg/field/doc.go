// Package field implements the single-field wrapper component: it owns one
// form field's identity and error message, derives the accessibility
// descriptor ids the embedded control must reference, forwards value-change
// and blur events to the caller, and keeps an optional ancestor
// form.ErrorReporter synchronized with the field's error state across mount,
// prop updates, id renames, and unmount. The wrapper never validates and
// never stores the controlled value; both stay with the caller.
package field
