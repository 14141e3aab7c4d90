// Package form holds the ancestor-side contract of the field error-reporting
// protocol plus ErrorSet, a reference aggregator that answers form-wide
// validity from the per-field reports.
package form

// ErrorReporter is the write-only contract a field wrapper uses to keep an
// ancestor informed of its error state. Fields only send point updates keyed
// by their id; they never read the aggregate back.
//
// Implementations must accept both calls for unknown ids (clear on an absent
// key is a no-op) and repeated calls carrying the same value, and must apply
// each call atomically with respect to their own state: sibling fields report
// independently and their calls interleave in no defined order.
type ErrorReporter interface {
	// UpdateErrorState upserts the entry for fieldID. An empty message means
	// "this field currently has no error" and must count as valid for any
	// form-wide validity the implementation computes.
	UpdateErrorState(fieldID, message string)

	// ClearErrorState removes the entry for fieldID entirely.
	ClearErrorState(fieldID string)
}

// NopReporter discards all reports. Useful where an ErrorReporter is
// required structurally but aggregation is not wanted.
type NopReporter struct{}

func (NopReporter) UpdateErrorState(string, string) {}

func (NopReporter) ClearErrorState(string) {}
