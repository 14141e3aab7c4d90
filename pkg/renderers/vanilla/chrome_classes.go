package vanilla

// Chrome class defaults applied when render.Options.ChromeClasses has no
// override for a region.
const (
	DefaultWrapperClass = "fw-field"
	DefaultLabelClass   = "fw-label"
	DefaultHelpClass    = "fw-help"
	DefaultErrorClass   = "fw-error"
)

// Region keys accepted in render.Options.ChromeClasses.
const (
	RegionWrapper = "wrapper"
	RegionLabel   = "label"
	RegionHelp    = "help"
	RegionError   = "error"
)
