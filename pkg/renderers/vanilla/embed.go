package vanilla

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

//go:embed assets/*
var embeddedAssets embed.FS

// StylesheetName is the default stylesheet carrying the chrome and
// reserve-error-space rules.
const StylesheetName = "fieldwrap-vanilla.css"

// TemplatesFS exposes the embedded template bundle for consumers that want
// the built-in field chrome out of the box.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}

// AssetsFS exposes the embedded stylesheet so callers can serve it over HTTP
// or copy it into their own asset pipeline.
func AssetsFS() fs.FS {
	sub, err := fs.Sub(embeddedAssets, "assets")
	if err != nil {
		// Should never happen, but keep assets reachable via the raw FS.
		return embeddedAssets
	}
	return sub
}
