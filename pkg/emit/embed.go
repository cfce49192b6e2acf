package emit

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the embedded artifact templates so callers can extend
// or replace them with their own bundle.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
