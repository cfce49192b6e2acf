package registry

import (
	"encoding/json"

	"github.com/goliatone/go-storygen/pkg/model"
)

// CatalogEntry is the export shape the preview tool imports: one story with
// its arg types plus a ready-to-use default-args table.
type CatalogEntry struct {
	Name     string            `json:"name"`
	ArgTypes []model.ArgType   `json:"argTypes"`
	Args     map[string]string `json:"args"`
}

// Catalog lists every registered story in export shape.
func (r *Registry) Catalog() []CatalogEntry {
	stories := r.Stories()
	out := make([]CatalogEntry, 0, len(stories))
	for _, story := range stories {
		entry := CatalogEntry{
			Name:     story.Name,
			ArgTypes: story.Args,
			Args:     make(map[string]string, len(story.Args)),
		}
		for _, arg := range story.Args {
			entry.Args[arg.Name] = arg.Default
		}
		out = append(out, entry)
	}
	return out
}

// CatalogJSON marshals the catalog for consumers that speak JSON.
func (r *Registry) CatalogJSON() ([]byte, error) {
	return json.MarshalIndent(r.Catalog(), "", "  ")
}
