// Package lorem produces deterministic placeholder text for story argument
// defaults. Output depends only on the requested word count, so repeated
// builds emit identical artifacts.
package lorem

import "strings"

// words is the fixed source list. Order matters: Words cycles through it with
// a modulo index, so reordering entries changes every generated default.
var words = []string{
	"lorem", "ipsum", "dolor", "sit", "amet", "consectetur", "adipiscing", "elit",
	"sed", "do", "eiusmod", "tempor", "incididunt", "ut", "labore", "et",
	"dolore", "magna", "aliqua", "enim", "ad", "minim", "veniam", "quis",
	"nostrud", "exercitation", "ullamco", "laboris", "nisi", "aliquip", "ex", "ea",
	"commodo", "consequat", "duis", "aute", "irure", "in", "reprehenderit", "voluptate",
	"velit", "esse", "cillum", "fugiat", "nulla", "pariatur", "excepteur", "sint",
	"occaecat", "cupidatat", "non", "proident", "sunt", "culpa", "qui", "officia",
	"deserunt", "mollit", "anim", "id", "est", "laborum", "pellentesque", "habitant",
	"morbi", "tristique", "senectus", "netus", "et", "malesuada", "fames", "ac",
	"turpis", "egestas", "vestibulum", "tortor", "quam", "feugiat", "vitae", "ultricies",
	"legimus", "typi", "qui", "nusquam", "vici", "sunt", "signa", "consuetudium",
}

// DefaultWordCount is used when a `lorem` clause carries no explicit count.
const DefaultWordCount = 8

// Words returns count space-joined placeholder words, cycling through the
// source list. Zero and negative counts yield the empty string.
func Words(count int) string {
	if count <= 0 {
		return ""
	}
	var b strings.Builder
	for i := 0; i < count; i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(words[i%len(words)])
	}
	return b.String()
}

// WordAt exposes the source word for a given index, mainly for tests that
// assert the modulo cycling behaviour.
func WordAt(i int) string {
	if i < 0 {
		return ""
	}
	return words[i%len(words)]
}
