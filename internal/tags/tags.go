// Package tags parses the `story` struct tag vocabulary into field specs.
// Recognition is best effort: unknown clauses are skipped and malformed values
// degrade to "clause absent" so a bad annotation never aborts registration.
package tags

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-storygen/pkg/lorem"
	"github.com/goliatone/go-storygen/pkg/model"
)

// TagKey is the struct tag inspected on story fields.
const TagKey = "story"

// Recognized clause keys. Anything else is ignored.
const (
	keyControl = "control"
	keyDefault = "default"
	keyFrom    = "from"
	keyLorem   = "lorem"
)

// Parse reads the recognized clauses off one tag value. Repeated clauses keep
// the last occurrence. A bare `lorem` clause defaults its word count.
func Parse(tag string) model.FieldSpec {
	var spec model.FieldSpec
	for _, clause := range splitClauses(tag) {
		key, value, hasValue := cutClause(clause)
		switch key {
		case keyControl:
			if hasValue && value != "" {
				spec.Control = value
			}
		case keyDefault:
			if hasValue && value != "" {
				literal := value
				spec.Default = &literal
			}
		case keyFrom:
			if hasValue && value != "" {
				spec.From = value
			}
		case keyLorem:
			if !hasValue {
				count := lorem.DefaultWordCount
				spec.Lorem = &count
				continue
			}
			count, err := strconv.Atoi(value)
			if err != nil || count < 0 {
				continue
			}
			spec.Lorem = &count
		}
	}
	return spec
}

// splitClauses splits on commas outside single quotes so quoted default
// literals can contain separators.
func splitClauses(tag string) []string {
	var (
		clauses []string
		start   int
		quoted  bool
	)
	for i := 0; i < len(tag); i++ {
		switch tag[i] {
		case '\'':
			quoted = !quoted
		case ',':
			if !quoted {
				clauses = append(clauses, tag[start:i])
				start = i + 1
			}
		}
	}
	clauses = append(clauses, tag[start:])
	return clauses
}

func cutClause(clause string) (key, value string, hasValue bool) {
	clause = strings.TrimSpace(clause)
	key, value, hasValue = strings.Cut(clause, "=")
	key = strings.TrimSpace(key)
	value = strings.TrimSpace(value)
	return key, value, hasValue
}
