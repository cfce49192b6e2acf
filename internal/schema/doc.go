// Package schema turns an annotated story struct type into its argument
// schema and decodes untyped render payloads against it. Inference runs once
// per type and combines the `story` tag overrides with the declared field
// types: explicit control overrides win, then token matching on the (possibly
// `from`-overridden) type name, then text. Defaults resolve from the explicit
// literal, then a lorem placeholder, then a control-appropriate zero value.
// The same resolved schema drives artifact emission and runtime decoding so
// the two can never disagree.
package schema
