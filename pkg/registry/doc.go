// Package registry holds the process-wide story and enum stores and the
// render dispatcher. A Registry is an explicit context object: create one at
// startup, register every enum and story exactly once, then treat it as
// read-only. Registration order is preserved in every listing. Enum options
// resolve lazily at query time, so registering an enum after its select story
// still populates the story's option list; registering it after the first
// render of that story is the caller's bug, and the registry logs a warning
// when a select story arrives before its enum.
package registry
