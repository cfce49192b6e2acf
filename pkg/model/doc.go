// Package model defines the typed story schema consumed by the registry,
// emitter, and preview tooling. A story's argument surface is described by a
// slice of ArgType records whose control kinds, defaults, and option hooks are
// resolved once at registration and never mutated afterwards. Defaults carry
// their JavaScript-literal encoding so a single inference pass can drive both
// the runtime payload decoder and the generated `.stories.js` artifacts.
package model
