// Package emit writes one `.stories.js` descriptor artifact per registered
// story for the external preview tool. Emission is a best-effort build-time
// pass: directory creation and write failures are logged and skipped so one
// broken target never starves the remaining stories of their artifacts.
// Output is regenerated from scratch on every pass and is not transactional.
package emit
