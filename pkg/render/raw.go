package render

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	policyOnce sync.Once
	ugcPolicy  *bluemonday.Policy
)

func sanitizer() *bluemonday.Policy {
	policyOnce.Do(func() {
		ugcPolicy = bluemonday.UGCPolicy()
		ugcPolicy.AllowAttrs("style").Globally()
	})
	return ugcPolicy
}

// Raw is an HTML fragment supplied by a story. It is sanitized on output so a
// story cannot smuggle script into the preview host.
type Raw string

// HTML returns the sanitized fragment.
func (r Raw) HTML() string {
	return sanitizer().Sanitize(string(r))
}
