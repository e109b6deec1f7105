package cleaner

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Cleaner strips vendor HTML out of job descriptions before they enter the
// domain model.
type Cleaner struct {
	policy *bluemonday.Policy
}

// New returns a Cleaner that removes all markup.
func New() *Cleaner {
	return &Cleaner{policy: bluemonday.StrictPolicy()}
}

// Text sanitizes s down to plain text and collapses leftover blank runs.
func (c *Cleaner) Text(s string) string {
	text := c.policy.Sanitize(s)
	for strings.Contains(text, "\n\n\n") {
		text = strings.ReplaceAll(text, "\n\n\n", "\n\n")
	}
	return strings.TrimSpace(text)
}
