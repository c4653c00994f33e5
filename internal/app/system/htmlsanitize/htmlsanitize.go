// internal/app/system/htmlsanitize/htmlsanitize.go

// Package htmlsanitize strips dangerous markup from user-supplied text
// before it is stored. Comments, messages, and descriptions are rendered
// back to other members, so script injection must be removed on the way in.
package htmlsanitize

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	once   sync.Once
	ugc    *bluemonday.Policy
	strict *bluemonday.Policy
)

func policies() (*bluemonday.Policy, *bluemonday.Policy) {
	once.Do(func() {
		ugc = bluemonday.UGCPolicy()
		strict = bluemonday.StrictPolicy()
	})
	return ugc, strict
}

// Sanitize keeps user-generated-content markup (paragraphs, emphasis,
// links, lists, tables) and removes scripts, event handlers, and
// javascript: URLs.
func Sanitize(s string) string {
	p, _ := policies()
	return p.Sanitize(s)
}

// StripTags removes all markup, returning plain text. Used for short
// fields like titles where markup has no meaning.
func StripTags(s string) string {
	_, p := policies()
	return strings.TrimSpace(p.Sanitize(s))
}
