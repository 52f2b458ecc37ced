// Package markdown turns chat answers into HTML that is safe to embed in
// server rendered pages.
package markdown

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var (
	md     goldmark.Markdown
	policy *bluemonday.Policy
	once   sync.Once
)

func setup() {
	once.Do(func() {
		md = goldmark.New(goldmark.WithExtensions(extension.GFM))
		policy = bluemonday.UGCPolicy()
	})
}

// ToHTML renders src as markdown and strips anything outside the UGC policy.
// Raw HTML in src never survives.
func ToHTML(src string) (string, error) {
	setup()
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return policy.Sanitize(buf.String()), nil
}
