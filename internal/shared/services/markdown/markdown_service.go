// Package markdown renders rewritten CVs (markdown) to sanitized HTML and
// strips markup from user-submitted CV text before it reaches the AI API.
package markdown

import (
	"bytes"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

type MarkdownService interface {
	ToHTML(markdown string) (string, error)
	Sanitize(htmlContent string) string
	ToHTMLSanitized(markdown string) (string, error)
	StripTags(content string) string
}

type markdownServiceImpl struct {
	md           goldmark.Markdown
	policy       *bluemonday.Policy
	strictPolicy *bluemonday.Policy
}

func NewMarkdownService() MarkdownService {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Table,
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
		),
	)

	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).OnElements("code", "span", "div", "pre")

	return &markdownServiceImpl{
		md:           md,
		policy:       policy,
		strictPolicy: bluemonday.StrictPolicy(),
	}
}

func (s *markdownServiceImpl) ToHTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := s.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("failed to convert markdown to HTML: %w", err)
	}
	return buf.String(), nil
}

func (s *markdownServiceImpl) Sanitize(htmlContent string) string {
	return s.policy.Sanitize(htmlContent)
}

func (s *markdownServiceImpl) ToHTMLSanitized(markdown string) (string, error) {
	htmlContent, err := s.ToHTML(markdown)
	if err != nil {
		return "", err
	}
	return s.Sanitize(htmlContent), nil
}

// StripTags removes all markup, leaving plain text. Applied to submitted CV
// text so pasted rich-text content cannot smuggle markup to the AI API.
func (s *markdownServiceImpl) StripTags(content string) string {
	return s.strictPolicy.Sanitize(content)
}
