package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"golang.org/x/net/html"
)

// md is the shared goldmark instance. Built once, read-only afterwards.
var md = goldmark.New(
	goldmark.WithExtensions(extension.Strikethrough),
)

// HTML converts a whole document to standalone HTML. Prose goes through
// goldmark; fenced code bodies are syntax-highlighted with chroma when the
// language is known; $$ math blocks are passed through escaped but otherwise
// untouched, for the external typesetter.
//
// The document is split into prose, code, and math segments with a single
// forward scan. Unterminated fences swallow the rest of the document, the
// same rule the line engine applies.
func HTML(content string) (string, error) {
	var b strings.Builder

	type segment int
	const (
		prose segment = iota
		code
		math
	)

	state := prose
	var proseRun []string
	var blockRun []string
	var blockLang string

	flushProse := func() error {
		if len(proseRun) == 0 {
			return nil
		}
		var out bytes.Buffer
		if err := md.Convert([]byte(strings.Join(proseRun, "\n")), &out); err != nil {
			return fmt.Errorf("convert markdown: %w", err)
		}
		b.Write(out.Bytes())
		proseRun = proseRun[:0]
		return nil
	}

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)

		switch state {
		case prose:
			if strings.HasPrefix(trimmed, "```") {
				if err := flushProse(); err != nil {
					return "", err
				}
				blockLang = strings.TrimLeft(trimmed, "`")
				blockRun = blockRun[:0]
				state = code
				continue
			}
			if trimmed == "$$" {
				if err := flushProse(); err != nil {
					return "", err
				}
				blockRun = blockRun[:0]
				state = math
				continue
			}
			proseRun = append(proseRun, line)

		case code:
			if strings.HasPrefix(trimmed, "```") {
				b.WriteString(renderCodeBlock(strings.Join(blockRun, "\n"), blockLang))
				state = prose
				continue
			}
			blockRun = append(blockRun, line)

		case math:
			if trimmed == "$$" {
				b.WriteString(fmt.Sprintf("<div class=\"math-block\">%s</div>\n", html.EscapeString(strings.Join(blockRun, "\n"))))
				state = prose
				continue
			}
			blockRun = append(blockRun, line)
		}
	}

	// Unterminated blocks still render; the closing fence just never came.
	switch state {
	case code:
		b.WriteString(renderCodeBlock(strings.Join(blockRun, "\n"), blockLang))
	case math:
		b.WriteString(fmt.Sprintf("<div class=\"math-block\">%s</div>\n", html.EscapeString(strings.Join(blockRun, "\n"))))
	default:
		if err := flushProse(); err != nil {
			return "", err
		}
	}

	return b.String(), nil
}

func renderCodeBlock(source, lang string) string {
	if highlighted, ok := highlightCode(source, lang); ok {
		return highlighted
	}
	return fmt.Sprintf("<pre><code>%s</code></pre>\n", html.EscapeString(source))
}
