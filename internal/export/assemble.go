// Package export turns whole documents into output for display surfaces:
// per-line fragments assembled into a grouped preview, standalone HTML with
// highlighted code, and a plain-text rendition.
package export

import (
	"crypto/sha256"
	"fmt"
	"strings"

	"github.com/Royster0/markdown-editor/internal/markdown"
)

var assembled = newDocumentCache(16)

// Assemble renders every line of content through the line engine and stitches
// the fragments into one HTML document. Runs of fenced lines are wrapped in a
// block-group container: a boundary line opens a group when none is open and
// closes the open one otherwise, with the interior lines in between. An
// unterminated fence leaves the final group open to the end of the document,
// mirroring how the engine classifies those lines.
//
// Assembled output is cached by content hash and mode; identical snapshots
// hit the cache instead of re-rendering.
func Assemble(content string, editing bool) string {
	key := assembleKey(content, editing)
	if html, ok := assembled.get(key); ok {
		return html
	}

	lines := strings.Split(content, "\n")
	requests := make([]markdown.RenderRequest, len(lines))
	for i, line := range lines {
		requests[i] = markdown.RenderRequest{
			Line:      line,
			LineIndex: i,
			AllLines:  lines,
			IsEditing: editing,
		}
	}
	results := markdown.RenderBatch(requests)

	var b strings.Builder
	inGroup := false
	for _, res := range results {
		opening := res.IsCodeBlockBoundary && !inGroup
		closing := res.IsCodeBlockBoundary && inGroup

		if opening {
			b.WriteString("<div class=\"block-group\">\n")
			inGroup = true
		}

		b.WriteString(`<div class="line">`)
		b.WriteString(res.HTML)
		b.WriteString("</div>\n")

		if closing {
			b.WriteString("</div>\n")
			inGroup = false
		}
	}
	if inGroup {
		b.WriteString("</div>\n")
	}

	html := b.String()
	assembled.put(key, html)
	return html
}

func assembleKey(content string, editing bool) string {
	mode := "preview"
	if editing {
		mode = "editing"
	}
	return fmt.Sprintf("%x:%s", sha256.Sum256([]byte(content)), mode)
}
