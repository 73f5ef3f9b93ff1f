// Package markdown is the line-oriented rendering engine behind the editor
// surface. It converts one document line at a time into an HTML fragment,
// classifying the line against the whole document snapshot so that multi-line
// constructs (fenced code, fenced math) render correctly. Every call is pure
// and self-contained, which makes per-line rendering safe to parallelize.
package markdown

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// RenderRequest is one line render call. The caller owns the snapshot; the
// engine only reads it for the duration of the call. LineIndex must satisfy
// 0 <= LineIndex < len(AllLines); the engine assumes this holds.
type RenderRequest struct {
	Line      string   `json:"line"`
	LineIndex int      `json:"line_index"`
	AllLines  []string `json:"all_lines"`
	IsEditing bool     `json:"is_editing"`
}

// LineRenderResult is the rendered fragment for a single line.
// IsCodeBlockBoundary is set for lines that open or close a fenced block of
// either kind; the display surface uses it to group adjacent block lines.
type LineRenderResult struct {
	HTML                string `json:"html"`
	IsCodeBlockBoundary bool   `json:"is_code_block_boundary"`
}

var (
	langRe       = regexp.MustCompile("^```(\\w+)?")
	hrRe         = regexp.MustCompile(`^(-{3,}|\*{3,}|_{3,})$`)
	headerRe     = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	listRe       = regexp.MustCompile(`^(\s*)([-*+]|\d+\.)\s+(.+)$`)
	blockquoteRe = regexp.MustCompile(`^>\s*(.+)$`)
)

// hrGlyphs is the fixed-width separator shown in place of a horizontal rule
// in preview mode.
var hrGlyphs = strings.Repeat("─", 39)

func escapeHTML(text string) string {
	return html.EscapeString(text)
}

// lineContext carries per-call classification state through the rule chain.
// Math classification is computed lazily: it only runs when none of the code
// rules claimed the line, so a code fence can never double as a math one.
type lineContext struct {
	req  RenderRequest
	code BlockState

	mathDone bool
	math     BlockState
}

func (c *lineContext) mathState() BlockState {
	if !c.mathDone {
		c.math = mathBlockState(c.req.LineIndex, c.req.AllLines)
		c.mathDone = true
	}
	return c.math
}

// lineRule is one entry of the dispatch table. Rules are evaluated in order,
// first match wins; the last rule always matches.
type lineRule struct {
	name   string
	match  func(*lineContext) bool
	render func(*lineContext) LineRenderResult
}

// lineRules fixes the category priority: fenced-block boundaries and
// interiors before everything else, then blank, rule, header, list,
// blockquote, and finally the paragraph fallback.
var lineRules = []lineRule{
	{
		name:   "code-fence-start",
		match:  func(c *lineContext) bool { return c.code.IsStart },
		render: renderCodeFenceStart,
	},
	{
		name:   "code-fence-end",
		match:  func(c *lineContext) bool { return c.code.IsEnd },
		render: renderCodeFenceEnd,
	},
	{
		name:   "code-interior",
		match:  func(c *lineContext) bool { return c.code.InBlock },
		render: renderCodeInterior,
	},
	{
		name:   "math-fence-start",
		match:  func(c *lineContext) bool { return c.mathState().IsStart },
		render: renderMathFenceStart,
	},
	{
		name:   "math-fence-end",
		match:  func(c *lineContext) bool { return c.mathState().IsEnd },
		render: renderMathFenceEnd,
	},
	{
		name:   "math-interior",
		match:  func(c *lineContext) bool { return c.mathState().InBlock },
		render: renderMathInterior,
	},
	{
		name:   "blank",
		match:  func(c *lineContext) bool { return strings.TrimSpace(c.req.Line) == "" },
		render: renderBlank,
	},
	{
		name:   "horizontal-rule",
		match:  func(c *lineContext) bool { return hrRe.MatchString(strings.TrimSpace(c.req.Line)) },
		render: renderHorizontalRule,
	},
	{
		name:   "header",
		match:  func(c *lineContext) bool { return headerRe.MatchString(c.req.Line) },
		render: renderHeader,
	},
	{
		name:   "list-item",
		match:  func(c *lineContext) bool { return listRe.MatchString(c.req.Line) },
		render: renderListItem,
	},
	{
		name:   "blockquote",
		match:  func(c *lineContext) bool { return blockquoteRe.MatchString(c.req.Line) },
		render: renderBlockquote,
	},
	{
		name:   "paragraph",
		match:  func(c *lineContext) bool { return true },
		render: renderParagraph,
	},
}

// RenderLine converts a single markdown line into an HTML fragment. Editing
// mode keeps the literal markdown punctuation visible inside the semantic
// tags; preview mode replaces it entirely.
//
// The call is total: every line, however malformed, falls into some
// category, so there is no error return.
func RenderLine(req RenderRequest) LineRenderResult {
	ctx := &lineContext{
		req:  req,
		code: codeBlockState(req.LineIndex, req.AllLines),
	}
	for _, rule := range lineRules {
		if rule.match(ctx) {
			return rule.render(ctx)
		}
	}
	// Unreachable: the paragraph rule matches everything.
	return LineRenderResult{}
}

func renderCodeFenceStart(c *lineContext) LineRenderResult {
	trimmed := strings.TrimSpace(c.req.Line)
	lang := ""
	if m := langRe.FindStringSubmatch(trimmed); m != nil {
		lang = m[1]
	}
	if c.req.IsEditing {
		return LineRenderResult{
			HTML:                fmt.Sprintf(`<span class="code-block-start" data-lang="%s">%s</span>`, lang, escapeHTML(trimmed)),
			IsCodeBlockBoundary: true,
		}
	}
	return LineRenderResult{
		HTML:                fmt.Sprintf(`<span class="code-block-start" data-lang="%s"></span>`, lang),
		IsCodeBlockBoundary: true,
	}
}

func renderCodeFenceEnd(c *lineContext) LineRenderResult {
	if c.req.IsEditing {
		return LineRenderResult{
			HTML:                fmt.Sprintf(`<span class="code-block-end">%s</span>`, escapeHTML(strings.TrimSpace(c.req.Line))),
			IsCodeBlockBoundary: true,
		}
	}
	return LineRenderResult{
		HTML:                `<span class="code-block-end"></span>`,
		IsCodeBlockBoundary: true,
	}
}

func renderCodeInterior(c *lineContext) LineRenderResult {
	if c.req.IsEditing {
		// A plain span rather than <code>: the editable raw view must not
		// pick up code-element styling that would corrupt the edit overlay.
		return LineRenderResult{
			HTML: fmt.Sprintf(`<span class="code-block-line-editing">%s</span>`, escapeHTML(c.req.Line)),
		}
	}
	return LineRenderResult{
		HTML: fmt.Sprintf(`<code class="code-block-line">%s</code>`, escapeHTML(c.req.Line)),
	}
}

func renderMathFenceStart(c *lineContext) LineRenderResult {
	if c.req.IsEditing {
		return LineRenderResult{
			HTML:                fmt.Sprintf(`<span class="math-block-start">%s</span>`, escapeHTML(strings.TrimSpace(c.req.Line))),
			IsCodeBlockBoundary: true,
		}
	}
	return LineRenderResult{
		HTML:                `<span class="math-block-start"></span>`,
		IsCodeBlockBoundary: true,
	}
}

func renderMathFenceEnd(c *lineContext) LineRenderResult {
	if c.req.IsEditing {
		return LineRenderResult{
			HTML:                fmt.Sprintf(`<span class="math-block-end">%s</span>`, escapeHTML(strings.TrimSpace(c.req.Line))),
			IsCodeBlockBoundary: true,
		}
	}
	return LineRenderResult{
		HTML:                `<span class="math-block-end"></span>`,
		IsCodeBlockBoundary: true,
	}
}

func renderMathInterior(c *lineContext) LineRenderResult {
	if c.req.IsEditing {
		return LineRenderResult{
			HTML: fmt.Sprintf(`<span class="math-block-line-editing">%s</span>`, escapeHTML(c.req.Line)),
		}
	}
	// Raw TeX passed through for the frontend typesetter; never interpreted
	// here.
	return LineRenderResult{
		HTML: fmt.Sprintf(`<span class="math-block-line">%s</span>`, escapeHTML(c.req.Line)),
	}
}

func renderBlank(c *lineContext) LineRenderResult {
	return LineRenderResult{HTML: "<br>"}
}

func renderHorizontalRule(c *lineContext) LineRenderResult {
	if c.req.IsEditing {
		return LineRenderResult{
			HTML: fmt.Sprintf(`<span class="hr">%s</span>`, escapeHTML(c.req.Line)),
		}
	}
	return LineRenderResult{
		HTML: fmt.Sprintf(`<span class="hr">%s</span>`, hrGlyphs),
	}
}

func renderHeader(c *lineContext) LineRenderResult {
	m := headerRe.FindStringSubmatch(c.req.Line)
	hashes, text := m[1], m[2]
	level := len(hashes)

	if c.req.IsEditing {
		return LineRenderResult{
			HTML: fmt.Sprintf(`<span class="heading h%d">%s %s</span>`, level, hashes, renderInlineWithMarkers(text)),
		}
	}
	return LineRenderResult{
		HTML: fmt.Sprintf(`<span class="heading h%d">%s</span>`, level, renderInline(text)),
	}
}

func renderListItem(c *lineContext) LineRenderResult {
	m := listRe.FindStringSubmatch(c.req.Line)
	indent, marker, text := m[1], m[2], m[3]
	ordered := marker[0] >= '0' && marker[0] <= '9'

	if c.req.IsEditing {
		return LineRenderResult{
			HTML: fmt.Sprintf(`<span class="list-item">%s%s %s</span>`, indent, marker, renderInlineWithMarkers(text)),
		}
	}

	markerClass := "unordered"
	displayMarker := "•"
	if ordered {
		markerClass = "ordered"
		displayMarker = marker
	}
	return LineRenderResult{
		HTML: fmt.Sprintf(`<span class="list-item" style="padding-left: %dpx"><span class="list-marker %s">%s</span>%s</span>`,
			len(indent)*20, markerClass, displayMarker, renderInline(text)),
	}
}

func renderBlockquote(c *lineContext) LineRenderResult {
	m := blockquoteRe.FindStringSubmatch(c.req.Line)
	text := m[1]

	if c.req.IsEditing {
		return LineRenderResult{
			HTML: fmt.Sprintf(`<span class="blockquote">&gt; %s</span>`, renderInlineWithMarkers(text)),
		}
	}
	return LineRenderResult{
		HTML: fmt.Sprintf(`<span class="blockquote">%s</span>`, renderInline(text)),
	}
}

func renderParagraph(c *lineContext) LineRenderResult {
	if c.req.IsEditing {
		return LineRenderResult{HTML: renderInlineWithMarkers(c.req.Line)}
	}
	return LineRenderResult{HTML: renderInline(c.req.Line)}
}
