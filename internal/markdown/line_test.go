package markdown

import (
	"strings"
	"testing"
)

func renderAt(t *testing.T, lines []string, index int, editing bool) LineRenderResult {
	t.Helper()
	return RenderLine(RenderRequest{
		Line:      lines[index],
		LineIndex: index,
		AllLines:  lines,
		IsEditing: editing,
	})
}

func TestRenderLine_Header(t *testing.T) {
	result := renderAt(t, []string{"# Hello World"}, 0, false)

	if !strings.Contains(result.HTML, "heading h1") {
		t.Errorf("HTML = %q, want heading h1 wrapper", result.HTML)
	}
	if !strings.Contains(result.HTML, "Hello World") {
		t.Errorf("HTML = %q, want Hello World text", result.HTML)
	}
	if strings.Contains(result.HTML, "#") {
		t.Errorf("HTML = %q, preview mode must not show the # run", result.HTML)
	}
	if result.IsCodeBlockBoundary {
		t.Error("header must not be a block boundary")
	}
}

func TestRenderLine_HeaderEditingShowsHashes(t *testing.T) {
	result := renderAt(t, []string{"### Sub **head**"}, 0, true)

	if !strings.Contains(result.HTML, "heading h3") {
		t.Errorf("HTML = %q, want heading h3", result.HTML)
	}
	if !strings.Contains(result.HTML, "### ") {
		t.Errorf("HTML = %q, editing mode must keep the literal hashes", result.HTML)
	}
	if !strings.Contains(result.HTML, "<strong>**head**</strong>") {
		t.Errorf("HTML = %q, want marker-visible bold", result.HTML)
	}
}

func TestRenderLine_CodeBlock(t *testing.T) {
	lines := []string{"```rust", "fn main() {}", "```"}

	start := renderAt(t, lines, 0, false)
	if !strings.Contains(start.HTML, "code-block-start") {
		t.Errorf("line 0 HTML = %q, want code-block-start", start.HTML)
	}
	if !strings.Contains(start.HTML, `data-lang="rust"`) {
		t.Errorf("line 0 HTML = %q, want rust language token", start.HTML)
	}
	if !start.IsCodeBlockBoundary {
		t.Error("line 0 must be a boundary")
	}

	interior := renderAt(t, lines, 1, false)
	if !strings.Contains(interior.HTML, "code-block-line") {
		t.Errorf("line 1 HTML = %q, want code-block-line", interior.HTML)
	}
	if !strings.Contains(interior.HTML, "fn main() {}") {
		t.Errorf("line 1 HTML = %q, want literal code text", interior.HTML)
	}
	if interior.IsCodeBlockBoundary {
		t.Error("line 1 must not be a boundary")
	}

	end := renderAt(t, lines, 2, false)
	if !strings.Contains(end.HTML, "code-block-end") {
		t.Errorf("line 2 HTML = %q, want code-block-end", end.HTML)
	}
	if strings.Contains(end.HTML, `data-lang`) {
		t.Errorf("line 2 HTML = %q, closing fence carries no language token", end.HTML)
	}
	if !end.IsCodeBlockBoundary {
		t.Error("line 2 must be a boundary")
	}
}

func TestRenderLine_CodeInteriorEditingAvoidsCodeElement(t *testing.T) {
	lines := []string{"```", "x < y", "```"}

	result := renderAt(t, lines, 1, true)
	if strings.Contains(result.HTML, "<code") {
		t.Errorf("HTML = %q, editing interior must not use a code element", result.HTML)
	}
	if !strings.Contains(result.HTML, "code-block-line-editing") {
		t.Errorf("HTML = %q, want editing class", result.HTML)
	}
	if !strings.Contains(result.HTML, "x &lt; y") {
		t.Errorf("HTML = %q, want escaped text", result.HTML)
	}
}

func TestRenderLine_CodeInteriorIsNeverInlineRendered(t *testing.T) {
	// Markdown punctuation inside a code block is literal text.
	lines := []string{"```", "**not bold**", "```"}

	result := renderAt(t, lines, 1, false)
	if strings.Contains(result.HTML, "<strong>") {
		t.Errorf("HTML = %q, code interior must not run inline rules", result.HTML)
	}
	if !strings.Contains(result.HTML, "**not bold**") {
		t.Errorf("HTML = %q, want literal text", result.HTML)
	}
}

func TestRenderLine_MathBlock(t *testing.T) {
	lines := []string{"$$", "x^2 + y^2", "$$", "after"}

	start := renderAt(t, lines, 0, false)
	if !strings.Contains(start.HTML, "math-block-start") {
		t.Errorf("line 0 HTML = %q, want math-block-start", start.HTML)
	}
	if !start.IsCodeBlockBoundary {
		t.Error("math fence must set the boundary flag")
	}

	interior := renderAt(t, lines, 1, false)
	if !strings.Contains(interior.HTML, "math-block-line") {
		t.Errorf("line 1 HTML = %q, want math-block-line", interior.HTML)
	}
	if !strings.Contains(interior.HTML, "x^2 + y^2") {
		t.Errorf("line 1 HTML = %q, want raw expression preserved", interior.HTML)
	}

	end := renderAt(t, lines, 2, false)
	if !strings.Contains(end.HTML, "math-block-end") {
		t.Errorf("line 2 HTML = %q, want math-block-end", end.HTML)
	}

	outside := renderAt(t, lines, 3, false)
	if outside.IsCodeBlockBoundary || strings.Contains(outside.HTML, "math") {
		t.Errorf("line 3 = %+v, want plain paragraph", outside)
	}
}

func TestRenderLine_CodeFenceWinsOverMath(t *testing.T) {
	// A $$ line inside an open code block is code interior, not a math fence.
	lines := []string{"```", "$$", "```"}

	result := renderAt(t, lines, 1, false)
	if result.IsCodeBlockBoundary {
		t.Error("$$ inside a code block must not be a boundary")
	}
	if !strings.Contains(result.HTML, "code-block-line") {
		t.Errorf("HTML = %q, want code interior", result.HTML)
	}
}

func TestRenderLine_Blank(t *testing.T) {
	result := renderAt(t, []string{"   "}, 0, false)
	if result.HTML != "<br>" {
		t.Errorf("HTML = %q, want <br>", result.HTML)
	}
}

func TestRenderLine_HorizontalRule(t *testing.T) {
	for _, line := range []string{"---", "----", "***", "___"} {
		preview := renderAt(t, []string{line}, 0, false)
		if !strings.Contains(preview.HTML, `class="hr"`) {
			t.Errorf("preview %q HTML = %q, want hr span", line, preview.HTML)
		}
		if strings.Contains(preview.HTML, line) {
			t.Errorf("preview %q HTML = %q, want glyph run instead of literal", line, preview.HTML)
		}

		editing := renderAt(t, []string{line}, 0, true)
		if !strings.Contains(editing.HTML, line) {
			t.Errorf("editing %q HTML = %q, want literal text", line, editing.HTML)
		}
	}
}

func TestRenderLine_NotHorizontalRule(t *testing.T) {
	// Mixed or short marker runs fall through to other categories.
	for _, line := range []string{"--", "-*-", "--- x"} {
		result := renderAt(t, []string{line}, 0, false)
		if strings.Contains(result.HTML, `class="hr"`) {
			t.Errorf("%q rendered as hr: %q", line, result.HTML)
		}
	}
}

func TestRenderLine_UnorderedList(t *testing.T) {
	result := renderAt(t, []string{"- item one"}, 0, false)

	if !strings.Contains(result.HTML, "list-marker unordered") {
		t.Errorf("HTML = %q, want unordered marker class", result.HTML)
	}
	if !strings.Contains(result.HTML, "•") {
		t.Errorf("HTML = %q, want bullet glyph", result.HTML)
	}
	if !strings.Contains(result.HTML, "item one") {
		t.Errorf("HTML = %q, want item text", result.HTML)
	}
}

func TestRenderLine_OrderedListKeepsMarker(t *testing.T) {
	result := renderAt(t, []string{"3. third"}, 0, false)

	if !strings.Contains(result.HTML, "list-marker ordered") {
		t.Errorf("HTML = %q, want ordered marker class", result.HTML)
	}
	if !strings.Contains(result.HTML, ">3.</span>") {
		t.Errorf("HTML = %q, ordered marker must be preserved verbatim", result.HTML)
	}
}

func TestRenderLine_ListIndentToPixels(t *testing.T) {
	result := renderAt(t, []string{"    - nested"}, 0, false)

	if !strings.Contains(result.HTML, "padding-left: 80px") {
		t.Errorf("HTML = %q, want 4 spaces * 20px indent", result.HTML)
	}
}

func TestRenderLine_ListEditingPreservesOriginal(t *testing.T) {
	result := renderAt(t, []string{"  * keep me"}, 0, true)

	if !strings.Contains(result.HTML, "  * keep me") {
		t.Errorf("HTML = %q, editing mode must keep whitespace and marker", result.HTML)
	}
	if strings.Contains(result.HTML, "•") {
		t.Errorf("HTML = %q, editing mode must not substitute the bullet", result.HTML)
	}
}

func TestRenderLine_Blockquote(t *testing.T) {
	preview := renderAt(t, []string{"> quoted **text**"}, 0, false)
	if !strings.Contains(preview.HTML, `class="blockquote"`) {
		t.Errorf("HTML = %q, want blockquote span", preview.HTML)
	}
	if !strings.Contains(preview.HTML, "<strong>text</strong>") {
		t.Errorf("HTML = %q, want inline rendering inside quote", preview.HTML)
	}
	if strings.Contains(preview.HTML, "&gt;") {
		t.Errorf("HTML = %q, preview must hide the > marker", preview.HTML)
	}

	editing := renderAt(t, []string{"> quoted"}, 0, true)
	if !strings.Contains(editing.HTML, "&gt; ") {
		t.Errorf("HTML = %q, editing mode must show the escaped > marker", editing.HTML)
	}
}

func TestRenderLine_ParagraphFallback(t *testing.T) {
	result := renderAt(t, []string{"just *some* text"}, 0, false)
	if result.HTML != "just <em>some</em> text" {
		t.Errorf("HTML = %q, want inline-rendered paragraph", result.HTML)
	}
}

func TestRenderLine_Idempotent(t *testing.T) {
	lines := []string{"# h", "```go", "code", "```", "- item", "$$", "e=mc^2", "$$"}
	for i := range lines {
		first := renderAt(t, lines, i, false)
		second := renderAt(t, lines, i, false)
		if first != second {
			t.Errorf("line %d: repeated render differs: %+v vs %+v", i, first, second)
		}
	}
}

func TestRenderLine_FenceLanguageTokenAbsent(t *testing.T) {
	result := renderAt(t, []string{"```", "x", "```"}, 0, false)
	if !strings.Contains(result.HTML, `data-lang=""`) {
		t.Errorf("HTML = %q, want empty language token", result.HTML)
	}
}
