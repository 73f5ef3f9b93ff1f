package markdown

import (
	"regexp"
	"strings"
)

// Compiled once at init and never mutated, so they are safe to share across
// concurrent renders without synchronization.
var (
	boldItalicRe       = regexp.MustCompile(`\*\*\*(.+?)\*\*\*`)
	boldRe             = regexp.MustCompile(`\*\*(.+?)\*\*`)
	boldUnderscoreRe   = regexp.MustCompile(`__(.+?)__`)
	italicRe           = regexp.MustCompile(`\*(.+?)\*`)
	italicUnderscoreRe = regexp.MustCompile(`_(.+?)_`)
	strikeRe           = regexp.MustCompile(`~~(.+?)~~`)
	inlineCodeRe       = regexp.MustCompile("`([^`]+)`")
	linkRe             = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
)

// Marker-mode replacements reinsert the literal punctuation. If they did so
// directly, later rules would re-match it (the bold rule would chew on a
// reinserted "***", the italic rule on a reinserted "**"). Private-use
// sentinels stand in for the punctuation while the rule chain runs and are
// swapped back at the end, so both modes produce identical tag structure.
const (
	sentTriple     = "" // ***
	sentBold       = "" // **
	sentBoldUnder  = "" // __
	sentItalic     = "" // *
	sentItalicUnd  = "" // _
	sentStrike     = "" // ~~
	sentBacktick   = "" // `
	sentLinkOpen   = "" // [
	sentLinkMiddle = "" // ](
	sentLinkClose  = "" // )
)

var markerRestorer = strings.NewReplacer(
	sentTriple, "***",
	sentBold, "**",
	sentBoldUnder, "__",
	sentItalic, "*",
	sentItalicUnd, "_",
	sentStrike, "~~",
	sentBacktick, "`",
	sentLinkOpen, "[",
	sentLinkMiddle, "](",
	sentLinkClose, ")",
)

// inlineRule is one ordered substitution step. Rules run top to bottom over
// the result of the previous rule; none recurses into its own output.
type inlineRule struct {
	re *regexp.Regexp
	// hidden replaces the markdown punctuation with tags only; visible wraps
	// the tags around the punctuation (as sentinels until restoration) so an
	// editing view still shows the raw syntax.
	hidden  string
	visible string
}

// Triple-marker bold+italic must run before bold and italic or it would be
// consumed as plain bold with stray asterisks.
var inlineRules = []inlineRule{
	{boldItalicRe, "<strong><em>$1</em></strong>", "<strong><em>" + sentTriple + "$1" + sentTriple + "</em></strong>"},
	{boldRe, "<strong>$1</strong>", "<strong>" + sentBold + "$1" + sentBold + "</strong>"},
	{boldUnderscoreRe, "<strong>$1</strong>", "<strong>" + sentBoldUnder + "$1" + sentBoldUnder + "</strong>"},
	{italicRe, "<em>$1</em>", "<em>" + sentItalic + "$1" + sentItalic + "</em>"},
	{italicUnderscoreRe, "<em>$1</em>", "<em>" + sentItalicUnd + "$1" + sentItalicUnd + "</em>"},
	{strikeRe, "<del>$1</del>", "<del>" + sentStrike + "$1" + sentStrike + "</del>"},
	{inlineCodeRe, "<code>$1</code>", "<code>" + sentBacktick + "$1" + sentBacktick + "</code>"},
	{linkRe, `<a href="$2">$1</a>`, `<a href="$2">` + sentLinkOpen + "$1" + sentLinkMiddle + "$2" + sentLinkClose + "</a>"},
}

// renderInline converts inline markdown (bold, italic, strikethrough, code,
// links) to HTML, dropping the markdown punctuation.
//
// The input is emitted as-is where no rule matches; callers passing literal
// or untrusted text must escape it themselves.
func renderInline(text string) string {
	result := text
	for _, rule := range inlineRules {
		result = rule.re.ReplaceAllString(result, rule.hidden)
	}
	return result
}

// renderInlineWithMarkers converts inline markdown to HTML while keeping the
// literal punctuation inside the tags, for the editing view. The tag nesting
// is identical to renderInline; only the punctuation differs.
func renderInlineWithMarkers(text string) string {
	result := text
	for _, rule := range inlineRules {
		result = rule.re.ReplaceAllString(result, rule.visible)
	}
	return markerRestorer.Replace(result)
}
