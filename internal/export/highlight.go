package export

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// highlightCode renders source through chroma's HTML formatter using the
// fence's language token. It reports false when the language is unknown or
// tokenising fails, so callers can fall back to a plain escaped block.
func highlightCode(source, lang string) (string, bool) {
	if lang == "" {
		return "", false
	}
	lexer := lexers.Get(lang)
	if lexer == nil {
		return "", false
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get("github")
	if style == nil {
		style = styles.Fallback
	}

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return "", false
	}

	var b strings.Builder
	formatter := chromahtml.New(chromahtml.WithClasses(false))
	if err := formatter.Format(&b, style, iterator); err != nil {
		return "", false
	}
	return b.String(), true
}
