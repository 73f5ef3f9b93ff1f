package export

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// Text renders a document as plain text: markdown through goldmark, then the
// HTML token stream flattened with tags stripped. Headings keep their text,
// list items get bullet or number prefixes, horizontal rules become a glyph
// run. Useful for previews in contexts that accept no markup at all.
func Text(content string) (string, error) {
	if strings.TrimSpace(content) == "" {
		return "", nil
	}

	var htmlBuf bytes.Buffer
	if err := md.Convert([]byte(content), &htmlBuf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return htmlToText(htmlBuf.String()), nil
}

// htmlToText walks goldmark HTML output and emits text only.
func htmlToText(src string) string {
	z := html.NewTokenizer(strings.NewReader(src))

	var sb strings.Builder
	type listState struct {
		ordered bool
		counter int
	}
	var listStack []listState

	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			break
		}

		tok := z.Token()
		switch tt {
		case html.TextToken:
			sb.WriteString(tok.Data)

		case html.StartTagToken, html.SelfClosingTagToken:
			switch tok.Data {
			case "br":
				sb.WriteString("\n")
			case "ul":
				listStack = append(listStack, listState{})
			case "ol":
				listStack = append(listStack, listState{ordered: true})
			case "li":
				if len(listStack) > 0 {
					top := &listStack[len(listStack)-1]
					if top.ordered {
						top.counter++
						fmt.Fprintf(&sb, "\n%d. ", top.counter)
					} else {
						sb.WriteString("\n• ")
					}
				} else {
					sb.WriteString("\n• ")
				}
			case "hr":
				sb.WriteString("\n──────────\n")
			}

		case html.EndTagToken:
			switch tok.Data {
			case "p", "pre":
				sb.WriteString("\n\n")
			case "ul", "ol":
				if len(listStack) > 0 {
					listStack = listStack[:len(listStack)-1]
				}
				sb.WriteString("\n")
			case "h1", "h2", "h3", "h4", "h5", "h6":
				sb.WriteString("\n\n")
			}
		}
	}

	result := strings.TrimSpace(sb.String())
	for strings.Contains(result, "\n\n\n") {
		result = strings.ReplaceAll(result, "\n\n\n", "\n\n")
	}
	return result
}
