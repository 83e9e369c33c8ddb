package document

import (
	"fmt"
	"html"
	"strings"
)

// RenderHTML renders parsed blocks as an HTML fragment for in-page display.
// Bold runs become <strong>, each source line ends with <br />, headings are
// wrapped in <strong> with their markers already stripped by the parser.
func RenderHTML(blocks []Block) string {
	var b strings.Builder

	for _, block := range blocks {
		switch block.Kind {
		case KindBlank:
			b.WriteString("<br />")

		case KindHeading:
			fmt.Fprintf(&b, "<strong>%s</strong><br />", html.EscapeString(block.PlainText()))

		case KindBullet:
			b.WriteString("&bull; ")
			writeRuns(&b, block.Runs)
			b.WriteString("<br />")

		default:
			writeRuns(&b, block.Runs)
			b.WriteString("<br />")
		}
	}

	return b.String()
}

func writeRuns(b *strings.Builder, runs []Run) {
	for _, r := range runs {
		if r.Bold {
			b.WriteString("<strong>")
			b.WriteString(html.EscapeString(r.Text))
			b.WriteString("</strong>")
			continue
		}
		b.WriteString(html.EscapeString(r.Text))
	}
}
