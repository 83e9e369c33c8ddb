// Package document holds the parsed model for generated feedback text and
// its two projections (HTML fragment, PDF). The generation service emits
// markdown-like text: #-prefixed headings, **bold**, "- "/"* " bullets, and
// blank-line-separated paragraphs. Both renderers consume the same parsed
// model so they cannot diverge on edge cases.
//
// The model is deliberately lossy: no tables, no nested formatting. Inline
// bold survives as runs; everything else renders as plain text.
package document

import "strings"

// Kind classifies a parsed line.
type Kind int

const (
	KindParagraph Kind = iota
	KindHeading
	KindBullet
	KindBlank
)

// Run is a span of text with uniform styling.
type Run struct {
	Text string
	Bold bool
}

// Block is one parsed line of the source text. Level is only meaningful for
// headings (number of '#' markers, capped at 3).
type Block struct {
	Kind  Kind
	Level int
	Runs  []Run
}

// PlainText concatenates the block's runs without styling.
func (b Block) PlainText() string {
	var sb strings.Builder
	for _, r := range b.Runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}

// HasBold reports whether any run in the block is bold.
func (b Block) HasBold() bool {
	for _, r := range b.Runs {
		if r.Bold {
			return true
		}
	}
	return false
}

// Parse splits markdown-like text into blocks, one per source line.
func Parse(text string) []Block {
	lines := strings.Split(text, "\n")
	blocks := make([]Block, 0, len(lines))

	for _, line := range lines {
		line = strings.TrimRight(line, " \t\r")

		switch {
		case strings.TrimSpace(line) == "":
			blocks = append(blocks, Block{Kind: KindBlank})

		case strings.HasPrefix(line, "#"):
			level := 0
			for level < len(line) && line[level] == '#' {
				level++
			}
			if level > 3 {
				level = 3
			}
			content := strings.TrimLeft(line[level:], " ")
			blocks = append(blocks, Block{
				Kind:  KindHeading,
				Level: level,
				Runs:  parseRuns(content),
			})

		case strings.HasPrefix(line, "- "), strings.HasPrefix(line, "* "):
			blocks = append(blocks, Block{
				Kind: KindBullet,
				Runs: parseRuns(line[2:]),
			})

		default:
			blocks = append(blocks, Block{
				Kind: KindParagraph,
				Runs: parseRuns(line),
			})
		}
	}

	return blocks
}

// parseRuns splits a line on ** markers into alternating plain/bold runs.
// An unterminated marker bolds the remainder of the line.
func parseRuns(line string) []Run {
	parts := strings.Split(line, "**")
	runs := make([]Run, 0, len(parts))
	for i, part := range parts {
		if part == "" {
			continue
		}
		runs = append(runs, Run{
			Text: part,
			Bold: i%2 == 1,
		})
	}
	if len(runs) == 0 {
		runs = append(runs, Run{Text: ""})
	}
	return runs
}
