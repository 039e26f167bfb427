package pipeline

import (
	"strings"
)

// inlineEscaper escapes the characters that open inline markup or HTML.
// Periods, colons and slashes stay untouched so URLs remain autolinkable.
var inlineEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	"*", `\*`,
	"_", `\_`,
	"[", `\[`,
	"]", `\]`,
	"<", `\<`,
	">", `\>`,
	"#", `\#`,
	"|", `\|`,
	"~", `\~`,
	"!", `\!`,
	"&", `\&`,
)

// EscapeMarkdown makes a single line of plain text safe to embed in
// CommonMark: inline markup characters are escaped and line-leading
// block markers (list bullets, setext underlines, ordered list numbers)
// lose their meaning.
func EscapeMarkdown(line string) string {
	line = strings.TrimSpace(line)
	if line == "" {
		return ""
	}
	line = inlineEscaper.Replace(line)

	switch line[0] {
	case '-', '+', '=':
		return `\` + line
	}

	// "1." or "1)" at line start opens an ordered list.
	digits := 0
	for digits < len(line) && line[digits] >= '0' && line[digits] <= '9' {
		digits++
	}
	if digits > 0 && digits < len(line) && (line[digits] == '.' || line[digits] == ')') {
		return line[:digits] + `\` + line[digits:]
	}
	return line
}

// MarkdownWriter accumulates a Markdown document block by block.
// All text is escaped; callers pass plain text.
type MarkdownWriter struct {
	b strings.Builder
}

// Heading writes an ATX heading. Line breaks in text become spaces.
func (w *MarkdownWriter) Heading(level int, text string) {
	level = max(1, min(level, 6))
	text = strings.Join(strings.Fields(text), " ")
	w.block(strings.Repeat("#", level) + " " + EscapeMarkdown(text))
}

// Paragraph writes lines as one paragraph. Each non-empty input line, and
// each line embedded in them, becomes its own output line.
func (w *MarkdownWriter) Paragraph(lines ...string) {
	if out := escapeLines(lines); len(out) > 0 {
		w.block(strings.Join(out, "\n"))
	}
}

// LabeledParagraph writes a bold label line followed by lines, as one paragraph.
func (w *MarkdownWriter) LabeledParagraph(label string, lines ...string) {
	out := escapeLines(lines)
	if label = EscapeMarkdown(label); label != "" {
		out = append([]string{"**" + label + "**"}, out...)
	}
	if len(out) > 0 {
		w.block(strings.Join(out, "\n"))
	}
}

// String returns the document written so far.
func (w *MarkdownWriter) String() string {
	return w.b.String()
}

func (w *MarkdownWriter) block(s string) {
	if w.b.Len() > 0 {
		w.b.WriteString("\n")
	}
	w.b.WriteString(s)
	w.b.WriteString("\n")
}

func escapeLines(lines []string) []string {
	var out []string
	for _, l := range lines {
		for _, part := range strings.Split(l, "\n") {
			if e := EscapeMarkdown(part); e != "" {
				out = append(out, e)
			}
		}
	}
	return out
}
