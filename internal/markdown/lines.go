package markdown

import (
	"regexp"
	"strings"
)

const tabStop = 4

// Line ending normalization.
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// normalize prepares raw input for line scanning: CR and CRLF become LF,
// NUL becomes U+FFFD, and invalid UTF-8 sequences are replaced.
func normalize(text string) string {
	text = crlfOrCR.ReplaceAllString(text, "\n")
	text = strings.ReplaceAll(text, "\x00", "\uFFFD")
	return strings.ToValidUTF8(text, "\uFFFD")
}

// splitLines splits normalized text into lines without their terminators.
// A trailing newline does not produce an extra empty line.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}

// indentation returns the column width and byte length of the leading
// whitespace of line. Tabs advance to the next multiple of four.
func indentation(line string) (cols, n int) {
	for n < len(line) {
		switch line[n] {
		case ' ':
			cols++
		case '\t':
			cols += tabStop - cols%tabStop
		default:
			return cols, n
		}
		n++
	}
	return cols, n
}

// stripColumns removes up to width columns of leading whitespace. A tab that
// is only partly consumed leaves its remaining columns as spaces.
func stripColumns(line string, width int) string {
	cols := 0
	for i := 0; i < len(line); i++ {
		if cols >= width {
			return line[i:]
		}
		switch line[i] {
		case ' ':
			cols++
		case '\t':
			next := cols + tabStop - cols%tabStop
			if next > width {
				return strings.Repeat(" ", next-width) + line[i+1:]
			}
			cols = next
		default:
			return line[i:]
		}
	}
	return ""
}

func isBlank(line string) bool {
	for i := 0; i < len(line); i++ {
		if line[i] != ' ' && line[i] != '\t' {
			return false
		}
	}
	return true
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func isAlnum(c byte) bool {
	return isLetter(c) || isDigit(c)
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}
