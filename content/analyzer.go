package content

import (
	"math"
	"strings"

	"golang.org/x/net/html"
)

// WordsPerMinute is the reading speed used for ReadingTime.
const WordsPerMinute = 200

// PlainText drops every tag from s and collapses whitespace runs to single spaces.
// Text is kept as written (entities are not decoded) so that PlainText is idempotent.
func PlainText(s string) string {
	if s == "" {
		return ""
	}
	z := html.NewTokenizer(strings.NewReader(s))
	var b strings.Builder
	for {
		switch z.Next() {
		case html.ErrorToken:
			return strings.Join(strings.Fields(b.String()), " ")
		case html.TextToken:
			b.Write(z.Raw())
			b.WriteByte(' ')
		default:
			// tags, comments and doctypes separate words
			b.WriteByte(' ')
		}
	}
}

// CountWords counts whitespace separated words of already stripped text.
func CountWords(plain string) int {
	return len(strings.Fields(plain))
}

// WordCount counts the words of HTML content, heading text included.
func WordCount(htmlContent string) int {
	return CountWords(PlainText(htmlContent))
}

// ReadingTime returns max(1, round(words / WordsPerMinute)) minutes.
func ReadingTime(words int) int {
	minutes := int(math.Round(float64(words) / WordsPerMinute))
	if minutes < 1 {
		return 1
	}
	return minutes
}

// Analysis is the output of Analyze.
type Analysis struct {
	PlainText   string
	WordCount   int
	ReadingTime int
}

func Analyze(htmlContent string) Analysis {
	plain := PlainText(htmlContent)
	words := CountWords(plain)
	return Analysis{
		PlainText:   plain,
		WordCount:   words,
		ReadingTime: ReadingTime(words),
	}
}
