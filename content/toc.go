package content

import (
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"naya-blog/models"
)

const headingSelector = "h2, h3, h4"

// ExtractTOC returns every h2-h4 heading of htmlContent in document order.
// Heading text is the trimmed text of the heading body with inner tags removed;
// headings without text are skipped. IDs are slugified text and may repeat.
func ExtractTOC(htmlContent string) ([]models.Heading, []string, error) {
	toc := []models.Heading{}
	headings := []string{}
	if strings.TrimSpace(htmlContent) == "" {
		return toc, headings, nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, nil, fmt.Errorf("parse content html: %w", err)
	}

	doc.Find(headingSelector).Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if text == "" {
			return
		}
		toc = append(toc, models.Heading{
			Level: headingLevel(goquery.NodeName(s)),
			Text:  text,
			ID:    Slugify(text),
		})
		headings = append(headings, text)
	})
	return toc, headings, nil
}

func headingLevel(tag string) int {
	switch tag {
	case "h2":
		return 2
	case "h3":
		return 3
	case "h4":
		return 4
	}
	return 0
}

var idAttr = regexp.MustCompile(`(?i)(^|\s)id\s*=`)

// InjectHeadingIDs adds id attributes to the headings listed in toc so that
// anchor links resolve. For each entry the first heading of the same level whose
// body is exactly the entry text (raw or HTML-escaped) and which has no id yet
// gets the entry id. Headings that do not match are left untouched.
func InjectHeadingIDs(htmlContent string, toc []models.Heading) string {
	out := htmlContent
	for _, h := range toc {
		if h.ID == "" || h.Level < 2 || h.Level > 4 {
			continue
		}
		out = injectOne(out, h)
	}
	return out
}

func injectOne(htmlContent string, h models.Heading) string {
	candidates := []string{h.Text}
	if escaped := html.EscapeString(h.Text); escaped != h.Text {
		candidates = append(candidates, escaped)
	}

	for _, text := range candidates {
		pattern := fmt.Sprintf(`<[hH]%d([^>]*)>(%s)</[hH]%d>`, h.Level, regexp.QuoteMeta(text), h.Level)
		re := regexp.MustCompile(pattern)
		for _, m := range re.FindAllStringSubmatchIndex(htmlContent, -1) {
			attrs := htmlContent[m[2]:m[3]]
			if idAttr.MatchString(attrs) {
				continue
			}
			body := htmlContent[m[4]:m[5]]
			replacement := fmt.Sprintf(`<h%d id="%s"%s>%s</h%d>`, h.Level, html.EscapeString(h.ID), attrs, body, h.Level)
			return htmlContent[:m[0]] + replacement + htmlContent[m[1]:]
		}
	}
	return htmlContent
}
