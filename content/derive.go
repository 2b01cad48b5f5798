// Package content holds the write-time derivation pipeline of a blog post:
// slug, word count and reading time, table of contents and SEO fallbacks.
// Everything here is pure and does not touch storage.
package content

import "naya-blog/models"

// Derive recomputes every derived field of p from its content and returns the result.
// Slug must already be resolved by the caller (uniqueness needs the store);
// Derive only normalizes it. Stale headings/toc are always replaced.
func Derive(p models.BlogPost) (models.BlogPost, error) {
	p.Slug = Slugify(p.Slug)

	a := Analyze(p.Content)
	p.WordCount = a.WordCount
	p.ReadingTime = a.ReadingTime

	toc, headings, err := ExtractTOC(p.Content)
	if err != nil {
		return models.BlogPost{}, err
	}
	p.TOC = toc
	p.Headings = headings

	p.SEO = ApplySEOFallbacks(p.SEO, SEOSource{
		Title:     p.Title,
		Excerpt:   p.Excerpt,
		PlainText: a.PlainText,
		ImageURL:  p.ImageURL,
	})
	return p, nil
}
