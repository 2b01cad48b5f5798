package content

import "naya-blog/models"

const (
	MetaTitleMaxLen       = 60
	MetaDescriptionMaxLen = 155
	ellipsis              = "..."
)

// Truncate returns the first max runes of s followed by "..." when s is longer than max.
func Truncate(s string, max int) string {
	rs := []rune(s)
	if len(rs) <= max {
		return s
	}
	return string(rs[:max]) + ellipsis
}

// SEOSource is what the fallback chain reads from.
type SEOSource struct {
	Title     string
	Excerpt   string
	PlainText string
	ImageURL  string
}

// ApplySEOFallbacks fills empty SEO fields and never touches non-empty ones.
// meta_* fallbacks run first because the og_* fallbacks copy their results.
func ApplySEOFallbacks(seo models.SEO, src SEOSource) models.SEO {
	if seo.MetaTitle == "" && src.Title != "" {
		seo.MetaTitle = Truncate(src.Title, MetaTitleMaxLen)
	}
	if seo.MetaDescription == "" {
		desc := src.Excerpt
		if desc == "" {
			desc = src.PlainText
		}
		seo.MetaDescription = Truncate(desc, MetaDescriptionMaxLen)
	}

	if seo.OGTitle == "" {
		seo.OGTitle = seo.MetaTitle
	}
	if seo.OGDescription == "" {
		seo.OGDescription = seo.MetaDescription
	}
	if seo.OGImage == "" && src.ImageURL != "" {
		seo.OGImage = src.ImageURL
	}
	return seo
}

// StripDerivedSEO clears every field of seo that holds exactly what ApplySEOFallbacks
// would have produced from src, so a later ApplySEOFallbacks recomputes it.
// An explicit value equal to its fallback is indistinguishable and gets recomputed too.
func StripDerivedSEO(seo models.SEO, src SEOSource) models.SEO {
	derived := ApplySEOFallbacks(models.SEO{}, src)
	out := seo

	if seo.MetaTitle == derived.MetaTitle {
		out.MetaTitle = ""
	}
	if seo.MetaDescription == derived.MetaDescription {
		out.MetaDescription = ""
	}
	// og_* fall back to the stored meta_* values, explicit or not.
	if seo.OGTitle == seo.MetaTitle {
		out.OGTitle = ""
	}
	if seo.OGDescription == seo.MetaDescription {
		out.OGDescription = ""
	}
	if src.ImageURL != "" && seo.OGImage == src.ImageURL {
		out.OGImage = ""
	}
	return out
}
