package dto

import "time"

type SitemapEntryDTO struct {
	URL          string    `json:"url" example:"https://nayastack.com/blog/hello-world"`
	LastModified time.Time `json:"last_modified"`
}

type SitemapDTO struct {
	Entries []SitemapEntryDTO `json:"entries"`
}
