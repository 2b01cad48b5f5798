package dto

// PaginationDTO is the pagination block of the public listing.
type PaginationDTO struct {
	CurrentPage int   `json:"currentPage" example:"1"`
	TotalPages  int   `json:"totalPages" example:"3"`
	TotalPosts  int64 `json:"totalPosts" example:"25"`
	HasNextPage bool  `json:"hasNextPage" example:"true"`
	HasPrevPage bool  `json:"hasPrevPage" example:"false"`
}

// NewPaginationDTO computes the pagination block. limit must be positive.
func NewPaginationDTO(page, limit int, total int64) PaginationDTO {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return PaginationDTO{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalPosts:  total,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}
}

// PostListDTO is the body of GET /posts
// swagger:model PostListDTO
type PostListDTO struct {
	Posts      []PostDTO     `json:"posts"`
	Pagination PaginationDTO `json:"pagination"`
}

// AdminPostListDTO is the body of GET /admin/posts
// swagger:model AdminPostListDTO
type AdminPostListDTO struct {
	Posts []PostDTO `json:"posts"`
	Total int       `json:"total"`
}
