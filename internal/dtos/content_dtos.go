package dtos

import "github.com/fleetcover/quote-service/internal/models"

type SiteContentUpsertRequest struct {
	Value string `json:"value" validate:"required"`
}

type SiteContentResponse struct {
	Success bool                `json:"success"`
	Content *models.SiteContent `json:"content"`
}

type PostUpsertRequest struct {
	Slug    string `json:"slug" validate:"required,min=3,max=200"`
	Title   string `json:"title" validate:"required,min=3,max=300"`
	Body    string `json:"body" validate:"required"`
	Publish bool   `json:"publish"`
}

type BlogPostResponse struct {
	Success bool             `json:"success"`
	Post    *models.BlogPost `json:"post"`
}

type BlogListResponse struct {
	Success bool               `json:"success"`
	Posts   []*models.BlogPost `json:"posts"`
}

type NewsReleaseResponse struct {
	Success bool                `json:"success"`
	Release *models.NewsRelease `json:"release"`
}

type NewsListResponse struct {
	Success  bool                  `json:"success"`
	Releases []*models.NewsRelease `json:"releases"`
}
