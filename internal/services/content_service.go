package services

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/fleetcover/quote-service/internal/dtos"
	"github.com/fleetcover/quote-service/internal/models"
	"github.com/fleetcover/quote-service/internal/repositories"
	"github.com/fleetcover/quote-service/internal/utils"
)

// ContentService manages editable site copy, blog posts and news releases.
type ContentService interface {
	GetContent(ctx context.Context, key string) (*models.SiteContent, error)
	UpsertContent(ctx context.Context, key, value string) (*models.SiteContent, error)

	CreateBlogPost(ctx context.Context, req dtos.PostUpsertRequest) (*models.BlogPost, error)
	GetBlogPost(ctx context.Context, slug string) (*models.BlogPost, error)
	ListBlogPosts(ctx context.Context) ([]*models.BlogPost, error)

	CreateNewsRelease(ctx context.Context, req dtos.PostUpsertRequest) (*models.NewsRelease, error)
	GetNewsRelease(ctx context.Context, slug string) (*models.NewsRelease, error)
	ListNewsReleases(ctx context.Context) ([]*models.NewsRelease, error)
}

type contentService struct {
	contentRepo repositories.SiteContentRepository
	postRepo    repositories.PostRepository
}

func NewContentService(
	contentRepo repositories.SiteContentRepository,
	postRepo repositories.PostRepository,
) ContentService {
	return &contentService{contentRepo: contentRepo, postRepo: postRepo}
}

func internalErr(msg string, err error) error {
	return &utils.AppError{
		StatusCode: http.StatusInternalServerError,
		Code:       utils.ErrCodeInternal,
		Message:    msg,
		Err:        err,
	}
}

func (s *contentService) GetContent(ctx context.Context, key string) (*models.SiteContent, error) {
	c, err := s.contentRepo.Get(ctx, key)
	if err != nil {
		return nil, internalErr("Failed to load content", err)
	}
	return c, nil
}

func (s *contentService) UpsertContent(ctx context.Context, key, value string) (*models.SiteContent, error) {
	c, err := s.contentRepo.Upsert(ctx, key, value)
	if err != nil {
		return nil, internalErr("Failed to save content", err)
	}
	return c, nil
}

func (s *contentService) CreateBlogPost(ctx context.Context, req dtos.PostUpsertRequest) (*models.BlogPost, error) {
	p := &models.BlogPost{
		ID:        uuid.New(),
		Slug:      req.Slug,
		Title:     req.Title,
		Body:      req.Body,
		CreatedAt: time.Now().UTC(),
	}
	if req.Publish {
		p.PublishedAt = utils.Ptr(time.Now().UTC())
	}
	if err := s.postRepo.CreateBlogPost(ctx, p); err != nil {
		return nil, internalErr("Failed to save blog post", err)
	}
	return p, nil
}

func (s *contentService) GetBlogPost(ctx context.Context, slug string) (*models.BlogPost, error) {
	p, err := s.postRepo.GetBlogPostBySlug(ctx, slug)
	if err != nil {
		return nil, internalErr("Failed to load blog post", err)
	}
	return p, nil
}

func (s *contentService) ListBlogPosts(ctx context.Context) ([]*models.BlogPost, error) {
	posts, err := s.postRepo.ListBlogPosts(ctx)
	if err != nil {
		return nil, internalErr("Failed to list blog posts", err)
	}
	return posts, nil
}

func (s *contentService) CreateNewsRelease(ctx context.Context, req dtos.PostUpsertRequest) (*models.NewsRelease, error) {
	nr := &models.NewsRelease{
		ID:        uuid.New(),
		Slug:      req.Slug,
		Title:     req.Title,
		Body:      req.Body,
		CreatedAt: time.Now().UTC(),
	}
	if req.Publish {
		nr.PublishedAt = utils.Ptr(time.Now().UTC())
	}
	if err := s.postRepo.CreateNewsRelease(ctx, nr); err != nil {
		return nil, internalErr("Failed to save news release", err)
	}
	return nr, nil
}

func (s *contentService) GetNewsRelease(ctx context.Context, slug string) (*models.NewsRelease, error) {
	nr, err := s.postRepo.GetNewsReleaseBySlug(ctx, slug)
	if err != nil {
		return nil, internalErr("Failed to load news release", err)
	}
	return nr, nil
}

func (s *contentService) ListNewsReleases(ctx context.Context) ([]*models.NewsRelease, error) {
	releases, err := s.postRepo.ListNewsReleases(ctx)
	if err != nil {
		return nil, internalErr("Failed to list news releases", err)
	}
	return releases, nil
}
