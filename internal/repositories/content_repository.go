package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v4"

	"github.com/fleetcover/quote-service/internal/models"
)

// SiteContentRepository stores keyed blocks of editable page copy.
type SiteContentRepository interface {
	Get(ctx context.Context, key string) (*models.SiteContent, error)
	Upsert(ctx context.Context, key, value string) (*models.SiteContent, error)
}

type siteContentRepo struct{ db DB }

func NewSiteContentRepository(db DB) SiteContentRepository {
	return &siteContentRepo{db: db}
}

func (r *siteContentRepo) Get(ctx context.Context, key string) (*models.SiteContent, error) {
	var c models.SiteContent
	row := r.db.QueryRow(ctx, `SELECT key, value, updated_at FROM site_content WHERE key=$1`, key)
	if err := row.Scan(&c.Key, &c.Value, &c.UpdatedAt); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *siteContentRepo) Upsert(ctx context.Context, key, value string) (*models.SiteContent, error) {
	now := time.Now().UTC()
	_, err := r.db.Exec(ctx, `
		INSERT INTO site_content (key, value, updated_at) VALUES ($1,$2,$3)
		ON CONFLICT (key) DO UPDATE SET value=EXCLUDED.value, updated_at=EXCLUDED.updated_at
	`, key, value, now)
	if err != nil {
		return nil, err
	}
	return &models.SiteContent{Key: key, Value: value, UpdatedAt: now}, nil
}

// PostRepository serves both blog posts and news releases; the two tables
// share a shape and differ only in name.
type PostRepository interface {
	CreateBlogPost(ctx context.Context, p *models.BlogPost) error
	GetBlogPostBySlug(ctx context.Context, slug string) (*models.BlogPost, error)
	ListBlogPosts(ctx context.Context) ([]*models.BlogPost, error)

	CreateNewsRelease(ctx context.Context, nr *models.NewsRelease) error
	GetNewsReleaseBySlug(ctx context.Context, slug string) (*models.NewsRelease, error)
	ListNewsReleases(ctx context.Context) ([]*models.NewsRelease, error)
}

type postRepo struct{ db DB }

func NewPostRepository(db DB) PostRepository {
	return &postRepo{db: db}
}

func (r *postRepo) CreateBlogPost(ctx context.Context, p *models.BlogPost) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO blog_posts (id, slug, title, body, published_at, created_at)
		VALUES ($1,$2,$3,$4,$5,$6)
	`, p.ID, p.Slug, p.Title, p.Body, p.PublishedAt, p.CreatedAt)
	return err
}

func (r *postRepo) GetBlogPostBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	var p models.BlogPost
	row := r.db.QueryRow(ctx, `
		SELECT id, slug, title, body, published_at, created_at
		FROM blog_posts WHERE slug=$1
	`, slug)
	if err := row.Scan(&p.ID, &p.Slug, &p.Title, &p.Body, &p.PublishedAt, &p.CreatedAt); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *postRepo) ListBlogPosts(ctx context.Context) ([]*models.BlogPost, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, slug, title, body, published_at, created_at
		FROM blog_posts WHERE published_at IS NOT NULL ORDER BY published_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := make([]*models.BlogPost, 0)
	for rows.Next() {
		var p models.BlogPost
		if err := rows.Scan(&p.ID, &p.Slug, &p.Title, &p.Body, &p.PublishedAt, &p.CreatedAt); err != nil {
			return nil, err
		}
		posts = append(posts, &p)
	}
	return posts, rows.Err()
}

func (r *postRepo) CreateNewsRelease(ctx context.Context, nr *models.NewsRelease) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO news_releases (id, slug, title, body, published_at, created_at)
		VALUES ($1,$2,$3,$4,$5,$6)
	`, nr.ID, nr.Slug, nr.Title, nr.Body, nr.PublishedAt, nr.CreatedAt)
	return err
}

func (r *postRepo) GetNewsReleaseBySlug(ctx context.Context, slug string) (*models.NewsRelease, error) {
	var nr models.NewsRelease
	row := r.db.QueryRow(ctx, `
		SELECT id, slug, title, body, published_at, created_at
		FROM news_releases WHERE slug=$1
	`, slug)
	if err := row.Scan(&nr.ID, &nr.Slug, &nr.Title, &nr.Body, &nr.PublishedAt, &nr.CreatedAt); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &nr, nil
}

func (r *postRepo) ListNewsReleases(ctx context.Context) ([]*models.NewsRelease, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, slug, title, body, published_at, created_at
		FROM news_releases WHERE published_at IS NOT NULL ORDER BY published_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	releases := make([]*models.NewsRelease, 0)
	for rows.Next() {
		var nr models.NewsRelease
		if err := rows.Scan(&nr.ID, &nr.Slug, &nr.Title, &nr.Body, &nr.PublishedAt, &nr.CreatedAt); err != nil {
			return nil, err
		}
		releases = append(releases, &nr)
	}
	return releases, rows.Err()
}
