package repository

import (
	"context"
	"errors"
	"time"

	"coachblog/internal/models"
	"coachblog/internal/validation"

	"gorm.io/gorm"
)

const (
	defaultPublishedLimit = 20
	maxPublishedLimit     = 100
)

// PostRepository defines persistence operations for posts. Slug uniqueness
// is enforced by the storage layer's constraint; a violation surfaces as a
// distinct conflict error and never partially commits.
type PostRepository interface {
	List(ctx context.Context) ([]models.Post, error)
	ListPublished(ctx context.Context, limit int) ([]models.PostSummary, error)
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	GetBySlugPublished(ctx context.Context, slug string) (*models.Post, error)
	Create(ctx context.Context, input *validation.NormalizedPost) (*models.Post, error)
	Update(ctx context.Context, existing *models.Post, input *validation.NormalizedPost) (*models.Post, error)
	Delete(ctx context.Context, id uint) error
}

type postRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewPostRepository returns a new PostRepository implementation.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db, now: time.Now}
}

// List returns all posts for the admin view, newest created first.
func (r *postRepository) List(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&posts).Error
	return posts, err
}

// ListPublished returns published post summaries ordered by publish time
// (falling back to creation time), newest first. The limit is clamped to
// [1, 100]; values of zero or below use the default of 20.
func (r *postRepository) ListPublished(ctx context.Context, limit int) ([]models.PostSummary, error) {
	if limit <= 0 {
		limit = defaultPublishedLimit
	}
	if limit > maxPublishedLimit {
		limit = maxPublishedLimit
	}

	var summaries []models.PostSummary
	err := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("is_published = ?", true).
		Order("COALESCE(published_at, created_at) DESC").
		Limit(limit).
		Find(&summaries).Error
	return summaries, err
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.WithContext(ctx).First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post")
		}
		return nil, err
	}
	return &post, nil
}

// GetBySlugPublished fetches a published post by slug. Drafts are invisible
// through this path.
func (r *postRepository) GetBySlugPublished(ctx context.Context, slug string) (*models.Post, error) {
	var post models.Post
	err := r.db.WithContext(ctx).
		Where("slug = ? AND is_published = ?", slug, true).
		First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post")
		}
		return nil, err
	}
	return &post, nil
}

// Create inserts a normalized post. On first publish the publish timestamp
// defaults to now unless the input supplied one explicitly.
func (r *postRepository) Create(ctx context.Context, input *validation.NormalizedPost) (*models.Post, error) {
	post := models.Post{
		Title:            input.Title,
		Slug:             input.Slug,
		Excerpt:          input.Excerpt,
		ContentHTML:      input.ContentHTML,
		FeaturedImageURL: input.FeaturedImageURL,
		AuthorName:       input.AuthorName,
		Category:         input.Category,
		Tags:             input.Tags,
		IsPublished:      input.IsPublished,
	}
	if input.IsPublished {
		post.PublishedAt = r.publishTime(input.PublishedAt, nil)
	}

	if err := r.db.WithContext(ctx).Create(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.NewSlugConflictError()
		}
		return nil, err
	}

	// Read back the committed row rather than trusting the in-memory copy.
	return r.GetByID(ctx, post.ID)
}

// Update overwrites the existing post with the normalized input. The publish
// timestamp is preserved while the post stays published, set on first
// publish, and cleared on unpublish.
func (r *postRepository) Update(ctx context.Context, existing *models.Post, input *validation.NormalizedPost) (*models.Post, error) {
	post := *existing
	post.Title = input.Title
	post.Slug = input.Slug
	post.Excerpt = input.Excerpt
	post.ContentHTML = input.ContentHTML
	post.FeaturedImageURL = input.FeaturedImageURL
	post.AuthorName = input.AuthorName
	post.Category = input.Category
	post.Tags = input.Tags
	post.IsPublished = input.IsPublished

	if input.IsPublished {
		post.PublishedAt = r.publishTime(input.PublishedAt, existing.PublishedAt)
	} else {
		post.PublishedAt = nil
	}

	if err := r.db.WithContext(ctx).Save(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.NewSlugConflictError()
		}
		return nil, err
	}

	return r.GetByID(ctx, post.ID)
}

// Delete removes a post permanently. There is no soft-delete.
func (r *postRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Post{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("Post")
	}
	return nil
}

// publishTime resolves the publish timestamp: an explicit value wins, then a
// previously set one, then now.
func (r *postRepository) publishTime(explicit, previous *time.Time) *time.Time {
	if explicit != nil {
		return explicit
	}
	if previous != nil {
		return previous
	}
	now := r.now()
	return &now
}
