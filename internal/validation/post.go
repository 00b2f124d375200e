// Package validation canonicalizes and validates post input before it
// reaches the persistence layer.
package validation

import (
	"strings"
	"time"
	"unicode"

	"coachblog/internal/models"
)

// PostInput is the explicit input schema for post create and update calls.
// Optional fields are pointers (or nil-able types) so an omitted field can be
// told apart from an explicitly empty one when merging with an existing post.
type PostInput struct {
	Title            *string         `json:"title"`
	Slug             *string         `json:"slug"`
	Excerpt          *string         `json:"excerpt"`
	ContentHTML      *string         `json:"content_html"`
	FeaturedImageURL *string         `json:"featured_image_url"`
	AuthorName       *string         `json:"author_name"`
	Category         *string         `json:"category"`
	Tags             *models.TagList `json:"tags"`
	IsPublished      *bool           `json:"is_published"`
	PublishedAt      *time.Time      `json:"published_at"`
}

// MergeInto overlays the supplied fields onto an existing post, so omitted
// fields retain their previous values. The result still goes through
// Normalize before persistence.
func (in *PostInput) MergeInto(existing *models.Post) PostInput {
	merged := PostInput{
		Title:            orExisting(in.Title, existing.Title),
		Slug:             orExisting(in.Slug, existing.Slug),
		Excerpt:          orExisting(in.Excerpt, existing.Excerpt),
		ContentHTML:      orExisting(in.ContentHTML, existing.ContentHTML),
		FeaturedImageURL: orExisting(in.FeaturedImageURL, existing.FeaturedImageURL),
		AuthorName:       orExisting(in.AuthorName, existing.AuthorName),
		Category:         orExisting(in.Category, existing.Category),
		PublishedAt:      in.PublishedAt,
	}

	if in.Tags != nil {
		merged.Tags = in.Tags
	} else {
		existingTags := models.TagList(models.SplitTags(existing.Tags))
		merged.Tags = &existingTags
	}

	if in.IsPublished != nil {
		merged.IsPublished = in.IsPublished
	} else {
		published := existing.IsPublished
		merged.IsPublished = &published
	}

	return merged
}

func orExisting(supplied *string, existing string) *string {
	if supplied != nil {
		return supplied
	}
	return &existing
}

// NormalizedPost is the canonical form of validated post input, ready to be
// written to the store.
type NormalizedPost struct {
	Title            string
	Slug             string
	Excerpt          string
	ContentHTML      string
	FeaturedImageURL string
	AuthorName       string
	Category         string
	Tags             string
	IsPublished      bool
	PublishedAt      *time.Time
}

// Normalize trims every string field, derives the slug, canonicalizes tags,
// and rejects input whose title, slug, or content is empty after trimming.
func Normalize(in PostInput) (*NormalizedPost, error) {
	title := strings.TrimSpace(deref(in.Title))
	slugInput := strings.TrimSpace(deref(in.Slug))
	slug := Slugify(slugInput)
	if slug == "" {
		slug = Slugify(title)
	}

	contentHTML := strings.TrimSpace(deref(in.ContentHTML))
	authorName := strings.TrimSpace(deref(in.AuthorName))
	if authorName == "" {
		authorName = models.DefaultAuthorName
	}

	if title == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if slug == "" {
		return nil, models.NewValidationError("Slug is required")
	}
	if contentHTML == "" {
		return nil, models.NewValidationError("content_html is required")
	}

	return &NormalizedPost{
		Title:            title,
		Slug:             slug,
		Excerpt:          strings.TrimSpace(deref(in.Excerpt)),
		ContentHTML:      contentHTML,
		FeaturedImageURL: strings.TrimSpace(deref(in.FeaturedImageURL)),
		AuthorName:       authorName,
		Category:         strings.TrimSpace(deref(in.Category)),
		Tags:             joinTags(in.Tags),
		IsPublished:      in.IsPublished != nil && *in.IsPublished,
		PublishedAt:      in.PublishedAt,
	}, nil
}

func joinTags(tags *models.TagList) string {
	if tags == nil {
		return ""
	}
	return tags.Join()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Slugify converts free text into a URL-safe slug: lowercase, runs of
// non-alphanumeric characters collapsed to single hyphens, no leading or
// trailing hyphen.
func Slugify(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	pendingHyphen := false
	for _, r := range strings.ToLower(text) {
		if r <= unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}

	return b.String()
}
