package models

import (
	"encoding/json"
	"strings"
	"time"
)

// DefaultAuthorName is used when a post is created without an author name.
const DefaultAuthorName = "Coach Angelo"

// Post is a blog post. Tags are stored as a single comma-delimited column
// and split back into a list on the wire.
type Post struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	Title            string     `gorm:"not null" json:"title"`
	Slug             string     `gorm:"uniqueIndex;not null" json:"slug"`
	Excerpt          string     `json:"excerpt"`
	ContentHTML      string     `gorm:"not null" json:"content_html"`
	FeaturedImageURL string     `json:"featured_image_url"`
	AuthorName       string     `gorm:"not null;default:'Coach Angelo'" json:"author_name"`
	Category         string     `json:"category"`
	Tags             string     `json:"-"`
	IsPublished      bool       `gorm:"not null;default:false;index:idx_posts_published" json:"is_published"`
	PublishedAt      *time.Time `gorm:"index:idx_posts_published" json:"published_at"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// MarshalJSON renders the stored tag column as a list.
func (p Post) MarshalJSON() ([]byte, error) {
	type alias Post
	return json.Marshal(struct {
		alias
		Tags []string `json:"tags"`
	}{alias(p), SplitTags(p.Tags)})
}

// PostSummary is the listing projection of a post: everything except the
// full HTML body.
type PostSummary struct {
	ID               uint       `json:"id"`
	Title            string     `json:"title"`
	Slug             string     `json:"slug"`
	Excerpt          string     `json:"excerpt"`
	FeaturedImageURL string     `json:"featured_image_url"`
	AuthorName       string     `json:"author_name"`
	Category         string     `json:"category"`
	Tags             string     `json:"-"`
	PublishedAt      *time.Time `json:"published_at"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// MarshalJSON renders the stored tag column as a list.
func (p PostSummary) MarshalJSON() ([]byte, error) {
	type alias PostSummary
	return json.Marshal(struct {
		alias
		Tags []string `json:"tags"`
	}{alias(p), SplitTags(p.Tags)})
}

// Summary returns the listing projection of the post.
func (p *Post) Summary() PostSummary {
	return PostSummary{
		ID:               p.ID,
		Title:            p.Title,
		Slug:             p.Slug,
		Excerpt:          p.Excerpt,
		FeaturedImageURL: p.FeaturedImageURL,
		AuthorName:       p.AuthorName,
		Category:         p.Category,
		Tags:             p.Tags,
		PublishedAt:      p.PublishedAt,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

// TagList accepts either a JSON array of strings or a single delimited
// string on input, and always serializes as an array.
type TagList []string

// UnmarshalJSON handles both `["a","b"]` and `"a, b"` input shapes.
func (t *TagList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*t = list
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	*t = SplitTags(single)
	return nil
}

// Join returns the canonical comma-delimited storage form.
func (t TagList) Join() string {
	cleaned := make([]string, 0, len(t))
	for _, tag := range t {
		if trimmed := strings.TrimSpace(tag); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	return strings.Join(cleaned, ",")
}

// SplitTags parses the stored comma-delimited form back into a list,
// dropping empty and whitespace-only entries.
func SplitTags(stored string) []string {
	tags := []string{}
	for _, part := range strings.Split(stored, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			tags = append(tags, trimmed)
		}
	}
	return tags
}
