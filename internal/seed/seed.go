// Package seed populates the database with sample content for local
// development.
package seed

import (
	"fmt"
	"time"

	"coachblog/internal/models"
	"coachblog/internal/validation"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var sampleTitles = []string{
	"Pre-Season Drills That Actually Stick",
	"Building a Winning Warm-Up Routine",
	"Nutrition Basics for Young Athletes",
	"Reading the Game: Positioning 101",
	"Recovering Right After Match Day",
	"Strength Work Without a Gym",
	"Keeping Training Fun in the Off-Season",
	"Goal Setting for the New Season",
}

var sampleCategories = []string{"Training", "Nutrition", "Tactics", "Recovery"}

// Posts upserts a deterministic set of sample posts keyed by slug. Roughly
// three quarters are published with staggered publish dates; the rest stay
// drafts so the admin view differs from the public one.
func Posts(db *gorm.DB) error {
	gofakeit.Seed(42)

	now := time.Now().UTC()
	for i, title := range sampleTitles {
		published := i%4 != 3
		post := models.Post{
			Title:       title,
			Slug:        validation.Slugify(title),
			Excerpt:     gofakeit.Sentence(12),
			ContentHTML: fmt.Sprintf("<p>%s</p><p>%s</p>", gofakeit.Paragraph(1, 4, 12, " "), gofakeit.Paragraph(1, 4, 12, " ")),
			AuthorName:  models.DefaultAuthorName,
			Category:    sampleCategories[i%len(sampleCategories)],
			Tags:        models.TagList{gofakeit.HipsterWord(), gofakeit.HipsterWord()}.Join(),
			IsPublished: published,
		}
		if published {
			publishedAt := now.AddDate(0, 0, -i)
			post.PublishedAt = &publishedAt
		}

		if err := db.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "slug"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"title", "excerpt", "content_html", "author_name",
				"category", "tags", "is_published", "published_at", "updated_at",
			}),
		}).Create(&post).Error; err != nil {
			return fmt.Errorf("failed to seed post %q: %w", post.Slug, err)
		}
	}

	return nil
}
