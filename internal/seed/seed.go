// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"quill/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumPosts    int
	ShouldClean bool
}

var tagNames = []string{
	"Python", "Web", "Django", "Databases", "Testing", "Deployment",
	"Performance", "Security", "APIs", "Tooling",
}

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db *gorm.DB
	r  *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	src := rand.NewSource(time.Now().UnixNano())
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{db: db, r: rand.New(src)}
}

// Slugify turns a title into a URL-safe slug.
func Slugify(title string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}

// CreateTag persists a tag with a slug derived from its name.
func (f *Factory) CreateTag(name string) (*models.Tag, error) {
	tag := &models.Tag{Name: name, Slug: Slugify(name)}
	if err := f.db.Create(tag).Error; err != nil {
		return nil, err
	}
	return tag, nil
}

// CreatePost constructs and persists a sample post. Roughly one in five posts
// stays a draft so queries against the published surface have negatives to
// filter out. Optional override functions may modify the post before saving.
func (f *Factory) CreatePost(tags []models.Tag, overrides ...func(*models.Post)) (*models.Post, error) {
	title := strings.TrimSuffix(gofakeit.Sentence(f.r.Intn(5)+3), ".")
	daysBack := f.r.Intn(180)
	publish := time.Now().UTC().
		Add(-time.Duration(daysBack)*24*time.Hour - time.Duration(f.r.Intn(24))*time.Hour)

	status := models.PostStatusPublished
	if f.r.Intn(5) == 0 {
		status = models.PostStatusDraft
	}

	post := &models.Post{
		Title:   title,
		Slug:    fmt.Sprintf("%s-%d", Slugify(title), f.r.Intn(10000)),
		Body:    gofakeit.Paragraph(3, 4, 8, "\n\n"),
		Author:  gofakeit.Name(),
		Publish: publish,
		Status:  status,
		Tags:    pickTags(f.r, tags),
	}

	for _, override := range overrides {
		override(post)
	}

	if err := f.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// CreateComment persists a comment on the given post. Roughly one in ten is
// inactive, mirroring moderated-away comments.
func (f *Factory) CreateComment(post *models.Post, overrides ...func(*models.Comment)) (*models.Comment, error) {
	comment := &models.Comment{
		PostID: post.ID,
		Name:   gofakeit.FirstName(),
		Email:  gofakeit.Email(),
		Body:   gofakeit.Sentence(f.r.Intn(12) + 4),
		Active: f.r.Intn(10) != 0,
	}

	for _, override := range overrides {
		override(comment)
	}

	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

func pickTags(r *rand.Rand, tags []models.Tag) []models.Tag {
	if len(tags) == 0 {
		return nil
	}
	n := r.Intn(4)
	if n > len(tags) {
		n = len(tags)
	}
	picked := make([]models.Tag, 0, n)
	for _, i := range r.Perm(len(tags))[:n] {
		picked = append(picked, tags[i])
	}
	return picked
}

// Seed populates the database with test data
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("Seeding database with %d posts...", opts.NumPosts)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("Warning: could not clear all existing data, continuing anyway...")
		}
	}

	f := NewFactory(db)

	tags := make([]models.Tag, 0, len(tagNames))
	for _, name := range tagNames {
		tag, err := f.CreateTag(name)
		if err != nil {
			return fmt.Errorf("failed to create tag %q: %w", name, err)
		}
		tags = append(tags, *tag)
	}
	log.Printf("%d tags created", len(tags))

	comments := 0
	for i := 0; i < opts.NumPosts; i++ {
		post, err := f.CreatePost(tags)
		if err != nil {
			return fmt.Errorf("failed to create post: %w", err)
		}
		for j := f.r.Intn(6); j > 0; j-- {
			if _, err := f.CreateComment(post); err != nil {
				return fmt.Errorf("failed to create comment: %w", err)
			}
			comments++
		}
	}
	log.Printf("%d posts and %d comments created", opts.NumPosts, comments)

	return nil
}

// clearData removes all seeded rows. Order matters because of the
// comment->post foreign key.
func clearData(db *gorm.DB) error {
	for _, stmt := range []string{
		"DELETE FROM comments",
		"DELETE FROM post_tags",
		"DELETE FROM posts",
		"DELETE FROM tags",
	} {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
