// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"time"

	"quill/internal/config"
	"quill/internal/models"

	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetPublishedByID(ctx context.Context, id uint) (*models.Post, error)
	GetPublishedBySlug(ctx context.Context, year, month, day int, slug string) (*models.Post, error)
	ListPublished(ctx context.Context, tagID uint) ([]*models.Post, error)
	Similar(ctx context.Context, post *models.Post, limit int) ([]*models.Post, error)
	Search(ctx context.Context, query string) ([]*models.Post, error)
}

// SearchOptions selects and tunes the title-search strategy.
type SearchOptions struct {
	Strategy            string
	SimilarityThreshold float64
	MinRank             float64
}

// postRepository implements PostRepository
type postRepository struct {
	db     *gorm.DB
	search SearchOptions
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB, search SearchOptions) PostRepository {
	if search.Strategy == "" {
		search.Strategy = config.SearchStrategyTrigram
	}
	return &postRepository{db: db, search: search}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

// published restricts a query to posts visible to readers.
func (r *postRepository) published(db *gorm.DB) *gorm.DB {
	return db.Model(&models.Post{}).Where("posts.status = ?", models.PostStatusPublished)
}

func (r *postRepository) GetPublishedByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	err := r.published(r.db.WithContext(ctx)).
		Preload("Tags").
		Where("posts.id = ?", id).
		First(&post).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) GetPublishedBySlug(ctx context.Context, year, month, day int, slug string) (*models.Post, error) {
	dayStart := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.AddDate(0, 0, 1)

	var post models.Post
	err := r.published(r.db.WithContext(ctx)).
		Preload("Tags").
		Where("posts.slug = ?", slug).
		Where("posts.publish >= ? AND posts.publish < ?", dayStart, dayEnd).
		First(&post).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// ListPublished returns all published posts newest first. A non-zero tagID
// restricts the list to posts carrying that tag.
func (r *postRepository) ListPublished(ctx context.Context, tagID uint) ([]*models.Post, error) {
	var posts []*models.Post
	q := r.published(r.db.WithContext(ctx)).
		Preload("Tags").
		Order("posts.publish DESC")
	if tagID != 0 {
		q = q.Joins("JOIN post_tags ON post_tags.post_id = posts.id").
			Where("post_tags.tag_id = ?", tagID)
	}
	if err := q.Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// Similar returns published posts sharing tags with the given post, ranked by
// the count of matching tag associations, then by publish time. The count is
// over join rows, not a deduplicated tag set.
func (r *postRepository) Similar(ctx context.Context, post *models.Post, limit int) ([]*models.Post, error) {
	if len(post.Tags) == 0 {
		return nil, nil
	}

	tagIDs := make([]uint, 0, len(post.Tags))
	for _, t := range post.Tags {
		tagIDs = append(tagIDs, t.ID)
	}

	var posts []*models.Post
	err := r.published(r.db.WithContext(ctx)).
		Select("posts.*, COUNT(post_tags.tag_id) AS same_tags").
		Joins("JOIN post_tags ON post_tags.post_id = posts.id").
		Where("post_tags.tag_id IN ?", tagIDs).
		Where("posts.id <> ?", post.ID).
		Group("posts.id").
		Order("same_tags DESC, posts.publish DESC").
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// searchVector is the weighted document used by the fulltext strategy:
// titles count more than bodies.
const searchVector = "setweight(to_tsvector('english', posts.title), 'A') || " +
	"setweight(to_tsvector('english', posts.body), 'B')"

// Search returns published posts matching the query, best match first.
// The trigram strategy scores title similarity; the fulltext strategy ranks a
// weighted title+body vector. Both expose their score as `similarity`.
func (r *postRepository) Search(ctx context.Context, query string) ([]*models.Post, error) {
	var posts []*models.Post
	var err error

	switch r.search.Strategy {
	case config.SearchStrategyFulltext:
		err = r.published(r.db.WithContext(ctx)).
			Select("posts.*, ts_rank("+searchVector+", plainto_tsquery('english', ?)) AS similarity", query).
			Where(searchVector+" @@ plainto_tsquery('english', ?)", query).
			Where("ts_rank("+searchVector+", plainto_tsquery('english', ?)) >= ?", query, r.search.MinRank).
			Order("similarity DESC").
			Find(&posts).Error
	default:
		err = r.published(r.db.WithContext(ctx)).
			Select("posts.*, similarity(posts.title, ?) AS similarity", query).
			Where("similarity(posts.title, ?) > ?", query, r.search.SimilarityThreshold).
			Order("similarity DESC").
			Find(&posts).Error
	}

	if err != nil {
		return nil, err
	}
	return posts, nil
}
