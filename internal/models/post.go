// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// PostStatus is the publication state of a post.
type PostStatus string

const (
	// PostStatusDraft marks a post that is not visible on any end-user query.
	PostStatusDraft PostStatus = "draft"
	// PostStatusPublished marks a post visible to readers.
	PostStatusPublished PostStatus = "published"
)

// Post represents a blog post.
type Post struct {
	ID      uint       `gorm:"primaryKey" json:"id"`
	Title   string     `gorm:"not null" json:"title"`
	Slug    string     `gorm:"not null;index:idx_posts_publish_slug" json:"slug"`
	Body    string     `gorm:"type:text;not null" json:"body"`
	Author  string     `gorm:"not null" json:"author"`
	Publish time.Time  `gorm:"not null;index:idx_posts_publish_slug" json:"publish"`
	Status  PostStatus `gorm:"type:varchar(16);not null;default:draft;index" json:"status"`
	Tags    []Tag      `gorm:"many2many:post_tags" json:"tags,omitempty"`
	// SameTags is not persisted; computed by the similar-posts query as the
	// count of matching tag associations
	SameTags int `gorm:"->" json:"same_tags,omitempty"`
	// Similarity is not persisted; computed by the search query (trigram
	// similarity or full-text rank depending on strategy)
	Similarity float64   `gorm:"->" json:"similarity,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// DetailPath returns the canonical request path for the post's detail view,
// derived from its publish date and slug.
func (p *Post) DetailPath() string {
	return p.Publish.UTC().Format("/api/posts/2006/01/02/") + p.Slug
}
