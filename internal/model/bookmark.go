package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// ContentType classifies what a bookmark points at.
type ContentType string

const (
	ContentTypeArticle     ContentType = "article"
	ContentTypeProduct     ContentType = "product"
	ContentTypeVideo       ContentType = "video"
	ContentTypeTodo        ContentType = "todo"
	ContentTypeResearch    ContentType = "research"
	ContentTypeInspiration ContentType = "inspiration"
)

// Valid reports whether t is one of the known content types.
func (t ContentType) Valid() bool {
	switch t {
	case ContentTypeArticle, ContentTypeProduct, ContentTypeVideo,
		ContentTypeTodo, ContentTypeResearch, ContentTypeInspiration:
		return true
	}

	return false
}

// NormalizeContentType maps an empty or unrecognized value to the article default.
func NormalizeContentType(s string) ContentType {
	t := ContentType(s)
	if !t.Valid() {
		return ContentTypeArticle
	}

	return t
}

// Bookmark is a saved URL owned by a single user. The JSON tags define the
// wire shape returned by the bookmarks endpoints.
type Bookmark struct {
	ID          bson.ObjectID `bson:"_id,omitempty"         json:"id"`
	UserID      bson.ObjectID `bson:"user_id"               json:"-"`
	URL         string        `bson:"url"                   json:"url"`
	Title       string        `bson:"title"                 json:"title"`
	Description string        `bson:"description,omitempty" json:"description,omitempty"`
	ImageURL    string        `bson:"image_url,omitempty"   json:"imageUrl,omitempty"`
	ContentType ContentType   `bson:"content_type"          json:"contentType"`
	CreatedAt   time.Time     `bson:"created_at"            json:"createdAt"`
	UpdatedAt   time.Time     `bson:"updated_at"            json:"updatedAt"`
}
