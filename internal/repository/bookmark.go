package repository

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/personalvault/synapse-api/internal/model"
)

// BookmarkRepository defines the interface for bookmark-related database
// operations. Update and Delete filter by both the bookmark identifier and
// the owning user identifier, so a bookmark belonging to another user behaves
// exactly like a missing one.
type BookmarkRepository interface {
	ListByUser(ctx context.Context, userID string) ([]*model.Bookmark, error)
	CreateBookmark(ctx context.Context, bookmark *model.Bookmark) (*model.Bookmark, error)
	UpdateBookmark(ctx context.Context, userID, id string, params UpdateBookmarkParams) (*model.Bookmark, error)
	DeleteBookmark(ctx context.Context, userID, id string) (*model.Bookmark, error)
}

// UpdateBookmarkParams defines the optional parameters for updating a
// bookmark. Only the fields that are not nil will be updated; the URL and the
// owner are immutable.
type UpdateBookmarkParams struct {
	Title       *string
	Description *string
	ImageURL    *string
	ContentType *model.ContentType
}

const bookmarkCollection = "bookmarks"

type bookmarkMongoRepository struct {
	db *mongo.Database
}

// NewBookmarkMongoRepository creates the bookmarks collection accessor and
// its owner/recency index.
func NewBookmarkMongoRepository(ctx context.Context, logger *zerolog.Logger, db *mongo.Database) BookmarkRepository {
	collection := db.Collection(bookmarkCollection)

	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}},
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create bookmark indexes")
	}

	return &bookmarkMongoRepository{db: db}
}

func (r *bookmarkMongoRepository) ListByUser(ctx context.Context, userID string) ([]*model.Bookmark, error) {
	ownerID, err := bson.ObjectIDFromHex(userID)
	if err != nil {
		return nil, err
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.db.Collection(bookmarkCollection).Find(ctx, bson.M{"user_id": ownerID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bookmarks []*model.Bookmark
	for cursor.Next(ctx) {
		var bookmark model.Bookmark
		if err := cursor.Decode(&bookmark); err != nil {
			return nil, err
		}
		bookmarks = append(bookmarks, &bookmark)
	}

	if err := cursor.Err(); err != nil {
		return nil, err
	}

	return bookmarks, nil
}

func (r *bookmarkMongoRepository) CreateBookmark(
	ctx context.Context,
	bookmark *model.Bookmark,
) (*model.Bookmark, error) {
	now := time.Now()
	bookmark.CreatedAt = now
	bookmark.UpdatedAt = now

	result, err := r.db.Collection(bookmarkCollection).InsertOne(ctx, bookmark)
	if err != nil {
		return nil, err
	}

	if objectID, ok := result.InsertedID.(bson.ObjectID); ok {
		bookmark.ID = objectID
	} else {
		return nil, errors.New("failed to convert inserted ID to ObjectID")
	}

	return bookmark, nil
}

func (r *bookmarkMongoRepository) UpdateBookmark(
	ctx context.Context,
	userID, id string,
	params UpdateBookmarkParams,
) (*model.Bookmark, error) {
	filter, err := ownershipFilter(userID, id)
	if err != nil {
		return nil, err
	}

	// Build update query
	updateMap := bson.M{}
	if params.Title != nil {
		updateMap["title"] = *params.Title
	}
	if params.Description != nil {
		updateMap["description"] = *params.Description
	}
	if params.ImageURL != nil {
		updateMap["image_url"] = *params.ImageURL
	}
	if params.ContentType != nil {
		updateMap["content_type"] = *params.ContentType
	}

	// An empty body still refreshes updated_at, and still runs the
	// ownership-filtered match below.
	updateMap["updated_at"] = time.Now()

	result := r.db.Collection(bookmarkCollection).FindOneAndUpdate(
		ctx,
		filter,
		bson.M{"$set": updateMap},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	if result.Err() != nil {
		return nil, result.Err()
	}

	var bookmark model.Bookmark
	if err := result.Decode(&bookmark); err != nil {
		return nil, err
	}

	return &bookmark, nil
}

func (r *bookmarkMongoRepository) DeleteBookmark(
	ctx context.Context,
	userID, id string,
) (*model.Bookmark, error) {
	filter, err := ownershipFilter(userID, id)
	if err != nil {
		return nil, err
	}

	result := r.db.Collection(bookmarkCollection).FindOneAndDelete(ctx, filter)
	if result.Err() != nil {
		return nil, result.Err()
	}

	var bookmark model.Bookmark
	if err := result.Decode(&bookmark); err != nil {
		return nil, err
	}

	return &bookmark, nil
}

func ownershipFilter(userID, id string) (bson.M, error) {
	ownerID, err := bson.ObjectIDFromHex(userID)
	if err != nil {
		return nil, err
	}

	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		// A malformed identifier cannot match any document.
		return nil, mongo.ErrNoDocuments
	}

	return bson.M{"_id": objectID, "user_id": ownerID}, nil
}
