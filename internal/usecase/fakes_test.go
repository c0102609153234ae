package usecase

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/personalvault/synapse-api/internal/model"
	"github.com/personalvault/synapse-api/internal/repository"
)

// fakeUserRepo is an in-memory UserRepository that mimics the driver's error
// surface: ErrNoDocuments on misses and a duplicate-key WriteException on
// unique index violations.
type fakeUserRepo struct {
	users []*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{}
}

func (r *fakeUserRepo) CreateUser(_ context.Context, user *model.User) (*model.User, error) {
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return nil, mongo.WriteException{
				WriteErrors: []mongo.WriteError{{Code: 11000, Message: "duplicate key error"}},
			}
		}
	}

	now := time.Now()
	user.ID = bson.NewObjectID()
	user.CreatedAt = now
	user.UpdatedAt = now
	r.users = append(r.users, user)

	return user, nil
}

func (r *fakeUserRepo) GetUser(_ context.Context, id string) (*model.User, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	for _, user := range r.users {
		if user.ID == objectID {
			return user, nil
		}
	}

	return nil, mongo.ErrNoDocuments
}

func (r *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}

	return nil, mongo.ErrNoDocuments
}

func (r *fakeUserRepo) delete(id string) {
	for i, user := range r.users {
		if user.ID.Hex() == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return
		}
	}
}

// fakeBookmarkRepo is an in-memory BookmarkRepository. Listing returns
// newest-first like the real repository; update and delete apply the same
// ownership filter.
type fakeBookmarkRepo struct {
	bookmarks []*model.Bookmark
}

func newFakeBookmarkRepo() *fakeBookmarkRepo {
	return &fakeBookmarkRepo{}
}

func (r *fakeBookmarkRepo) ListByUser(_ context.Context, userID string) ([]*model.Bookmark, error) {
	ownerID, err := bson.ObjectIDFromHex(userID)
	if err != nil {
		return nil, err
	}

	var owned []*model.Bookmark
	for i := len(r.bookmarks) - 1; i >= 0; i-- {
		if r.bookmarks[i].UserID == ownerID {
			owned = append(owned, r.bookmarks[i])
		}
	}

	return owned, nil
}

func (r *fakeBookmarkRepo) CreateBookmark(_ context.Context, bookmark *model.Bookmark) (*model.Bookmark, error) {
	now := time.Now()
	bookmark.ID = bson.NewObjectID()
	bookmark.CreatedAt = now
	bookmark.UpdatedAt = now
	r.bookmarks = append(r.bookmarks, bookmark)

	return bookmark, nil
}

func (r *fakeBookmarkRepo) UpdateBookmark(
	_ context.Context,
	userID, id string,
	params repository.UpdateBookmarkParams,
) (*model.Bookmark, error) {
	bookmark, err := r.find(userID, id)
	if err != nil {
		return nil, err
	}

	if params.Title != nil {
		bookmark.Title = *params.Title
	}
	if params.Description != nil {
		bookmark.Description = *params.Description
	}
	if params.ImageURL != nil {
		bookmark.ImageURL = *params.ImageURL
	}
	if params.ContentType != nil {
		bookmark.ContentType = *params.ContentType
	}
	bookmark.UpdatedAt = time.Now()

	return bookmark, nil
}

func (r *fakeBookmarkRepo) DeleteBookmark(_ context.Context, userID, id string) (*model.Bookmark, error) {
	bookmark, err := r.find(userID, id)
	if err != nil {
		return nil, err
	}

	for i, b := range r.bookmarks {
		if b == bookmark {
			r.bookmarks = append(r.bookmarks[:i], r.bookmarks[i+1:]...)
			break
		}
	}

	return bookmark, nil
}

func (r *fakeBookmarkRepo) find(userID, id string) (*model.Bookmark, error) {
	ownerID, err := bson.ObjectIDFromHex(userID)
	if err != nil {
		return nil, err
	}

	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	for _, bookmark := range r.bookmarks {
		if bookmark.ID == objectID && bookmark.UserID == ownerID {
			return bookmark, nil
		}
	}

	return nil, mongo.ErrNoDocuments
}

// fakeLLM records every prompt and plays back a canned response.
type fakeLLM struct {
	response string
	err      error
	prompts  []string
}

func (f *fakeLLM) Complete(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}

	return f.response, nil
}
