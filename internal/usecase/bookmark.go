package usecase

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/personalvault/synapse-api/internal/model"
	"github.com/personalvault/synapse-api/internal/repository"
)

// BookmarkUsecase defines the interface for bookmark-related use cases. Every
// operation is scoped to the calling user.
type BookmarkUsecase interface {
	List(ctx context.Context, userID string) ([]*model.Bookmark, error)
	Create(ctx context.Context, userID string, params CreateBookmarkParams) (*model.Bookmark, error)
	Update(ctx context.Context, userID, bookmarkID string, params UpdateBookmarkParams) error
	Delete(ctx context.Context, userID, bookmarkID string) error
}

// CreateBookmarkParams defines the parameters for creating a bookmark.
type CreateBookmarkParams struct {
	URL         string
	Title       string
	Description string
	ImageURL    string
	ContentType string
}

// UpdateBookmarkParams defines the optional parameters for a partial update.
// Only the fields that are not nil will be updated.
type UpdateBookmarkParams struct {
	Title       *string
	Description *string
	ImageURL    *string
	ContentType *string
}

var (
	ErrMissingFields    = errors.New("missing required fields")
	ErrBookmarkNotFound = errors.New("bookmark not found")
)

type bookmarkUsecase struct {
	bookmarkRepo repository.BookmarkRepository
}

func NewBookmarkUsecase(bookmarkRepo repository.BookmarkRepository) BookmarkUsecase {
	return &bookmarkUsecase{bookmarkRepo: bookmarkRepo}
}

func (u *bookmarkUsecase) List(ctx context.Context, userID string) ([]*model.Bookmark, error) {
	bookmarks, err := u.bookmarkRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if bookmarks == nil {
		bookmarks = []*model.Bookmark{}
	}

	return bookmarks, nil
}

func (u *bookmarkUsecase) Create(
	ctx context.Context,
	userID string,
	params CreateBookmarkParams,
) (*model.Bookmark, error) {
	if params.URL == "" || params.Title == "" {
		return nil, ErrMissingFields
	}

	ownerID, err := bson.ObjectIDFromHex(userID)
	if err != nil {
		return nil, err
	}

	bookmark := &model.Bookmark{
		UserID:      ownerID,
		URL:         params.URL,
		Title:       params.Title,
		Description: params.Description,
		ImageURL:    params.ImageURL,
		ContentType: model.NormalizeContentType(params.ContentType),
	}

	return u.bookmarkRepo.CreateBookmark(ctx, bookmark)
}

func (u *bookmarkUsecase) Update(
	ctx context.Context,
	userID, bookmarkID string,
	params UpdateBookmarkParams,
) error {
	repoParams := repository.UpdateBookmarkParams{
		Title:       params.Title,
		Description: params.Description,
		ImageURL:    params.ImageURL,
	}

	if params.ContentType != nil {
		contentType := model.NormalizeContentType(*params.ContentType)
		repoParams.ContentType = &contentType
	}

	if _, err := u.bookmarkRepo.UpdateBookmark(ctx, userID, bookmarkID, repoParams); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrBookmarkNotFound
		}

		return err
	}

	return nil
}

func (u *bookmarkUsecase) Delete(ctx context.Context, userID, bookmarkID string) error {
	if _, err := u.bookmarkRepo.DeleteBookmark(ctx, userID, bookmarkID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrBookmarkNotFound
		}

		return err
	}

	return nil
}
