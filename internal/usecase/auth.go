package usecase

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/personalvault/synapse-api/internal/auth"
	"github.com/personalvault/synapse-api/internal/model"
	"github.com/personalvault/synapse-api/internal/repository"
	"github.com/personalvault/synapse-api/internal/security"
)

// AuthUsecase defines the interface for authentication-related use cases.
type AuthUsecase interface {
	Register(ctx context.Context, params RegisterParams) (*AuthResult, error)
	Login(ctx context.Context, params LoginParams) (*AuthResult, error)

	// Authenticate resolves a bearer token to a user identifier. It verifies
	// the signature and expiry, then re-fetches the user record so tokens for
	// deleted accounts are rejected.
	Authenticate(ctx context.Context, token string) (string, error)
}

// RegisterParams defines the parameters for user registration.
type RegisterParams struct {
	Email    string
	Password string
}

// LoginParams defines the parameters for user login.
type LoginParams struct {
	Email    string
	Password string
}

// UserIdentity is the minimal identity projection returned to clients.
type UserIdentity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// AuthResult carries a session token plus the identity it was issued for.
type AuthResult struct {
	Token string
	User  UserIdentity
}

var (
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

type authUsecase struct {
	userRepo repository.UserRepository
	tokens   auth.TokenIssuer
}

func NewAuthUsecase(userRepo repository.UserRepository, tokens auth.TokenIssuer) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

func (u *authUsecase) Register(ctx context.Context, params RegisterParams) (*AuthResult, error) {
	// Hashing completes before the insert is issued; a hashing failure leaves
	// no partial record behind.
	passwordHash, err := security.HashPassword(params.Password)
	if err != nil {
		return nil, err
	}

	user, err := u.userRepo.CreateUser(ctx, &model.User{
		Email:        params.Email,
		PasswordHash: passwordHash,
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrUserAlreadyExists
		}

		return nil, err
	}

	return u.issueFor(user)
}

func (u *authUsecase) Login(ctx context.Context, params LoginParams) (*AuthResult, error) {
	user, err := u.userRepo.GetUserByEmail(ctx, params.Email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			// Same error as a wrong password, so responses do not reveal
			// which emails are registered.
			return nil, ErrInvalidCredentials
		}

		return nil, err
	}

	if ok, err := security.VerifyPassword(params.Password, user.PasswordHash); err != nil {
		return nil, err
	} else if !ok {
		return nil, ErrInvalidCredentials
	}

	return u.issueFor(user)
}

func (u *authUsecase) Authenticate(ctx context.Context, token string) (string, error) {
	claims, err := u.tokens.Verify(token)
	if err != nil {
		return "", ErrInvalidToken
	}

	user, err := u.userRepo.GetUser(ctx, claims.UserID)
	if err != nil {
		return "", ErrInvalidToken
	}

	return user.ID.Hex(), nil
}

func (u *authUsecase) issueFor(user *model.User) (*AuthResult, error) {
	token, err := u.tokens.Issue(user.ID.Hex(), user.Email)
	if err != nil {
		return nil, err
	}

	return &AuthResult{
		Token: token,
		User: UserIdentity{
			ID:    user.ID.Hex(),
			Email: user.Email,
		},
	}, nil
}
