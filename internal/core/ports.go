package core

import (
	"context"
	"io"
	"recipebox/internal/repository"
	tokenIssuer "recipebox/pkg/jwt"

	"github.com/golang-jwt/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	CreateUser(ctx context.Context, username, passwordHash string) (repository.User, error)
	GetUserByUsername(ctx context.Context, username string) (repository.User, error)
	GetUserByID(ctx context.Context, id uint) (repository.User, error)
	CreateRecipe(ctx context.Context, recipe repository.Recipe) (repository.Recipe, error)
	ListRecipes(ctx context.Context) ([]repository.RecipeRow, error)
	ListRecipesByOwner(ctx context.Context, ownerID uint) ([]repository.RecipeRow, error)
	GetRecipeByOwner(ctx context.Context, id, ownerID uint) (repository.Recipe, error)
	UpdateRecipeByOwner(ctx context.Context, id, ownerID uint, values map[string]any) error
	DeleteRecipeByOwner(ctx context.Context, id, ownerID uint) error
}

//counterfeiter:generate -o fake -fake-name JWTIssuer . JWTIssuer
type JWTIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
	Validate(token string) (jwt.MapClaims, error)
}

//counterfeiter:generate -o fake -fake-name AssetStore . AssetStore
type AssetStore interface {
	Store(ctx context.Context, content io.Reader, originalName string) (string, error)
	Delete(ctx context.Context, name string)
	Retrieve(ctx context.Context, name string) (io.ReadCloser, error)
}
