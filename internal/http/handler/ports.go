package handler

import (
	"context"
	"io"
	"net/http"
	"recipebox/internal/core"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name RecipeService . RecipeService
type RecipeService interface {
	Register(ctx context.Context, creds core.Credentials) (core.AuthResult, error)
	Login(ctx context.Context, creds core.Credentials) (core.AuthResult, error)
	Me(ctx context.Context, token string) (core.UserRecord, error)
	ListRecipes(ctx context.Context) ([]core.RecipeRecord, error)
	ListMyRecipes(ctx context.Context, token string) ([]core.RecipeRecord, error)
	CreateRecipe(ctx context.Context, token string, input core.RecipeInput) (core.RecipeRecord, error)
	UpdateRecipe(ctx context.Context, token string, recipeID uint, input core.RecipeInput) (core.RecipeRecord, error)
	DeleteRecipe(ctx context.Context, token string, recipeID uint) error
	OpenImage(ctx context.Context, name string) (io.ReadCloser, error)
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}
