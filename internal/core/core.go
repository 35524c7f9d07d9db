package core

import (
	"context"
	"errors"
	"fmt"
	"io"
	"recipebox/internal/assets"
	"recipebox/internal/repository"
	tokenIssuer "recipebox/pkg/jwt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var ErrIncorrectPassword error = errors.New("incorrect password")
var ErrUserNotFound error = errors.New("user not found")
var ErrUsernameTaken error = errors.New("username already taken")
var ErrInvalidToken error = errors.New("invalid or malformed token")
var ErrMissingFields error = errors.New("required fields missing")
var ErrRecipeNotFound error = errors.New("recipe not found or unauthorized")
var ErrAssetNotFound error = errors.New("image not found")

// RecipeBox orchestrates authentication, ownership checks and the
// asset/row lifecycle coupling for recipes.
type RecipeBox struct {
	logs      *zap.SugaredLogger
	repo      Repository
	jwtIssuer JWTIssuer
	assets    AssetStore
}

func NewRecipeBox(logger *zap.SugaredLogger, repo Repository, jwt JWTIssuer, assetStore AssetStore) *RecipeBox {
	return &RecipeBox{
		logs:      logger,
		repo:      repo,
		jwtIssuer: jwt,
		assets:    assetStore,
	}
}

// Register creates a user with a bcrypt-hashed password and signs a token
// for the fresh account.
func (b *RecipeBox) Register(ctx context.Context, creds Credentials) (AuthResult, error) {
	username := strings.TrimSpace(creds.Username)
	if username == "" || creds.Password == "" {
		return AuthResult{}, ErrMissingFields
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		return AuthResult{}, fmt.Errorf("hash password: %w", err)
	}

	user, err := b.repo.CreateUser(ctx, username, string(hash))
	if err != nil {
		if errors.Is(err, repository.ErrUsernameTaken) {
			return AuthResult{}, ErrUsernameTaken
		}
		return AuthResult{}, fmt.Errorf("create user: %w", err)
	}

	token, err := b.issueToken(user.ID)
	if err != nil {
		return AuthResult{}, err
	}

	b.logs.Infow("user registered", "userId", user.ID, "username", user.Username)

	return AuthResult{
		UserID:   user.ID,
		Username: user.Username,
		Token:    token,
	}, nil
}

// Login checks the credentials against the stored bcrypt hash and signs a
// token on success.
func (b *RecipeBox) Login(ctx context.Context, creds Credentials) (AuthResult, error) {
	username := strings.TrimSpace(creds.Username)

	user, err := b.repo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return AuthResult{}, ErrUserNotFound
		}
		return AuthResult{}, fmt.Errorf("get user from db: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)); err != nil {
		return AuthResult{}, ErrIncorrectPassword
	}

	token, err := b.issueToken(user.ID)
	if err != nil {
		return AuthResult{}, err
	}

	return AuthResult{
		UserID:   user.ID,
		Username: user.Username,
		Token:    token,
	}, nil
}

// Identify resolves a bearer token to the user id it was issued for. A
// verified signature with a missing or unusable user_id claim is rejected
// the same way as a bad signature.
func (b *RecipeBox) Identify(ctx context.Context, token string) (uint, error) {
	claims, err := b.jwtIssuer.Validate(token)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	id, ok := claims["user_id"].(float64)
	if !ok || id <= 0 {
		return 0, ErrInvalidToken
	}

	return uint(id), nil
}

func (b *RecipeBox) Me(ctx context.Context, token string) (UserRecord, error) {
	userID, err := b.Identify(ctx, token)
	if err != nil {
		return UserRecord{}, err
	}

	user, err := b.repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return UserRecord{}, ErrUserNotFound
		}
		return UserRecord{}, fmt.Errorf("get user by id: %w", err)
	}

	return UserRecord{
		ID:       user.ID,
		Username: user.Username,
	}, nil
}

func (b *RecipeBox) ListRecipes(ctx context.Context) ([]RecipeRecord, error) {
	rows, err := b.repo.ListRecipes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	return rowsToRecords(rows), nil
}

func (b *RecipeBox) ListMyRecipes(ctx context.Context, token string) ([]RecipeRecord, error) {
	userID, err := b.Identify(ctx, token)
	if err != nil {
		return nil, err
	}

	rows, err := b.repo.ListRecipesByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list recipes by owner: %w", err)
	}
	return rowsToRecords(rows), nil
}

// CreateRecipe stores the image asset (if any) before the row so the row
// never points at an asset that does not exist; a failed insert rolls the
// asset back.
func (b *RecipeBox) CreateRecipe(ctx context.Context, token string, input RecipeInput) (RecipeRecord, error) {
	userID, err := b.Identify(ctx, token)
	if err != nil {
		return RecipeRecord{}, err
	}

	title := strings.TrimSpace(input.Title)
	description := strings.TrimSpace(input.Description)
	category := strings.TrimSpace(input.Category)
	if title == "" || description == "" || category == "" {
		return RecipeRecord{}, ErrMissingFields
	}

	var image *string
	if input.Image != nil {
		name, err := b.assets.Store(ctx, input.Image.Content, input.Image.Filename)
		if err != nil {
			return RecipeRecord{}, fmt.Errorf("store image: %w", err)
		}
		image = &name
	}

	recipe, err := b.repo.CreateRecipe(ctx, repository.Recipe{
		UserID:      userID,
		Title:       title,
		Description: description,
		Category:    category,
		Ingredients: strings.TrimSpace(input.Ingredients),
		Image:       image,
	})
	if err != nil {
		if image != nil {
			b.assets.Delete(ctx, *image)
		}
		return RecipeRecord{}, fmt.Errorf("create recipe: %w", err)
	}

	b.logs.Infow("recipe created", "recipeId", recipe.ID, "userId", userID)

	return recipeToRecord(recipe), nil
}

// UpdateRecipe mutates a recipe through the compound (id, user_id) path.
// Empty patch fields keep their current value. When a new image arrives it
// is written first, the row is updated next, and only then is the old
// asset removed; a failed row update deletes the new asset instead.
func (b *RecipeBox) UpdateRecipe(ctx context.Context, token string, recipeID uint, input RecipeInput) (RecipeRecord, error) {
	userID, err := b.Identify(ctx, token)
	if err != nil {
		return RecipeRecord{}, err
	}

	existing, err := b.repo.GetRecipeByOwner(ctx, recipeID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrRecipeNotFound) {
			return RecipeRecord{}, ErrRecipeNotFound
		}
		return RecipeRecord{}, fmt.Errorf("get recipe by owner: %w", err)
	}

	var newImage *string
	if input.Image != nil {
		name, err := b.assets.Store(ctx, input.Image.Content, input.Image.Filename)
		if err != nil {
			return RecipeRecord{}, fmt.Errorf("store image: %w", err)
		}
		newImage = &name
	}

	merged := existing
	values := map[string]any{}
	if title := strings.TrimSpace(input.Title); title != "" {
		values["title"] = title
		merged.Title = title
	}
	if description := strings.TrimSpace(input.Description); description != "" {
		values["description"] = description
		merged.Description = description
	}
	if category := strings.TrimSpace(input.Category); category != "" {
		values["category"] = category
		merged.Category = category
	}
	if ingredients := strings.TrimSpace(input.Ingredients); ingredients != "" {
		values["ingredients"] = ingredients
		merged.Ingredients = ingredients
	}
	if newImage != nil {
		values["image"] = *newImage
		merged.Image = newImage
	}

	if err := b.repo.UpdateRecipeByOwner(ctx, recipeID, userID, values); err != nil {
		if newImage != nil {
			b.assets.Delete(ctx, *newImage)
		}
		if errors.Is(err, repository.ErrRecipeNotFound) {
			return RecipeRecord{}, ErrRecipeNotFound
		}
		return RecipeRecord{}, fmt.Errorf("update recipe: %w", err)
	}

	if newImage != nil && existing.Image != nil {
		b.assets.Delete(ctx, *existing.Image)
	}

	b.logs.Infow("recipe updated", "recipeId", recipeID, "userId", userID)

	return recipeToRecord(merged), nil
}

// DeleteRecipe removes the row through the compound (id, user_id) path and
// then best-effort deletes the associated asset. A recipe without an image
// triggers no asset I/O.
func (b *RecipeBox) DeleteRecipe(ctx context.Context, token string, recipeID uint) error {
	userID, err := b.Identify(ctx, token)
	if err != nil {
		return err
	}

	existing, err := b.repo.GetRecipeByOwner(ctx, recipeID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrRecipeNotFound) {
			return ErrRecipeNotFound
		}
		return fmt.Errorf("get recipe by owner: %w", err)
	}

	if err := b.repo.DeleteRecipeByOwner(ctx, recipeID, userID); err != nil {
		if errors.Is(err, repository.ErrRecipeNotFound) {
			return ErrRecipeNotFound
		}
		return fmt.Errorf("delete recipe: %w", err)
	}

	if existing.Image != nil {
		b.assets.Delete(ctx, *existing.Image)
	}

	b.logs.Infow("recipe deleted", "recipeId", recipeID, "userId", userID)

	return nil
}

// OpenImage streams a stored asset for serving.
func (b *RecipeBox) OpenImage(ctx context.Context, name string) (io.ReadCloser, error) {
	content, err := b.assets.Retrieve(ctx, name)
	if err != nil {
		if errors.Is(err, assets.ErrNotFound) {
			return nil, ErrAssetNotFound
		}
		return nil, fmt.Errorf("retrieve image: %w", err)
	}
	return content, nil
}

func (b *RecipeBox) issueToken(userID uint) (string, error) {
	token := b.jwtIssuer.Generate(tokenIssuer.TokenInfo{UserID: userID})
	signed, err := b.jwtIssuer.Sign(token)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

func recipeToRecord(recipe repository.Recipe) RecipeRecord {
	return RecipeRecord{
		ID:          recipe.ID,
		UserID:      recipe.UserID,
		Title:       recipe.Title,
		Description: recipe.Description,
		Category:    recipe.Category,
		Ingredients: recipe.Ingredients,
		Image:       recipe.Image,
		CreatedAt:   recipe.CreatedAt,
	}
}

func rowsToRecords(rows []repository.RecipeRow) []RecipeRecord {
	records := make([]RecipeRecord, len(rows))
	for i, row := range rows {
		records[i] = recipeToRecord(row.Recipe)
		records[i].Username = row.Username
	}
	return records
}
