package repository

import (
	"context"
	"errors"
	"fmt"
	"recipebox/internal/db"
)

var ErrUserNotFound error = errors.New("user not found")
var ErrUsernameTaken error = errors.New("username already taken")

// ErrRecipeNotFound covers both a missing row and a row owned by someone
// else. The compound (id, user_id) query makes the two indistinguishable
// so the API never leaks whether another user's recipe id exists.
var ErrRecipeNotFound error = errors.New("recipe not found or unauthorized")

const recipeOrder = "created_at DESC"

type RecipeRepository struct {
	db Storage
}

func NewRecipeRepository(db Storage) *RecipeRepository {
	return &RecipeRepository{
		db: db,
	}
}

func (r *RecipeRepository) Migrate() error {
	err := r.db.MigrateTable(&User{}, &Recipe{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}
	return nil
}

func (r *RecipeRepository) CreateUser(ctx context.Context, username, passwordHash string) (User, error) {
	var existing User
	err := r.db.GetOneBy(ctx, "username", username, &existing)
	if err == nil {
		return User{}, ErrUsernameTaken
	}
	if !errors.Is(err, db.ErrNotFound) {
		return User{}, fmt.Errorf("check username: %w", err)
	}

	user := User{
		Username:     username,
		PasswordHash: passwordHash,
	}
	if err := r.db.Insert(ctx, &user); err != nil {
		// unique index closes the race left open by the pre-check
		if errors.Is(err, db.ErrDuplicate) {
			return User{}, ErrUsernameTaken
		}
		return User{}, fmt.Errorf("insert user: %w", err)
	}

	return user, nil
}

func (r *RecipeRepository) GetUserByUsername(ctx context.Context, username string) (User, error) {
	var user User
	err := r.db.GetOneBy(ctx, "username", username, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by username: %w", err)
	}
	return user, nil
}

func (r *RecipeRepository) GetUserByID(ctx context.Context, id uint) (User, error) {
	var user User
	err := r.db.GetOneBy(ctx, "id", id, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by id: %w", err)
	}
	return user, nil
}

func (r *RecipeRepository) CreateRecipe(ctx context.Context, recipe Recipe) (Recipe, error) {
	if err := r.db.Insert(ctx, &recipe); err != nil {
		return Recipe{}, fmt.Errorf("insert recipe: %w", err)
	}
	return recipe, nil
}

func (r *RecipeRepository) ListRecipes(ctx context.Context) ([]RecipeRow, error) {
	return r.listRecipes(ctx, nil)
}

func (r *RecipeRepository) ListRecipesByOwner(ctx context.Context, ownerID uint) ([]RecipeRow, error) {
	return r.listRecipes(ctx, map[string]any{"user_id": ownerID})
}

func (r *RecipeRepository) listRecipes(ctx context.Context, conds map[string]any) ([]RecipeRow, error) {
	recipes := []Recipe{}
	if err := r.db.GetAllWhere(ctx, conds, recipeOrder, &recipes); err != nil {
		return nil, fmt.Errorf("get recipes: %w", err)
	}

	if len(recipes) == 0 {
		return []RecipeRow{}, nil
	}

	ownerIDs := make([]uint, 0, len(recipes))
	seen := make(map[uint]struct{})
	for _, recipe := range recipes {
		if _, ok := seen[recipe.UserID]; ok {
			continue
		}
		seen[recipe.UserID] = struct{}{}
		ownerIDs = append(ownerIDs, recipe.UserID)
	}

	users := []User{}
	if err := r.db.GetAllBy(ctx, "id", ownerIDs, &users); err != nil {
		return nil, fmt.Errorf("get recipe owners: %w", err)
	}

	usernames := make(map[uint]string, len(users))
	for _, user := range users {
		usernames[user.ID] = user.Username
	}

	rows := make([]RecipeRow, len(recipes))
	for i, recipe := range recipes {
		rows[i] = RecipeRow{
			Recipe:   recipe,
			Username: usernames[recipe.UserID],
		}
	}
	return rows, nil
}

// GetRecipeByOwner fetches a recipe through the compound (id, user_id)
// lookup. This is the only way a single recipe is ever read for mutation.
func (r *RecipeRepository) GetRecipeByOwner(ctx context.Context, id, ownerID uint) (Recipe, error) {
	var recipe Recipe
	err := r.db.GetOneWhere(ctx, map[string]any{"id": id, "user_id": ownerID}, &recipe)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Recipe{}, ErrRecipeNotFound
		}
		return Recipe{}, fmt.Errorf("get recipe by owner: %w", err)
	}
	return recipe, nil
}

func (r *RecipeRepository) UpdateRecipeByOwner(ctx context.Context, id, ownerID uint, values map[string]any) error {
	if len(values) == 0 {
		return nil
	}

	affected, err := r.db.UpdateWhere(ctx, &Recipe{},
		map[string]any{"id": id, "user_id": ownerID}, values)
	if err != nil {
		return fmt.Errorf("update recipe: %w", err)
	}
	if affected == 0 {
		return ErrRecipeNotFound
	}
	return nil
}

func (r *RecipeRepository) DeleteRecipeByOwner(ctx context.Context, id, ownerID uint) error {
	affected, err := r.db.DeleteWhere(ctx, &Recipe{},
		map[string]any{"id": id, "user_id": ownerID})
	if err != nil {
		return fmt.Errorf("delete recipe: %w", err)
	}
	if affected == 0 {
		return ErrRecipeNotFound
	}
	return nil
}
