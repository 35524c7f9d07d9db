package core

import (
	"io"
	"time"
)

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResult is what a successful register or login hands back: the user's
// identity plus a freshly signed token.
type AuthResult struct {
	UserID   uint
	Username string
	Token    string
}

type UserRecord struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

// ImageUpload carries an uploaded image still attached to the request body.
type ImageUpload struct {
	Content  io.Reader
	Filename string
}

// RecipeInput is the mutable part of a recipe as submitted by a client.
// On update, empty fields mean "keep the current value" and a nil Image
// keeps the current asset.
type RecipeInput struct {
	Title       string
	Description string
	Category    string
	Ingredients string
	Image       *ImageUpload
}

type RecipeRecord struct {
	ID          uint      `json:"id"`
	UserID      uint      `json:"user_id"`
	Username    string    `json:"username,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Ingredients string    `json:"ingredients"`
	Image       *string   `json:"image"`
	CreatedAt   time.Time `json:"created_at"`
}
