package payload

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"recipebox/internal/core"

	"github.com/jellydator/validation"
)

const maxUploadMemory = 32 << 20 // 32 MiB before multipart spills to disk

// RecipeForm is the multipart form a client submits when creating or
// updating a recipe. File is nil when no image part was sent.
type RecipeForm struct {
	Title       string
	Description string
	Category    string
	Ingredients string

	File     multipart.File
	Filename string
}

// Validate enforces the fields required on create. Updates skip this:
// there, empty fields mean "keep the current value".
func (f RecipeForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Title, validation.Required),
		validation.Field(&f.Description, validation.Required),
		validation.Field(&f.Category, validation.Required),
	)
}

func (f RecipeForm) ToInput() core.RecipeInput {
	input := core.RecipeInput{
		Title:       f.Title,
		Description: f.Description,
		Category:    f.Category,
		Ingredients: f.Ingredients,
	}
	if f.File != nil {
		input.Image = &core.ImageUpload{
			Content:  f.File,
			Filename: f.Filename,
		}
	}
	return input
}

func (f RecipeForm) Close() {
	if f.File != nil {
		f.File.Close()
	}
}

// ParseRecipeForm decodes the multipart body into a RecipeForm. A missing
// image part is not an error.
func ParseRecipeForm(r *http.Request) (RecipeForm, error) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		return RecipeForm{}, fmt.Errorf("parse multipart form: %w", err)
	}

	form := RecipeForm{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Category:    r.FormValue("category"),
		Ingredients: r.FormValue("ingredients"),
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return form, nil
		}
		return RecipeForm{}, fmt.Errorf("read image part: %w", err)
	}

	form.File = file
	form.Filename = header.Filename
	return form, nil
}
