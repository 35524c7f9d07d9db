package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"recipebox/internal/core"
	"recipebox/internal/http/handler/middleware"
	"recipebox/internal/http/payload"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

var (
	Register     = "POST /register"
	Login        = "POST /login"
	Me           = "GET /me"
	GetRecipes   = "GET /recipes"
	GetMyRecipes = "GET /myrecipes"
	CreateRecipe = "POST /recipes"
	UpdateRecipe = "PUT /recipes/{id}"
	DeleteRecipe = "DELETE /recipes/{id}"
	GetUpload    = "GET /uploads/{filename}"
)

type RecipeHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	recipes          RecipeService
}

func NewRecipeHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, recipeService RecipeService) *RecipeHandler {
	return &RecipeHandler{
		logs:             logger,
		requestValidator: requestValidator,
		recipes:          recipeService,
	}
}

func (h *RecipeHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.RegisterRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.respondError(w, fmt.Errorf("invalid request payload: %w", err).Error(), http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Register,
			"request_id", requestId)
		return
	}

	result, err := h.recipes.Register(r.Context(), req.ToCredentials())
	if err != nil {
		httpCode := http.StatusInternalServerError
		msg := oopsErr
		if errors.Is(err, core.ErrUsernameTaken) || errors.Is(err, core.ErrMissingFields) {
			httpCode = http.StatusBadRequest
			msg = err.Error()
		}
		h.respondError(w, msg, httpCode, requestId)
		h.logs.Errorw("registration failed",
			"error", err,
			"handler", Register,
			"request_id", requestId)
		return
	}

	h.respond(w, AuthResponse{
		ID:       result.UserID,
		Username: result.Username,
		Token:    result.Token,
	}, http.StatusCreated, requestId)
}

func (h *RecipeHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.LoginRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.respondError(w, fmt.Errorf("invalid request payload: %w", err).Error(), http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Login,
			"request_id", requestId)
		return
	}

	result, err := h.recipes.Login(r.Context(), req.ToCredentials())
	if err != nil {
		httpCode := http.StatusInternalServerError
		msg := oopsErr
		// wrong username and wrong password are indistinguishable to the caller
		if errors.Is(err, core.ErrUserNotFound) || errors.Is(err, core.ErrIncorrectPassword) {
			httpCode = http.StatusUnauthorized
			msg = "invalid username or password"
		}
		h.respondError(w, msg, httpCode, requestId)
		h.logs.Errorw("login failed",
			"error", err,
			"handler", Login,
			"request_id", requestId)
		return
	}

	h.respond(w, AuthResponse{
		ID:       result.UserID,
		Username: result.Username,
		Token:    result.Token,
	}, http.StatusOK, requestId)
}

func (h *RecipeHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	token, ok := bearerToken(r)
	if !ok {
		h.respondError(w, "authorization header missing or malformed", http.StatusUnauthorized, requestId)
		return
	}

	user, err := h.recipes.Me(r.Context(), token)
	if err != nil {
		httpCode := http.StatusInternalServerError
		msg := oopsErr
		switch {
		case errors.Is(err, core.ErrInvalidToken):
			httpCode = http.StatusUnauthorized
			msg = err.Error()
		case errors.Is(err, core.ErrUserNotFound):
			httpCode = http.StatusNotFound
			msg = err.Error()
		}
		h.respondError(w, msg, httpCode, requestId)
		h.logs.Errorw("failed to resolve current user",
			"error", err,
			"handler", Me,
			"request_id", requestId)
		return
	}

	h.respond(w, user, http.StatusOK, requestId)
}

func (h *RecipeHandler) HandleGetRecipes(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	recipes, err := h.recipes.ListRecipes(r.Context())
	if err != nil {
		h.respondError(w, oopsErr, http.StatusInternalServerError, requestId)
		h.logs.Errorw("failed to list recipes",
			"error", err,
			"handler", GetRecipes,
			"request_id", requestId)
		return
	}

	h.respond(w, recipes, http.StatusOK, requestId)
}

func (h *RecipeHandler) HandleGetMyRecipes(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	token, ok := bearerToken(r)
	if !ok {
		h.respondError(w, "authorization header missing or malformed", http.StatusUnauthorized, requestId)
		return
	}

	recipes, err := h.recipes.ListMyRecipes(r.Context(), token)
	if err != nil {
		httpCode := http.StatusInternalServerError
		msg := oopsErr
		if errors.Is(err, core.ErrInvalidToken) {
			httpCode = http.StatusUnauthorized
			msg = err.Error()
		}
		h.respondError(w, msg, httpCode, requestId)
		h.logs.Errorw("failed to list own recipes",
			"error", err,
			"handler", GetMyRecipes,
			"request_id", requestId)
		return
	}

	h.respond(w, recipes, http.StatusOK, requestId)
}

func (h *RecipeHandler) HandleCreateRecipe(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	token, ok := bearerToken(r)
	if !ok {
		h.respondError(w, "authorization header missing or malformed", http.StatusUnauthorized, requestId)
		return
	}

	form, err := payload.ParseRecipeForm(r)
	if err != nil {
		h.respondError(w, fmt.Errorf("invalid form payload: %w", err).Error(), http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to parse recipe form",
			"error", err,
			"handler", CreateRecipe,
			"request_id", requestId)
		return
	}
	defer form.Close()

	if err := form.Validate(); err != nil {
		h.respondError(w, fmt.Errorf("validating payload: %w", err).Error(), http.StatusBadRequest, requestId)
		h.logs.Errorw("recipe form validation failed",
			"error", err,
			"handler", CreateRecipe,
			"request_id", requestId)
		return
	}

	recipe, err := h.recipes.CreateRecipe(r.Context(), token, form.ToInput())
	if err != nil {
		h.respondRecipeError(w, err, CreateRecipe, requestId)
		return
	}

	h.respond(w, recipe, http.StatusCreated, requestId)
}

func (h *RecipeHandler) HandleUpdateRecipe(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	token, ok := bearerToken(r)
	if !ok {
		h.respondError(w, "authorization header missing or malformed", http.StatusUnauthorized, requestId)
		return
	}

	recipeID, ok := recipeIDFromPath(r)
	if !ok {
		h.respondError(w, "recipe not found or unauthorized", http.StatusNotFound, requestId)
		return
	}

	form, err := payload.ParseRecipeForm(r)
	if err != nil {
		h.respondError(w, fmt.Errorf("invalid form payload: %w", err).Error(), http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to parse recipe form",
			"error", err,
			"handler", UpdateRecipe,
			"request_id", requestId)
		return
	}
	defer form.Close()

	recipe, err := h.recipes.UpdateRecipe(r.Context(), token, recipeID, form.ToInput())
	if err != nil {
		h.respondRecipeError(w, err, UpdateRecipe, requestId)
		return
	}

	h.respond(w, recipe, http.StatusOK, requestId)
}

func (h *RecipeHandler) HandleDeleteRecipe(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	token, ok := bearerToken(r)
	if !ok {
		h.respondError(w, "authorization header missing or malformed", http.StatusUnauthorized, requestId)
		return
	}

	recipeID, ok := recipeIDFromPath(r)
	if !ok {
		h.respondError(w, "recipe not found or unauthorized", http.StatusNotFound, requestId)
		return
	}

	if err := h.recipes.DeleteRecipe(r.Context(), token, recipeID); err != nil {
		h.respondRecipeError(w, err, DeleteRecipe, requestId)
		return
	}

	h.respond(w, DeleteResponse{
		Success: true,
		ID:      recipeID,
	}, http.StatusOK, requestId)
}

func (h *RecipeHandler) HandleGetUpload(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	filename := r.PathValue("filename")

	content, err := h.recipes.OpenImage(r.Context(), filename)
	if err != nil {
		httpCode := http.StatusInternalServerError
		msg := oopsErr
		if errors.Is(err, core.ErrAssetNotFound) {
			httpCode = http.StatusNotFound
			msg = err.Error()
		}
		h.respondError(w, msg, httpCode, requestId)
		h.logs.Errorw("failed to serve upload",
			"error", err,
			"handler", GetUpload,
			"request_id", requestId)
		return
	}
	defer content.Close()

	contentType := mime.TypeByExtension(filepath.Ext(filename))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)

	if _, err := io.Copy(w, content); err != nil {
		h.logs.Errorw("failed to stream upload",
			"error", err,
			"handler", GetUpload,
			"request_id", requestId)
	}
}

// respondRecipeError maps core errors from the mutating recipe paths to
// status codes. Ownership failures and missing rows share the same 404.
func (h *RecipeHandler) respondRecipeError(w http.ResponseWriter, err error, handlerName, requestId string) {
	httpCode := http.StatusInternalServerError
	msg := oopsErr
	switch {
	case errors.Is(err, core.ErrInvalidToken):
		httpCode = http.StatusUnauthorized
		msg = err.Error()
	case errors.Is(err, core.ErrMissingFields):
		httpCode = http.StatusBadRequest
		msg = "title, description and category are required"
	case errors.Is(err, core.ErrRecipeNotFound):
		httpCode = http.StatusNotFound
		msg = err.Error()
	}

	h.respondError(w, msg, httpCode, requestId)
	h.logs.Errorw("recipe request failed",
		"error", err,
		"handler", handlerName,
		"request_id", requestId)
}

func (h *RecipeHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}

func (h *RecipeHandler) respondError(w http.ResponseWriter, msg string, code int, requestId string) {
	h.respond(w, ErrorResponse{Error: msg}, code, requestId)
}

func requestID(r *http.Request) string {
	if v := r.Context().Value(middleware.RequestIDKey); v != nil {
		return v.(string)
	}
	return ""
}

func bearerToken(r *http.Request) (string, bool) {
	auth := r.Header.Get("Authorization")
	token, found := strings.CutPrefix(auth, "Bearer ")
	token = strings.TrimSpace(token)
	if !found || token == "" {
		return "", false
	}
	return token, true
}

func recipeIDFromPath(r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
