package handler

const oopsErr = "Oops! Something went wrong. Please try again later."

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// DeleteResponse confirms a recipe deletion.
type DeleteResponse struct {
	Success bool `json:"success"`
	ID      uint `json:"id"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Token    string `json:"token"`
}
