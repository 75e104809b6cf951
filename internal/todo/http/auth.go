package http

import (
	"net/http"

	"github.com/aussiebroadwan/todo/internal/todo/service"
	"github.com/aussiebroadwan/todo/pkg/httpx"
	"github.com/aussiebroadwan/todo/pkg/todosdk"
)

type AuthHandler struct {
	AuthService *service.AuthService
}

// HandleSignup godoc
//
//	@Summary		Sign Up
//	@Description	Create an account and receive a token
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		todosdk.SignupRequest	true	"name, email, password"
//	@Success		201		{object}	todosdk.AuthResponse	"user, token, message"
//	@Failure		400		{object}	todosdk.APIError		"code, message"
//	@Failure		409		{object}	todosdk.APIError		"code, message"
//	@Failure		500		{object}	todosdk.APIError		"code, message"
//	@Router			/auth/signup [post].
func (h *AuthHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	var req accountBody
	if !decodeBody(w, r, &req, false) {
		return
	}
	if !requireFields(w, field("name", req.Name), field("email", req.Email), field("password", req.Password)) {
		return
	}

	user, token, err := h.AuthService.Signup(r.Context(), *req.Name, *req.Email, *req.Password)
	if err != nil {
		writeError(w, r, err, "Failed to create user")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, todosdk.AuthResponse{
		User:    toUser(user),
		Token:   token,
		Message: "User created successfully",
	})
}

// HandleLogin godoc
//
//	@Summary		Log In
//	@Description	Check email and password and receive a token
//	@Description	Unknown emails and wrong passwords get the same response
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		todosdk.LoginRequest	true	"email, password"
//	@Success		200		{object}	todosdk.AuthResponse	"user, token, message"
//	@Failure		400		{object}	todosdk.APIError		"code, message"
//	@Failure		401		{object}	todosdk.APIError		"code, message"
//	@Failure		429		{object}	todosdk.APIError		"code, message"
//	@Router			/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginBody
	if !decodeBody(w, r, &req, false) {
		return
	}
	if !requireFields(w, field("email", req.Email), field("password", req.Password)) {
		return
	}

	user, token, err := h.AuthService.Login(r.Context(), *req.Email, *req.Password)
	if err != nil {
		writeError(w, r, err, "Failed to log in")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, todosdk.AuthResponse{
		User:    toUser(user),
		Token:   token,
		Message: "Login successful",
	})
}

// HandleSignout godoc
//
//	@Summary		Sign Out
//	@Description	Acknowledge the end of a session. Nothing is invalidated server side
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		todosdk.SignoutRequest	false	"token"
//	@Success		200		{object}	todosdk.MessageResponse	"message"
//	@Failure		400		{object}	todosdk.APIError		"code, message"
//	@Router			/auth/signout [post].
func (h *AuthHandler) HandleSignout(w http.ResponseWriter, r *http.Request) {
	var req todosdk.SignoutRequest
	if !decodeBody(w, r, &req, true) {
		return
	}

	h.AuthService.Signout(r.Context(), req.Token)
	httpx.WriteJSON(w, http.StatusOK, todosdk.MessageResponse{Message: "Signout successful"})
}
