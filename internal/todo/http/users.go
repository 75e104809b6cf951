package http

import (
	"net/http"

	"github.com/aussiebroadwan/todo/internal/todo/domain"
	"github.com/aussiebroadwan/todo/internal/todo/service"
	"github.com/aussiebroadwan/todo/pkg/httpx"
	"github.com/aussiebroadwan/todo/pkg/todosdk"
)

type UsersHandler struct {
	UserService *service.UserService
}

// HandleCreate godoc
//
//	@Summary		Create User
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			body	body		todosdk.CreateUserRequest	true	"name, email, password"
//	@Success		201		{object}	todosdk.User
//	@Failure		400		{object}	todosdk.APIError	"code, message"
//	@Failure		409		{object}	todosdk.APIError	"code, message"
//	@Failure		500		{object}	todosdk.APIError	"code, message"
//	@Router			/users [post].
func (h *UsersHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req accountBody
	if !decodeBody(w, r, &req, false) {
		return
	}
	if !requireFields(w, field("name", req.Name), field("email", req.Email), field("password", req.Password)) {
		return
	}

	user, err := h.UserService.CreateUser(r.Context(), *req.Name, *req.Email, *req.Password)
	if err != nil {
		writeError(w, r, err, "Failed to create user")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toUser(user))
}

// HandleGet godoc
//
//	@Summary		Get User
//	@Tags			Users
//	@Produce		json
//	@Param			id	path		string	true	"User ID"
//	@Success		200	{object}	todosdk.User
//	@Failure		400	{object}	todosdk.APIError	"code, message"
//	@Failure		404	{object}	todosdk.APIError	"code, message"
//	@Router			/users/{id} [get].
func (h *UsersHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", msgInvalidUserID)
	if !ok {
		return
	}

	user, found, err := h.UserService.GetUserByID(r.Context(), id)
	if err != nil {
		writeError(w, r, err, "Failed to get user")
		return
	}
	if !found {
		notFound(w, "User not found")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUser(user))
}

// HandleUpdate godoc
//
//	@Summary		Update User
//	@Description	Partial update. A new password is hashed before it is stored
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"User ID"
//	@Param			body	body		todosdk.UpdateUserRequest	true	"name, email, password"
//	@Success		200		{object}	todosdk.User
//	@Failure		400		{object}	todosdk.APIError	"code, message"
//	@Failure		404		{object}	todosdk.APIError	"code, message"
//	@Failure		409		{object}	todosdk.APIError	"code, message"
//	@Failure		500		{object}	todosdk.APIError	"code, message"
//	@Router			/users/{id} [put].
func (h *UsersHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", msgInvalidUserID)
	if !ok {
		return
	}

	var req todosdk.UpdateUserRequest
	if !decodeBody(w, r, &req, true) {
		return
	}

	user, err := h.UserService.UpdateUser(r.Context(), id, domain.UserPatch{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeError(w, r, err, "Failed to update user")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUser(user))
}

// HandleDelete godoc
//
//	@Summary		Delete User
//	@Description	Deletes the user and all of their todos
//	@Tags			Users
//	@Produce		json
//	@Param			id	path		string	true	"User ID"
//	@Success		200	{object}	todosdk.MessageResponse	"message"
//	@Failure		400	{object}	todosdk.APIError		"code, message"
//	@Failure		404	{object}	todosdk.APIError		"code, message"
//	@Router			/users/{id} [delete].
func (h *UsersHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", msgInvalidUserID)
	if !ok {
		return
	}

	if err := h.UserService.DeleteUser(r.Context(), id); err != nil {
		writeError(w, r, err, "Failed to delete user")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, todosdk.MessageResponse{Message: "User deleted successfully"})
}
