package http

import (
	"net/http"

	"github.com/aussiebroadwan/todo/internal/todo/domain"
	"github.com/aussiebroadwan/todo/internal/todo/service"
	"github.com/aussiebroadwan/todo/pkg/httpx"
	"github.com/aussiebroadwan/todo/pkg/todosdk"
)

type TodosHandler struct {
	TodoService *service.TodoService
}

// HandleCreate godoc
//
//	@Summary		Create Todo
//	@Description	The owner is not checked up front. An unknown userId fails as an internal error
//	@Tags			Todos
//	@Accept			json
//	@Produce		json
//	@Param			body	body		todosdk.CreateTodoRequest	true	"userId, title, description"
//	@Success		201		{object}	todosdk.Todo
//	@Failure		400		{object}	todosdk.APIError	"code, message"
//	@Failure		500		{object}	todosdk.APIError	"code, message"
//	@Router			/todos [post].
func (h *TodosHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createTodoBody
	if !decodeBody(w, r, &req, false) {
		return
	}
	if !requireFields(w, field("userId", req.UserID), field("title", req.Title)) {
		return
	}

	todo, err := h.TodoService.CreateTodo(r.Context(), *req.UserID, *req.Title, req.Description)
	if err != nil {
		writeError(w, r, err, "Failed to create todo")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toTodo(todo))
}

// HandleGet godoc
//
//	@Summary		Get Todo
//	@Tags			Todos
//	@Produce		json
//	@Param			id	path		string	true	"Todo ID"
//	@Success		200	{object}	todosdk.Todo
//	@Failure		400	{object}	todosdk.APIError	"code, message"
//	@Failure		404	{object}	todosdk.APIError	"code, message"
//	@Router			/todos/{id} [get].
func (h *TodosHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", msgInvalidTodoID)
	if !ok {
		return
	}

	todo, found, err := h.TodoService.GetTodoByID(r.Context(), id)
	if err != nil {
		writeError(w, r, err, "Failed to get todo")
		return
	}
	if !found {
		notFound(w, "Todo not found")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toTodo(todo))
}

// HandleListByUser godoc
//
//	@Summary		List Todos
//	@Description	All todos of a user. An unknown user has an empty list
//	@Tags			Todos
//	@Produce		json
//	@Param			userId	path		string	true	"User ID"
//	@Success		200		{object}	todosdk.ListTodosResponse	"todos"
//	@Failure		400		{object}	todosdk.APIError			"code, message"
//	@Router			/todos/user/{userId} [get].
func (h *TodosHandler) HandleListByUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userId", msgInvalidUserID)
	if !ok {
		return
	}

	todos, err := h.TodoService.ListTodosByUser(r.Context(), userID)
	if err != nil {
		writeError(w, r, err, "Failed to list todos")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, todosdk.ListTodosResponse{Todos: toTodos(todos)})
}

// HandleUpdate godoc
//
//	@Summary		Update Todo
//	@Description	Partial update of title, description and completed
//	@Tags			Todos
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Todo ID"
//	@Param			body	body		todosdk.UpdateTodoRequest	true	"title, description, completed"
//	@Success		200		{object}	todosdk.Todo
//	@Failure		400		{object}	todosdk.APIError	"code, message"
//	@Failure		404		{object}	todosdk.APIError	"code, message"
//	@Failure		500		{object}	todosdk.APIError	"code, message"
//	@Router			/todos/{id} [put].
func (h *TodosHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", msgInvalidTodoID)
	if !ok {
		return
	}

	var req todosdk.UpdateTodoRequest
	if !decodeBody(w, r, &req, true) {
		return
	}

	todo, err := h.TodoService.UpdateTodo(r.Context(), id, domain.TodoPatch{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
	})
	if err != nil {
		writeError(w, r, err, "Failed to update todo")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toTodo(todo))
}

// HandleToggle godoc
//
//	@Summary		Toggle Todo
//	@Description	Flips the completed flag
//	@Tags			Todos
//	@Produce		json
//	@Param			id	path		string	true	"Todo ID"
//	@Success		200	{object}	todosdk.Todo
//	@Failure		400	{object}	todosdk.APIError	"code, message"
//	@Failure		404	{object}	todosdk.APIError	"code, message"
//	@Failure		500	{object}	todosdk.APIError	"code, message"
//	@Router			/todos/{id}/toggle [patch].
func (h *TodosHandler) HandleToggle(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", msgInvalidTodoID)
	if !ok {
		return
	}

	todo, err := h.TodoService.ToggleTodoComplete(r.Context(), id)
	if err != nil {
		writeError(w, r, err, "Failed to toggle todo")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toTodo(todo))
}

// HandleDelete godoc
//
//	@Summary		Delete Todo
//	@Tags			Todos
//	@Produce		json
//	@Param			id	path		string	true	"Todo ID"
//	@Success		200	{object}	todosdk.MessageResponse	"message"
//	@Failure		400	{object}	todosdk.APIError		"code, message"
//	@Failure		404	{object}	todosdk.APIError		"code, message"
//	@Router			/todos/{id} [delete].
func (h *TodosHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", msgInvalidTodoID)
	if !ok {
		return
	}

	if err := h.TodoService.DeleteTodo(r.Context(), id); err != nil {
		writeError(w, r, err, "Failed to delete todo")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, todosdk.MessageResponse{Message: "Todo deleted successfully"})
}
