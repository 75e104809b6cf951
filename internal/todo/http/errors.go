package http

import (
	"net/http"

	"github.com/aussiebroadwan/todo/internal/todo/domain"
	"github.com/aussiebroadwan/todo/pkg/slogx"
	"github.com/aussiebroadwan/todo/pkg/todosdk"
)

// writeError renders err with the code of its domain kind. Internal errors
// are logged and answered with fallback only.
func writeError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	kind := domain.KindOf(err)
	if kind == domain.KindInternal {
		slogx.FromContext(r.Context()).Error(fallback, "error", err)
	}
	todosdk.NewAPIError(kind.String(), domain.MessageOf(err, fallback)).WriteError(w)
}

func badRequest(w http.ResponseWriter, msg string) {
	todosdk.NewAPIError(todosdk.ErrorCodeInvalidArgument, msg).WriteError(w)
}

func notFound(w http.ResponseWriter, msg string) {
	todosdk.NewAPIError(todosdk.ErrorCodeNotFound, msg).WriteError(w)
}
