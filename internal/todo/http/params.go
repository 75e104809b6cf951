package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/aussiebroadwan/todo/pkg/httpx"
)

const (
	msgInvalidUserID = "Invalid user ID"
	msgInvalidTodoID = "Invalid todo ID"
	msgInvalidBody   = "Invalid request body"
)

// parseID reads the leading integer of raw, so "12abc" is 12 and "abc" is
// rejected. Values that do not fit an int64 are rejected too.
func parseID(raw string) (int64, bool) {
	s := strings.TrimSpace(raw)

	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	j := i
	for j < len(s) && s[j] >= '0' && s[j] <= '9' {
		j++
	}
	if j == i {
		return 0, false
	}

	n, err := strconv.ParseInt(s[:j], 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// pathID parses the {name} path value, writing an invalid_argument response
// with msg when it is not a number.
func pathID(w http.ResponseWriter, r *http.Request, name, msg string) (int64, bool) {
	id, ok := parseID(r.PathValue(name))
	if !ok {
		badRequest(w, msg)
	}
	return id, ok
}

// decodeBody decodes the JSON body into dst, writing an invalid_argument
// response when it cannot.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any, allowEmpty bool) bool {
	if err := httpx.DecodeJSON(w, r, dst, allowEmpty); err != nil {
		badRequest(w, msgInvalidBody)
		return false
	}
	return true
}

// requiredField records whether a required body field was present.
type requiredField struct {
	name    string
	present bool
}

func field[T any](name string, v *T) requiredField {
	return requiredField{name: name, present: v != nil}
}

// requireFields writes an invalid_argument response naming the first absent
// field. Empty strings and zero numbers count as present.
func requireFields(w http.ResponseWriter, fields ...requiredField) bool {
	for _, f := range fields {
		if !f.present {
			badRequest(w, f.name+" is required")
			return false
		}
	}
	return true
}

// Request bodies as the server decodes them. Required fields are pointers so
// an absent field can be told apart from an empty one.

type accountBody struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

type loginBody struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

type createTodoBody struct {
	UserID      *int64  `json:"userId"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
}
