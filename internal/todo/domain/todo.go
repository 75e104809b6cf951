package domain

import "time"

type Todo struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"userId"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TodoPatch holds the fields of a partial todo update. Nil means unchanged.
//
// Description cannot be cleared back to null through a patch, matching the
// update body where an absent and a null description are indistinguishable.
type TodoPatch struct {
	Title       *string
	Description *string
	Completed   *bool
}

// Toggled returns the patch that flips t's completion state.
func (t Todo) Toggled() TodoPatch {
	completed := !t.Completed
	return TodoPatch{Completed: &completed}
}
