package notes

import "time"

// Note is a personal text record owned by exactly one user. Ownership is
// set at creation and never transfers. Deleted notes stay in storage with
// DeletedAt set, but are unfindable by subsequent reads.
type Note struct {
	ID          int64      `json:"id"`
	Description *string    `json:"description"`
	UserID      int64      `json:"user_id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"-"`
}
