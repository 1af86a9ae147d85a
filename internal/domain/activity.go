package domain

import "time"

// Activity is a free-form fitness activity owned by a user.
type Activity struct {
	ID          int64
	UserID      int64
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
