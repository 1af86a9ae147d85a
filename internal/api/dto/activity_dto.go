package dto

// ActivityRequest payload for creating or updating an activity.
type ActivityRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ActivityResponse is the public view of an activity record.
type ActivityResponse struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"user_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
