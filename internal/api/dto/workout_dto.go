package dto

// WorkoutRequest payload for logging or updating a workout. Date uses the
// YYYY-MM-DD form.
type WorkoutRequest struct {
	Date            string `json:"date"`
	DurationMinutes int    `json:"duration_minutes"`
}

// WorkoutResponse is the public view of a workout record.
type WorkoutResponse struct {
	ID              int64  `json:"id"`
	UserID          int64  `json:"user_id"`
	Date            string `json:"date"`
	DurationMinutes int    `json:"duration_minutes"`
}
