package controllers

// UserSummary is the projection returned by the followers/following
// list endpoints.
type UserSummary struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}
