package models

import "time"

// Balance is a user's current point total.
type Balance struct {
	UserID    int64     `json:"id"`
	Points    int64     `json:"point"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EmptyBalance is what an unknown user reads as.
func EmptyBalance(userID int64) Balance {
	return Balance{UserID: userID}
}
