package domain

import "time"

// TopUsersLimit is how many users the admin leaderboard shows.
const TopUsersLimit = 10

// AdminStats is a read-only snapshot of aggregate usage.
type AdminStats struct {
	TotalUsers      int64
	TotalMessages   int64
	ActiveUsernames int64
}

// UserStat is the received-message count for one username.
type UserStat struct {
	Username     string
	MessageCount int64
	UpdatedAt    time.Time
}
