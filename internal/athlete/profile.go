package athlete

import (
	"time"
)

// Profile holds the athlete account and the training targets used
// when building coaching context snapshots. FTP and the weekly hours
// target are nil until the athlete sets them.
type Profile struct {
	ID                int       `json:"id"`
	Username          string    `json:"username"`
	PasswordHash      string    `json:"-"`
	FTP               *int      `json:"ftp,omitempty"`
	WeeklyHoursTarget *float64  `json:"weeklyHoursTarget,omitempty"`
	RestingHeartRate  *int      `json:"restingHeartRate,omitempty"`
	MaxHeartRate      *int      `json:"maxHeartRate,omitempty"`
	Goal              *string   `json:"goal,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}
