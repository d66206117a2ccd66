package model

import "time"

// Hours is one opening window of a business. Day is a weekday code
// starting at 1.
type Hours struct {
	HoursID  int64        `json:"hoursId"`
	Business *BusinessRef `json:"business"`
	Day      int          `json:"day"`
	Open     time.Time    `json:"open"`
	Closed   time.Time    `json:"closed"`
}
