package model

import "time"

// HoursRequest is the POST and PUT /hours payload.
type HoursRequest struct {
	HoursID  int64        `json:"hoursId" validate:"gte=0"`
	Business *BusinessRef `json:"business"`
	Day      int          `json:"day"`
	Open     time.Time    `json:"open"`
	Closed   time.Time    `json:"closed"`
}

func (r *HoursRequest) Validate() error { return validate.Struct(r) }

func (r *HoursRequest) ToHours() *Hours {
	return &Hours{
		HoursID:  r.HoursID,
		Business: r.Business,
		Day:      r.Day,
		Open:     r.Open,
		Closed:   r.Closed,
	}
}
