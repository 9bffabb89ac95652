package domain

import "time"

type PreviewExchange struct {
	Message   string    `json:"message"`
	Response  string    `json:"response"`
	CreatedAt time.Time `json:"createdAt"`
}
