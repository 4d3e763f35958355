package dto

import "time"

type InboundMessageRequest struct {
	UserID string `json:"user_id" validate:"required,max=64"`
	Text   string `json:"text" validate:"required,max=1000"`
}

type InboundMessageResponse struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	ReceivedAt time.Time `json:"received_at"`
}
