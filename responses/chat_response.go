package responses

import "Chirp/models"

// ChatListing pairs a chat with its most recent message for sidebar views.
type ChatListing struct {
	models.Chat
	LastMessage *models.Message `json:"last_message"`
}
