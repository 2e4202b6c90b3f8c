package api

import "github.com/aditpras/folio/internal/models"

// ListResponse wraps a collection listing.
type ListResponse[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

// MoveRequest is the body for a reorder action.
type MoveRequest struct {
	Direction string `json:"direction"` // "up" or "down"
}

// ContactRequest is the public contact form submission.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// ContactResponse returns the persisted inquiry plus the messaging deep
// link the client should open. WhatsAppURL is empty when the owner has no
// phone number configured.
type ContactResponse struct {
	Message     *models.ContactMessage `json:"message"`
	WhatsAppURL string                 `json:"whatsappURL,omitempty"`
}

// UploadResponse is returned after a successful local upload.
type UploadResponse struct {
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
	URL      string `json:"url"`
}

// CDNUploadResponse is returned after a successful CDN upload.
type CDNUploadResponse struct {
	PublicID     string `json:"public_id"`
	URL          string `json:"url"`
	SecureURL    string `json:"secure_url"`
	ThumbnailURL string `json:"thumbnail_url"`
}

// Fields that forms submit as comma-separated strings, per collection.
// The API accepts either the delimited string or a ready array and always
// stores an array.
var csvFields = map[string][]string{
	models.CollectionExperiences: {"skills"},
	models.CollectionProjects:    {"tags"},
}
