package api

import (
	"encoding/json"
	"net/http"

	"github.com/aditpras/folio/internal/content"
	"github.com/aditpras/folio/internal/models"
	"github.com/aditpras/folio/internal/whatsapp"
)

// ContactSettings carries the messaging redirect configuration.
type ContactSettings struct {
	OwnerPhone  string
	CountryCode string
}

// Handler holds API route handlers.
type Handler struct {
	svc     *content.Service
	uploads *UploadHandler
	contact ContactSettings

	education      *resource[models.Education]
	experiences    *resource[models.Experience]
	certifications *resource[models.Certification]
	skills         *resource[models.Skill]
	projects       *resource[models.Project]
	whatImDoing    *resource[models.WhatImDoing]
}

// NewHandler creates a new Handler. uploads may be nil when no upload
// surface is mounted (tests).
func NewHandler(svc *content.Service, uploads *UploadHandler, contact ContactSettings) *Handler {
	return &Handler{
		svc:     svc,
		uploads: uploads,
		contact: contact,

		education:      &resource[models.Education]{col: svc.Education},
		experiences:    &resource[models.Experience]{col: svc.Experiences, filterParam: "type"},
		certifications: &resource[models.Certification]{col: svc.Certifications},
		skills:         &resource[models.Skill]{col: svc.Skills},
		projects:       &resource[models.Project]{col: svc.Projects, filterParam: "category"},
		whatImDoing:    &resource[models.WhatImDoing]{col: svc.WhatImDoing},
	}
}

// Portfolio handles GET /api/portfolio: the public aggregate of the
// profile and every active collection.
func (h *Handler) Portfolio(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.Aggregate(r.Context())
	if err != nil {
		writeError(w, "aggregate portfolio", err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// Contact handles POST /api/contact: persists the inquiry, then hands the
// client the messaging deep link. A persistence failure blocks the link;
// a missing owner phone merely skips it.
func (h *Handler) Contact(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 64<<10)
	var req ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}

	msg := &models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	}
	saved, err := h.svc.AddContactMessage(r.Context(), msg)
	if err != nil {
		writeError(w, "add contact message", err)
		return
	}

	link := whatsapp.MessageLink(
		h.contact.OwnerPhone, h.contact.CountryCode,
		saved.Name, saved.Email, saved.Phone, saved.Message)
	writeJSON(w, http.StatusCreated, ContactResponse{Message: saved, WhatsAppURL: link})
}

// GetProfile handles GET /api/profile.
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.GetProfile(r.Context())
	if err != nil {
		writeError(w, "get profile", err)
		return
	}
	if p == nil {
		writeJSON(w, http.StatusNotFound, errorBody("not found"))
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// PutProfile handles PUT /api/profile: a merge write against the
// fixed-key singleton, creating it on first use.
func (h *Handler) PutProfile(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var p models.PersonalInfo
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	saved, err := h.svc.PutProfile(r.Context(), &p)
	if err != nil {
		writeError(w, "put profile", err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

// ListMessages handles GET /api/messages: the admin inquiry log.
func (h *Handler) ListMessages(w http.ResponseWriter, r *http.Request) {
	msgs, err := h.svc.ListContactMessages(r.Context())
	if err != nil {
		writeError(w, "list messages", err)
		return
	}
	writeJSON(w, http.StatusOK, ListResponse[models.ContactMessage]{Items: msgs, Total: len(msgs)})
}
