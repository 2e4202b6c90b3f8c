package content

import (
	"context"
	"errors"
	"time"

	"github.com/aditpras/folio/internal/apperr"
	"github.com/aditpras/folio/internal/models"
	"github.com/aditpras/folio/internal/store"
)

// Service bundles the per-type collections with the profile singleton and
// the contact-message log.
type Service struct {
	db     store.DocumentStore
	events Publisher

	Education      *Collection[models.Education]
	Experiences    *Collection[models.Experience]
	Certifications *Collection[models.Certification]
	Skills         *Collection[models.Skill]
	Projects       *Collection[models.Project]
	WhatImDoing    *Collection[models.WhatImDoing]
}

// NewService wires a Service over the given store. events may be nil.
func NewService(db store.DocumentStore, events Publisher) *Service {
	return &Service{
		db:     db,
		events: events,

		Education:      newCollection(db, events, models.CollectionEducation, ValidateEducation, nil),
		Experiences:    newCollection(db, events, models.CollectionExperiences, ValidateExperience, nil),
		Certifications: newCollection(db, events, models.CollectionCertifications, ValidateCertification, nil),
		Skills:         newCollection(db, events, models.CollectionSkills, ValidateSkill, models.NormalizeSkill),
		Projects:       newCollection(db, events, models.CollectionProjects, ValidateProject, nil),
		WhatImDoing:    newCollection(db, events, models.CollectionWhatImDoing, ValidateWhatImDoing, models.NormalizeWhatImDoing),
	}
}

// GetProfile returns the singleton profile record, or nil when it has
// never been written.
func (s *Service) GetProfile(_ context.Context) (*models.PersonalInfo, error) {
	doc, err := s.db.Get(models.CollectionPersonalInfo, models.ProfileDocID)
	if errors.Is(err, apperr.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	p, err := decodeBag[models.PersonalInfo](profileBag(doc))
	if err != nil {
		return nil, err
	}
	return p, nil
}

// PutProfile validates and merge-writes the singleton profile record,
// creating it on first write.
func (s *Service) PutProfile(_ context.Context, p *models.PersonalInfo) (*models.PersonalInfo, error) {
	if err := ValidatePersonalInfo(p); err != nil {
		return nil, err
	}
	fields, err := encodeRecord(p)
	if err != nil {
		return nil, err
	}
	doc, err := s.db.Upsert(models.CollectionPersonalInfo, models.ProfileDocID, fields)
	if err != nil {
		return nil, err
	}
	if s.events != nil {
		s.events.PublishRecordEvent(models.CollectionPersonalInfo, "updated", doc.ID)
	}
	return decodeBag[models.PersonalInfo](profileBag(doc))
}

// AddContactMessage validates and appends an inquiry. A missing timestamp
// is assigned server-side; isRead always starts false.
func (s *Service) AddContactMessage(_ context.Context, m *models.ContactMessage) (*models.ContactMessage, error) {
	if err := ValidateContactMessage(m); err != nil {
		return nil, err
	}
	if m.Timestamp == "" {
		m.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}
	m.IsRead = false

	fields, err := encodeRecord(m)
	if err != nil {
		return nil, err
	}
	doc, err := s.db.Create(models.CollectionContactMessages, fields)
	if err != nil {
		return nil, err
	}
	if s.events != nil {
		s.events.PublishRecordEvent(models.CollectionContactMessages, "created", doc.ID)
	}
	m.ID = doc.ID
	return m, nil
}

// ListContactMessages returns the full append-only inquiry log in
// arrival order.
func (s *Service) ListContactMessages(_ context.Context) ([]models.ContactMessage, error) {
	docs, err := s.db.ListAll(models.CollectionContactMessages)
	if err != nil {
		return nil, err
	}
	out := make([]models.ContactMessage, 0, len(docs))
	for i := range docs {
		m, err := decodeBag[models.ContactMessage](docBag(&docs[i]))
		if err != nil {
			return nil, err
		}
		out = append(out, *m)
	}
	return out, nil
}

// profileBag flattens the profile document. The singleton has no order
// or soft-delete semantics, so only the identity joins the field bag.
func profileBag(doc *store.Document) map[string]any {
	bag := make(map[string]any, len(doc.Fields)+1)
	for k, v := range doc.Fields {
		bag[k] = v
	}
	bag["id"] = doc.ID
	return bag
}
