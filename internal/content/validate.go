package content

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/aditpras/folio/internal/models"
)

var (
	yearRe = regexp.MustCompile(`^\d{4}$`)
	dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

func enum(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

// ValidateEducation enforces required fields and the 4-digit year rule on
// both date fields. Years carry no calendar semantics.
func ValidateEducation(e *models.Education) error {
	return validation.ValidateStruct(e,
		validation.Field(&e.Institution, validation.Required),
		validation.Field(&e.Level, validation.Required),
		validation.Field(&e.FieldOfStudy, validation.Required),
		validation.Field(&e.StartDate, validation.Required, validation.Match(yearRe).Error("must be a 4-digit year")),
		validation.Field(&e.EndDate, validation.Required, validation.Match(yearRe).Error("must be a 4-digit year")),
	)
}

// ValidateExperience enforces required fields, the type enumeration, and
// calendar-date formats.
func ValidateExperience(e *models.Experience) error {
	return validation.ValidateStruct(e,
		validation.Field(&e.Title, validation.Required),
		validation.Field(&e.Organization, validation.Required),
		validation.Field(&e.Type, validation.Required, validation.In(enum(models.ExperienceTypes)...)),
		validation.Field(&e.StartDate, validation.Required, validation.Match(dateRe).Error("must be YYYY-MM-DD")),
		validation.Field(&e.EndDate, validation.Match(dateRe).Error("must be YYYY-MM-DD")),
		validation.Field(&e.Description, validation.Required),
	)
}

// ValidateCertification enforces required fields and calendar-date
// formats. Expiry is optional: open-ended validity.
func ValidateCertification(c *models.Certification) error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Name, validation.Required),
		validation.Field(&c.Issuer, validation.Required),
		validation.Field(&c.IssueDate, validation.Required, validation.Match(dateRe).Error("must be YYYY-MM-DD")),
		validation.Field(&c.ExpiryDate, validation.Match(dateRe).Error("must be YYYY-MM-DD")),
	)
}

// ValidateSkill enforces the canonical skill shape. Legacy records are
// coerced by models.NormalizeSkill before this runs.
func ValidateSkill(s *models.Skill) error {
	return validation.ValidateStruct(s,
		validation.Field(&s.Name, validation.Required),
		validation.Field(&s.Level, validation.Required, validation.In(enum(models.SkillLevels)...)),
	)
}

// ValidateProject enforces required fields.
func ValidateProject(p *models.Project) error {
	return validation.ValidateStruct(p,
		validation.Field(&p.Title, validation.Required),
		validation.Field(&p.Description, validation.Required),
		validation.Field(&p.CompletedDate, validation.Match(dateRe).Error("must be YYYY-MM-DD")),
	)
}

// ValidateWhatImDoing enforces required fields and icon enumeration
// membership on the write path. Reads stay total via models.LookupIcon.
func ValidateWhatImDoing(w *models.WhatImDoing) error {
	return validation.ValidateStruct(w,
		validation.Field(&w.Name, validation.Required),
		validation.Field(&w.Icon, validation.Required, validation.In(enum(models.IconNames)...)),
		validation.Field(&w.Description, validation.Required),
	)
}

// ValidatePersonalInfo enforces the profile's required fields.
func ValidatePersonalInfo(p *models.PersonalInfo) error {
	return validation.ValidateStruct(p,
		validation.Field(&p.Name, validation.Required),
		validation.Field(&p.Title, validation.Required),
		validation.Field(&p.Email, validation.Required, is.Email),
	)
}

// ValidateContactMessage enforces the public contact form's rules: name,
// email, and message required; phone optional.
func ValidateContactMessage(m *models.ContactMessage) error {
	return validation.ValidateStruct(m,
		validation.Field(&m.Name, validation.Required),
		validation.Field(&m.Email, validation.Required, is.Email),
		validation.Field(&m.Message, validation.Required),
	)
}
