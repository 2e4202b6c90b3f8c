package content

import (
	"testing"

	"github.com/aditpras/folio/internal/models"
)

func TestValidateEducationYears(t *testing.T) {
	base := models.Education{
		Institution:  "ITB",
		Level:        "Bachelor's Degree",
		FieldOfStudy: "Informatics",
		StartDate:    "2018",
		EndDate:      "2022",
	}
	if err := ValidateEducation(&base); err != nil {
		t.Fatalf("valid education rejected: %v", err)
	}

	for _, bad := range []string{"202", "20222", "abcd", ""} {
		e := base
		e.StartDate = bad
		if err := ValidateEducation(&e); err == nil {
			t.Errorf("startDate %q should be rejected", bad)
		}
	}
}

func TestValidateExperienceType(t *testing.T) {
	base := models.Experience{
		Title:        "Developer",
		Organization: "Acme",
		Type:         models.ExperienceWork,
		StartDate:    "2023-01-01",
		Description:  "building things",
	}
	if err := ValidateExperience(&base); err != nil {
		t.Fatalf("valid experience rejected: %v", err)
	}

	e := base
	e.Type = "hobby"
	if err := ValidateExperience(&e); err == nil {
		t.Error("unknown type should be rejected")
	}

	e = base
	e.EndDate = "2023-06"
	if err := ValidateExperience(&e); err == nil {
		t.Error("malformed endDate should be rejected")
	}

	// endDate is optional for current positions.
	e = base
	e.EndDate = ""
	e.IsCurrent = true
	if err := ValidateExperience(&e); err != nil {
		t.Errorf("current position rejected: %v", err)
	}
}

func TestValidateCertificationExpiryOptional(t *testing.T) {
	c := models.Certification{
		Name:      "CKA",
		Issuer:    "CNCF",
		IssueDate: "2024-03-01",
	}
	if err := ValidateCertification(&c); err != nil {
		t.Fatalf("certification without expiry rejected: %v", err)
	}

	c.ExpiryDate = "2027-03-01"
	if err := ValidateCertification(&c); err != nil {
		t.Fatalf("certification with expiry rejected: %v", err)
	}

	c.ExpiryDate = "soon"
	if err := ValidateCertification(&c); err == nil {
		t.Error("malformed expiry should be rejected")
	}
}

func TestValidateSkillLevel(t *testing.T) {
	for _, lvl := range models.SkillLevels {
		s := models.Skill{Name: "Go", Level: lvl}
		if err := ValidateSkill(&s); err != nil {
			t.Errorf("level %q rejected: %v", lvl, err)
		}
	}

	s := models.Skill{Name: "Go", Level: "Guru"}
	if err := ValidateSkill(&s); err == nil {
		t.Error("unknown level should be rejected")
	}
}

func TestValidateWhatImDoingIcon(t *testing.T) {
	w := models.WhatImDoing{Name: "Web Development", Icon: models.IconGlobe, Description: "sites"}
	if err := ValidateWhatImDoing(&w); err != nil {
		t.Fatalf("valid entry rejected: %v", err)
	}

	w.Icon = "Rocket"
	if err := ValidateWhatImDoing(&w); err == nil {
		t.Error("unknown icon should be rejected on write")
	}
}

func TestValidatePersonalInfo(t *testing.T) {
	p := models.PersonalInfo{Name: "Adit", Title: "Engineer", Email: "adit@example.com"}
	if err := ValidatePersonalInfo(&p); err != nil {
		t.Fatalf("valid profile rejected: %v", err)
	}

	p.Email = "not-an-email"
	if err := ValidatePersonalInfo(&p); err == nil {
		t.Error("malformed email should be rejected")
	}
}

func TestValidateContactMessage(t *testing.T) {
	m := models.ContactMessage{Name: "Visitor", Email: "v@example.com", Message: "hello"}
	if err := ValidateContactMessage(&m); err != nil {
		t.Fatalf("valid message rejected: %v", err)
	}

	m.Message = ""
	if err := ValidateContactMessage(&m); err == nil {
		t.Error("empty message should be rejected")
	}
}
