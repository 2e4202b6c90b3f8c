// Package models defines the content record types for Folio.
package models

// Collection names as stored in the document store. They match the field
// naming of the data the public site renders, so dumps stay portable.
const (
	CollectionPersonalInfo    = "personalInfo"
	CollectionEducation       = "education"
	CollectionExperiences     = "experiences"
	CollectionCertifications  = "certifications"
	CollectionSkills          = "skills"
	CollectionProjects        = "projects"
	CollectionWhatImDoing     = "whatImDoing"
	CollectionContactMessages = "contactMessages"
)

// ProfileDocID is the fixed identity of the singleton profile record.
const ProfileDocID = "main"

// Meta carries the attributes shared by every stored record: external
// identity, soft-delete flag, and manual display ordering. Order is a
// pointer so that "never assigned" is distinguishable from zero.
type Meta struct {
	ID       string `json:"id,omitempty"`
	IsActive bool   `json:"isActive"`
	Order    *int   `json:"order,omitempty"`
}

// SocialLinks holds the profile owner's social media URLs.
type SocialLinks struct {
	LinkedIn  string `json:"linkedin,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	GitHub    string `json:"github,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
}

// PersonalInfo is the singleton profile record.
type PersonalInfo struct {
	ID          string       `json:"id,omitempty"`
	Name        string       `json:"name"`
	Title       string       `json:"title"`
	Bio         string       `json:"bio"`
	Email       string       `json:"email"`
	Phone       string       `json:"phone"`
	Location    string       `json:"location"`
	PhotoURL    string       `json:"photoURL,omitempty"`
	SocialLinks *SocialLinks `json:"socialLinks,omitempty"`
}

// Education is a single education entry. Start and end dates are 4-digit
// year strings; there are no calendar-date semantics.
type Education struct {
	Meta
	Institution    string `json:"institution"`
	Level          string `json:"level"`
	FieldOfStudy   string `json:"fieldOfStudy"`
	StartDate      string `json:"startDate"`
	EndDate        string `json:"endDate"`
	Grade          string `json:"grade,omitempty"`
	Location       string `json:"location,omitempty"`
	Description    string `json:"description,omitempty"`
	CertificateURL string `json:"certificateURL,omitempty"`
}

// Experience types.
const (
	ExperienceWork         = "work"
	ExperienceInternship   = "internship"
	ExperienceOrganization = "organization"
	ExperienceTeaching     = "teaching"
)

// ExperienceTypes enumerates the valid experience type values.
var ExperienceTypes = []string{
	ExperienceWork,
	ExperienceInternship,
	ExperienceOrganization,
	ExperienceTeaching,
}

// Experience is a work, internship, organization, or teaching entry.
type Experience struct {
	Meta
	Title        string   `json:"title"`
	Organization string   `json:"organization"`
	Type         string   `json:"type"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate,omitempty"`
	IsCurrent    bool     `json:"isCurrent"`
	Description  string   `json:"description"`
	Skills       []string `json:"skills,omitempty"`
	Location     string   `json:"location,omitempty"`
	LogoURL      string   `json:"logoURL,omitempty"`
}

// Certification is a professional certification. ExpiryDate is empty for
// open-ended validity.
type Certification struct {
	Meta
	Name                string `json:"name"`
	Issuer              string `json:"issuer"`
	IssueDate           string `json:"issueDate"`
	ExpiryDate          string `json:"expiryDate,omitempty"`
	CredentialID        string `json:"credentialID,omitempty"`
	CredentialURL       string `json:"credentialURL,omitempty"`
	Description         string `json:"description,omitempty"`
	CertificateImageURL string `json:"certificateImageURL,omitempty"`
}

// Skill levels.
const (
	SkillBeginner     = "Beginner"
	SkillIntermediate = "Intermediate"
	SkillAdvanced     = "Advanced"
	SkillExpert       = "Expert"
)

// SkillLevels enumerates the valid skill level values.
var SkillLevels = []string{SkillBeginner, SkillIntermediate, SkillAdvanced, SkillExpert}

// Skill is a single skill entry. The canonical shape carries a level; an
// earlier schema revision stored an icon name instead, which the read path
// coerces (see NormalizeSkill).
type Skill struct {
	Meta
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Level       string `json:"level"`
}

// NormalizeSkill coerces records written under the legacy skill shape
// (icon enum, no level) into the canonical one. The stray icon field is
// dropped by decoding; a missing level defaults to Intermediate.
func NormalizeSkill(s *Skill) {
	if s.Level == "" {
		s.Level = SkillIntermediate
	}
}

// Project is a showcased project.
type Project struct {
	Meta
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Category      string   `json:"category,omitempty"`
	ImageURL      string   `json:"imageURL,omitempty"`
	ProjectURL    string   `json:"projectURL,omitempty"`
	GithubURL     string   `json:"githubURL,omitempty"`
	Tags          []string `json:"tags,omitempty"`
	CompletedDate string   `json:"completedDate,omitempty"`
}

// WhatImDoing is a "what I'm doing" activity tag with an icon name from
// the closed icon enumeration.
type WhatImDoing struct {
	Meta
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

// NormalizeWhatImDoing resolves the stored icon name through the closed
// enumeration so reads always carry a renderable key. Unknown names (old
// data, direct store writes) come back as IconCode.
func NormalizeWhatImDoing(w *WhatImDoing) {
	w.Icon = LookupIcon(w.Icon)
}

// ContactMessage is an inquiry submitted through the public contact form.
// The collection is append-only.
type ContactMessage struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	IsRead    bool   `json:"isRead"`
}
