package content

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/aditpras/folio/internal/models"
)

// Tabs rendered by the public page. Blog is a permanent placeholder with
// no backing collection.
var Tabs = []string{"about", "resume", "portfolio", "blog", "contact"}

// Portfolio is the public aggregate: the profile plus every active
// collection, fetched in full (no pagination).
type Portfolio struct {
	Profile        *models.PersonalInfo   `json:"profile"`
	Education      []models.Education     `json:"education"`
	Experiences    []models.Experience    `json:"experiences"`
	Certifications []models.Certification `json:"certifications"`
	Skills         []models.Skill         `json:"skills"`
	Projects       []models.Project       `json:"projects"`
	WhatImDoing    []models.WhatImDoing   `json:"whatImDoing"`
	Roles          []string               `json:"roles"`
	Tabs           []string               `json:"tabs"`
	Blog           []any                  `json:"blog"`
}

// Aggregate fetches the profile and all six content collections
// concurrently and derives the role badge set.
func (s *Service) Aggregate(ctx context.Context) (*Portfolio, error) {
	p := &Portfolio{Tabs: Tabs, Blog: []any{}}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		p.Profile, err = s.GetProfile(gCtx)
		return err
	})
	g.Go(func() (err error) {
		p.Education, err = s.Education.List(gCtx, nil)
		return err
	})
	g.Go(func() (err error) {
		p.Experiences, err = s.Experiences.List(gCtx, nil)
		return err
	})
	g.Go(func() (err error) {
		p.Certifications, err = s.Certifications.List(gCtx, nil)
		return err
	})
	g.Go(func() (err error) {
		p.Skills, err = s.Skills.List(gCtx, nil)
		return err
	})
	g.Go(func() (err error) {
		p.Projects, err = s.Projects.List(gCtx, nil)
		return err
	})
	g.Go(func() (err error) {
		p.WhatImDoing, err = s.WhatImDoing.List(gCtx, nil)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	p.Roles = deriveRoles(p)
	return p, nil
}

// deriveRoles builds the badge set: skill names when any skills exist,
// otherwise the profile title plus the distinct experience types present.
func deriveRoles(p *Portfolio) []string {
	if len(p.Skills) > 0 {
		roles := make([]string, 0, len(p.Skills))
		for _, s := range p.Skills {
			roles = append(roles, s.Name)
		}
		return roles
	}

	var roles []string
	seen := make(map[string]struct{})
	add := func(r string) {
		if r == "" {
			return
		}
		if _, ok := seen[r]; ok {
			return
		}
		seen[r] = struct{}{}
		roles = append(roles, r)
	}
	if p.Profile != nil {
		add(p.Profile.Title)
	}
	for _, e := range p.Experiences {
		add(e.Type)
	}
	if roles == nil {
		roles = []string{}
	}
	return roles
}
