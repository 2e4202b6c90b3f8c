package content

import (
	"context"
	"reflect"
	"testing"

	"github.com/aditpras/folio/internal/models"
)

func TestAggregateEmpty(t *testing.T) {
	svc, _ := testService(t)

	p, err := svc.Aggregate(context.Background())
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	if p.Profile != nil {
		t.Errorf("profile = %+v, want nil", p.Profile)
	}
	if !reflect.DeepEqual(p.Tabs, []string{"about", "resume", "portfolio", "blog", "contact"}) {
		t.Errorf("tabs = %v", p.Tabs)
	}
	if p.Blog == nil || len(p.Blog) != 0 {
		t.Errorf("blog = %v, want empty placeholder", p.Blog)
	}
	if p.Roles == nil || len(p.Roles) != 0 {
		t.Errorf("roles = %v, want empty", p.Roles)
	}
}

func TestAggregateRolesFromSkills(t *testing.T) {
	svc, _ := testService(t)
	ctx := context.Background()

	svc.Skills.Create(ctx, &models.Skill{Name: "Go", Level: models.SkillExpert})
	svc.Skills.Create(ctx, &models.Skill{Name: "SQL", Level: models.SkillAdvanced})

	p, err := svc.Aggregate(ctx)
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	if !reflect.DeepEqual(p.Roles, []string{"Go", "SQL"}) {
		t.Errorf("roles = %v, want skill names", p.Roles)
	}
}

func TestAggregateRolesFallback(t *testing.T) {
	svc, _ := testService(t)
	ctx := context.Background()

	svc.PutProfile(ctx, &models.PersonalInfo{
		Name: "Adit", Title: "Engineer", Email: "adit@example.com",
	})
	mk := func(title, typ string) {
		svc.Experiences.Create(ctx, &models.Experience{
			Title: title, Organization: "Acme", Type: typ,
			StartDate: "2023-01-01", Description: "x",
		})
	}
	mk("Dev", models.ExperienceWork)
	mk("Dev II", models.ExperienceWork)
	mk("TA", models.ExperienceTeaching)

	p, err := svc.Aggregate(ctx)
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	// No skills: title first, then distinct experience types in order.
	want := []string{"Engineer", models.ExperienceWork, models.ExperienceTeaching}
	if !reflect.DeepEqual(p.Roles, want) {
		t.Errorf("roles = %v, want %v", p.Roles, want)
	}
}

func TestAggregateExcludesArchived(t *testing.T) {
	svc, _ := testService(t)
	ctx := context.Background()

	keep, _ := svc.Projects.Create(ctx, &models.Project{Title: "Keep", Description: "x"})
	gone, _ := svc.Projects.Create(ctx, &models.Project{Title: "Gone", Description: "x"})
	if err := svc.Projects.Archive(ctx, gone.ID); err != nil {
		t.Fatalf("Archive: %v", err)
	}

	p, err := svc.Aggregate(ctx)
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	if len(p.Projects) != 1 || p.Projects[0].ID != keep.ID {
		t.Errorf("projects = %+v", p.Projects)
	}
}
