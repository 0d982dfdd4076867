package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/datatypes"
)

func newTestUserProject(t *testing.T, s *MemStore) (userID, projectID uint) {
	t.Helper()

	ctx := context.Background()

	user, err := s.CreateUser(ctx, NewUser{Username: "alice", Password: "hash", FullName: "Alice"})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	project, err := s.CreateProject(ctx, NewProject{Name: "Demo", UserID: user.ID})
	if err != nil {
		t.Fatalf("create project: %v", err)
	}

	return user.ID, project.ID
}

func TestProjectIDsStrictlyIncreasing(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	userID, _ := newTestUserProject(t, s)

	var lastID uint
	for i := 0; i < 5; i++ {
		project, err := s.CreateProject(ctx, NewProject{Name: "p", UserID: userID})
		if err != nil {
			t.Fatalf("create project: %v", err)
		}
		if project.ID <= lastID {
			t.Fatalf("expected id > %d, got %d", lastID, project.ID)
		}
		lastID = project.ID
	}

	// Ids are not reused after delete.
	if err := s.DeleteProject(ctx, lastID); err != nil {
		t.Fatalf("delete project: %v", err)
	}

	project, err := s.CreateProject(ctx, NewProject{Name: "p", UserID: userID})
	if err != nil {
		t.Fatalf("create project: %v", err)
	}
	if project.ID <= lastID {
		t.Fatalf("expected fresh id > %d after delete, got %d", lastID, project.ID)
	}
}

func TestUpdateMissingProjectReturnsNotFound(t *testing.T) {
	s := NewMemStore()

	name := "renamed"
	_, err := s.UpdateProject(context.Background(), 42, ProjectUpdate{Name: &name})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteMissingServiceReturnsNotFound(t *testing.T) {
	s := NewMemStore()

	if err := s.DeleteService(context.Background(), 42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPartialProjectUpdate(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	_, projectID := newTestUserProject(t, s)

	status := "staging"
	updated, err := s.UpdateProject(ctx, projectID, ProjectUpdate{Status: &status})
	if err != nil {
		t.Fatalf("update project: %v", err)
	}

	if updated.Status != "staging" {
		t.Fatalf("expected status staging, got %q", updated.Status)
	}
	if updated.Name != "Demo" {
		t.Fatalf("expected untouched name Demo, got %q", updated.Name)
	}
}

func TestResourceUsageOrderedByTimestampDescending(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	_, projectID := newTestUserProject(t, s)

	service, err := s.CreateService(ctx, NewService{Name: "db", Type: "database", ProjectID: projectID})
	if err != nil {
		t.Fatalf("create service: %v", err)
	}

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	t1 := base
	t2 := base.Add(time.Minute)
	t3 := base.Add(2 * time.Minute)

	// Inserted out of temporal order on purpose.
	for _, ts := range []time.Time{t2, t3, t1} {
		if _, err := s.CreateResourceUsage(ctx, NewResourceUsage{ServiceID: service.ID, CpuUsage: 10, Timestamp: ts}); err != nil {
			t.Fatalf("create usage: %v", err)
		}
	}

	usages, err := s.GetResourceUsage(ctx, service.ID)
	if err != nil {
		t.Fatalf("get usage: %v", err)
	}

	if len(usages) != 3 {
		t.Fatalf("expected 3 samples, got %d", len(usages))
	}
	for i, want := range []time.Time{t3, t2, t1} {
		if !usages[i].Timestamp.Equal(want) {
			t.Fatalf("sample %d: expected %v, got %v", i, want, usages[i].Timestamp)
		}
	}
}

func TestServiceHealthUpsertByType(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	if _, err := s.UpsertServiceHealthStatus(ctx, HealthUpsert{ServiceType: "compute", Status: "operational", Uptime: 99.9}); err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	updated, err := s.UpsertServiceHealthStatus(ctx, HealthUpsert{ServiceType: "compute", Status: "degraded", Uptime: 97.5})
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	if updated.Status != "degraded" || updated.Uptime != 97.5 {
		t.Fatalf("expected updated fields, got %+v", updated)
	}

	statuses, err := s.GetServiceHealthStatuses(ctx)
	if err != nil {
		t.Fatalf("list statuses: %v", err)
	}
	if len(statuses) != 1 {
		t.Fatalf("expected exactly one row for the type, got %d", len(statuses))
	}
	if statuses[0].Status != "degraded" {
		t.Fatalf("expected stored row to reflect the update, got %+v", statuses[0])
	}
}

func TestDeleteProjectCascades(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	userID, projectID := newTestUserProject(t, s)

	service, err := s.CreateService(ctx, NewService{Name: "web", Type: "compute", ProjectID: projectID})
	if err != nil {
		t.Fatalf("create service: %v", err)
	}

	if _, err := s.CreateResourceUsage(ctx, NewResourceUsage{ServiceID: service.ID, CpuUsage: 50}); err != nil {
		t.Fatalf("create usage: %v", err)
	}

	if _, err := s.CreateActivity(ctx, NewActivity{Type: "deployment", Message: "deployed", UserID: &userID, ProjectID: &projectID}); err != nil {
		t.Fatalf("create activity: %v", err)
	}

	if err := s.DeleteProject(ctx, projectID); err != nil {
		t.Fatalf("delete project: %v", err)
	}

	if _, err := s.GetService(ctx, service.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected service gone, got %v", err)
	}

	usages, err := s.GetResourceUsage(ctx, service.ID)
	if err != nil {
		t.Fatalf("get usage: %v", err)
	}
	if len(usages) != 0 {
		t.Fatalf("expected usage rows gone, got %d", len(usages))
	}

	acts, err := s.GetActivitiesByProject(ctx, projectID, 10)
	if err != nil {
		t.Fatalf("get activities: %v", err)
	}
	if len(acts) != 0 {
		t.Fatalf("expected project activities gone, got %d", len(acts))
	}
}

func TestServiceConfigDefaultsToEmptyObject(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	_, projectID := newTestUserProject(t, s)

	service, err := s.CreateService(ctx, NewService{Name: "fn", Type: "function", ProjectID: projectID})
	if err != nil {
		t.Fatalf("create service: %v", err)
	}

	if string(service.Config) != "{}" {
		t.Fatalf("expected default config {}, got %s", service.Config)
	}
}

func TestServiceConfigRoundTrips(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	_, projectID := newTestUserProject(t, s)

	raw := `{"engine":"postgres","size":"medium","replicas":1}`
	service, err := s.CreateService(ctx, NewService{
		Name:      "db",
		Type:      "database",
		ProjectID: projectID,
		Config:    datatypes.JSON([]byte(raw)),
	})
	if err != nil {
		t.Fatalf("create service: %v", err)
	}

	stored, err := s.GetService(ctx, service.ID)
	if err != nil {
		t.Fatalf("get service: %v", err)
	}

	if string(stored.Config) != raw {
		t.Fatalf("config did not round-trip: %s", stored.Config)
	}
}

func TestActivityLimitDefaults(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	userID, projectID := newTestUserProject(t, s)

	for i := 0; i < 15; i++ {
		if _, err := s.CreateActivity(ctx, NewActivity{Type: "alert", Message: "m", UserID: &userID, ProjectID: &projectID}); err != nil {
			t.Fatalf("create activity: %v", err)
		}
	}

	acts, err := s.GetActivities(ctx, 0)
	if err != nil {
		t.Fatalf("get activities: %v", err)
	}
	if len(acts) != DefaultActivityLimit {
		t.Fatalf("expected default limit %d, got %d", DefaultActivityLimit, len(acts))
	}

	acts, err = s.GetActivities(ctx, 5)
	if err != nil {
		t.Fatalf("get activities: %v", err)
	}
	if len(acts) != 5 {
		t.Fatalf("expected 5 activities, got %d", len(acts))
	}
}
