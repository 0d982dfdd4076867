package db

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/cloudforge-dev/cloudforge/internal/store"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
)

var healthBoardTypes = []string{
	"compute", "database", "storage", "function", "network", "web3", "spatial", "3d_amp",
}

type seedService struct {
	name    string
	svcType string
	config  string
}

var demoServices = []seedService{
	{"Product Database", "database", `{"engine":"postgres","size":"medium","replicas":1}`},
	{"Web Server", "compute", `{"cpu":2,"memory":"4GB","scaling":"auto"}`},
	{"Customer Data Store", "storage", `{"type":"object","redundancy":"high"}`},
	{"User Authentication", "web3", `{"provider":"oasis","features":["sso","mfa","passwordless"]}`},
	{"Product Visualization", "3d_amp", `{"renderer":"webgl","quality":"high"}`},
	{"Store Locator", "spatial", `{"provider":"mapbox","features":["routing","geocoding"]}`},
}

// SeedDemoData populates the store with the demo account, a sample project
// with services across the type spectrum, the health board, and a few
// activities. Safe to call repeatedly; it is a no-op once the demo user
// exists.
func SeedDemoData(ctx context.Context, s store.Store) error {
	if _, err := s.GetUserByUsername(ctx, "demo"); err == nil {
		return nil
	} else if !errors.Is(err, store.ErrNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user, err := s.CreateUser(ctx, store.NewUser{
		Username: "demo",
		Password: string(hash),
		FullName: "Alex Morgan",
		Role:     "user",
	})
	if err != nil {
		return err
	}

	project, err := s.CreateProject(ctx, store.NewProject{
		Name:         "E-commerce Platform",
		Status:       "production",
		CostPerMonth: 249.99,
		UserID:       user.ID,
	})
	if err != nil {
		return err
	}

	for _, svc := range demoServices {
		created, err := s.CreateService(ctx, store.NewService{
			Name:      svc.name,
			Type:      svc.svcType,
			Status:    "active",
			ProjectID: project.ID,
			Config:    datatypes.JSON([]byte(svc.config)),
		})
		if err != nil {
			return err
		}

		if _, err := s.CreateResourceUsage(ctx, store.NewResourceUsage{
			ServiceID:    created.ID,
			CpuUsage:     35,
			MemoryUsage:  48,
			StorageUsage: 52,
			NetworkUsage: 27,
		}); err != nil {
			return err
		}
	}

	for _, serviceType := range healthBoardTypes {
		if _, err := s.UpsertServiceHealthStatus(ctx, store.HealthUpsert{
			ServiceType: serviceType,
			Status:      "operational",
			Uptime:      99.98,
		}); err != nil {
			return err
		}
	}

	if _, err := s.CreateActivity(ctx, store.NewActivity{
		Type:      "project_created",
		Message:   fmt.Sprintf("%s project created", project.Name),
		UserID:    &user.ID,
		ProjectID: &project.ID,
	}); err != nil {
		return err
	}

	if _, err := s.CreateActivity(ctx, store.NewActivity{
		Type:      "deployment",
		Message:   "Web Server successfully deployed",
		UserID:    &user.ID,
		ProjectID: &project.ID,
	}); err != nil {
		return err
	}

	log.Println("Demo data seeded")
	return nil
}
