package store

import (
	"context"
	"errors"
	"time"

	"github.com/cloudforge-dev/cloudforge/internal/models"
	"gorm.io/datatypes"
)

// ErrNotFound is returned when the referenced row does not exist. Updates
// and deletes against a missing id return it rather than silently succeeding.
var ErrNotFound = errors.New("store: not found")

// DefaultActivityLimit caps activity reads when the caller supplies no limit.
const DefaultActivityLimit = 10

type NewUser struct {
	Username string
	Password string // already hashed
	FullName string
	Avatar   string
	Role     string
}

type NewProject struct {
	Name         string
	Status       string
	CostPerMonth float64
	UserID       uint
}

// ProjectUpdate carries a partial update; nil fields are left untouched.
type ProjectUpdate struct {
	Name         *string
	Status       *string
	LastDeployed *time.Time
	CostPerMonth *float64
}

type NewService struct {
	Name      string
	Type      string
	Status    string
	ProjectID uint
	Config    datatypes.JSON
}

type ServiceUpdate struct {
	Name   *string
	Type   *string
	Status *string
	Config datatypes.JSON // nil means unchanged
}

type NewResourceUsage struct {
	ServiceID    uint
	CpuUsage     float64
	MemoryUsage  float64
	StorageUsage float64
	NetworkUsage float64
	Timestamp    time.Time // zero means "now"
}

type NewActivity struct {
	Type      string
	Message   string
	UserID    *uint
	ProjectID *uint
	ServiceID *uint
}

type HealthUpsert struct {
	ServiceType string
	Status      string
	Uptime      float64
}

// Store is the uniform persistence surface over the six entity kinds.
// Implementations assign strictly increasing ids per entity and never
// reuse an id after delete.
type Store interface {
	// Users
	GetUser(ctx context.Context, id uint) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	CreateUser(ctx context.Context, input NewUser) (*models.User, error)

	// Projects
	GetProject(ctx context.Context, id uint) (*models.Project, error)
	GetProjects(ctx context.Context, userID uint) ([]models.Project, error)
	CreateProject(ctx context.Context, input NewProject) (*models.Project, error)
	UpdateProject(ctx context.Context, id uint, update ProjectUpdate) (*models.Project, error)
	// DeleteProject removes the project together with its services, their
	// usage samples, and project-scoped activities.
	DeleteProject(ctx context.Context, id uint) error

	// Services
	GetService(ctx context.Context, id uint) (*models.Service, error)
	GetServices(ctx context.Context, projectID uint) ([]models.Service, error)
	CreateService(ctx context.Context, input NewService) (*models.Service, error)
	UpdateService(ctx context.Context, id uint, update ServiceUpdate) (*models.Service, error)
	DeleteService(ctx context.Context, id uint) error

	// Resource usage, append-only; reads are descending by timestamp.
	GetResourceUsage(ctx context.Context, serviceID uint) ([]models.ResourceUsage, error)
	CreateResourceUsage(ctx context.Context, input NewResourceUsage) (*models.ResourceUsage, error)

	// Activities, append-only; reads are descending by timestamp.
	GetActivities(ctx context.Context, limit int) ([]models.Activity, error)
	GetActivitiesByUser(ctx context.Context, userID uint, limit int) ([]models.Activity, error)
	GetActivitiesByProject(ctx context.Context, projectID uint, limit int) ([]models.Activity, error)
	CreateActivity(ctx context.Context, input NewActivity) (*models.Activity, error)

	// Service health board, keyed by service type rather than surrogate id.
	GetServiceHealthStatuses(ctx context.Context) ([]models.ServiceHealthStatus, error)
	GetServiceHealthStatus(ctx context.Context, serviceType string) (*models.ServiceHealthStatus, error)
	UpsertServiceHealthStatus(ctx context.Context, input HealthUpsert) (*models.ServiceHealthStatus, error)
}
