package store

import (
	"context"
	"errors"
	"time"

	"github.com/cloudforge-dev/cloudforge/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// GormStore is the production Store backed by Postgres through GORM.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// Users

func (s *GormStore) GetUser(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *GormStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *GormStore) CreateUser(ctx context.Context, input NewUser) (*models.User, error) {
	role := input.Role
	if role == "" {
		role = "user"
	}

	user := models.User{
		Username: input.Username,
		Password: input.Password,
		FullName: input.FullName,
		Avatar:   input.Avatar,
		Role:     role,
	}

	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

// Projects

func (s *GormStore) GetProject(ctx context.Context, id uint) (*models.Project, error) {
	var project models.Project
	if err := s.db.WithContext(ctx).First(&project, id).Error; err != nil {
		return nil, translate(err)
	}
	return &project, nil
}

func (s *GormStore) GetProjects(ctx context.Context, userID uint) ([]models.Project, error) {
	var projects []models.Project
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func (s *GormStore) CreateProject(ctx context.Context, input NewProject) (*models.Project, error) {
	status := input.Status
	if status == "" {
		status = "development"
	}

	project := models.Project{
		Name:         input.Name,
		Status:       status,
		CreatedAt:    time.Now(),
		CostPerMonth: input.CostPerMonth,
		UserID:       input.UserID,
	}

	if err := s.db.WithContext(ctx).Create(&project).Error; err != nil {
		return nil, err
	}

	return &project, nil
}

func (s *GormStore) UpdateProject(ctx context.Context, id uint, update ProjectUpdate) (*models.Project, error) {
	var project models.Project
	if err := s.db.WithContext(ctx).First(&project, id).Error; err != nil {
		return nil, translate(err)
	}

	if update.Name != nil {
		project.Name = *update.Name
	}
	if update.Status != nil {
		project.Status = *update.Status
	}
	if update.LastDeployed != nil {
		project.LastDeployed = update.LastDeployed
	}
	if update.CostPerMonth != nil {
		project.CostPerMonth = *update.CostPerMonth
	}

	if err := s.db.WithContext(ctx).Save(&project).Error; err != nil {
		return nil, err
	}

	return &project, nil
}

func (s *GormStore) DeleteProject(ctx context.Context, id uint) error {
	// CASCADE constraints on services, usage, and activities handle the
	// dependent rows; project-scoped activities go with the project.
	result := s.db.WithContext(ctx).Delete(&models.Project{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Services

func (s *GormStore) GetService(ctx context.Context, id uint) (*models.Service, error) {
	var service models.Service
	if err := s.db.WithContext(ctx).First(&service, id).Error; err != nil {
		return nil, translate(err)
	}
	return &service, nil
}

func (s *GormStore) GetServices(ctx context.Context, projectID uint) ([]models.Service, error) {
	var services []models.Service
	if err := s.db.WithContext(ctx).Where("project_id = ?", projectID).Order("id").Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (s *GormStore) CreateService(ctx context.Context, input NewService) (*models.Service, error) {
	status := input.Status
	if status == "" {
		status = "active"
	}

	config := input.Config
	if len(config) == 0 {
		config = datatypes.JSON([]byte("{}"))
	}

	service := models.Service{
		Name:      input.Name,
		Type:      input.Type,
		Status:    status,
		ProjectID: input.ProjectID,
		Config:    config,
		CreatedAt: time.Now(),
	}

	if err := s.db.WithContext(ctx).Create(&service).Error; err != nil {
		return nil, err
	}

	return &service, nil
}

func (s *GormStore) UpdateService(ctx context.Context, id uint, update ServiceUpdate) (*models.Service, error) {
	var service models.Service
	if err := s.db.WithContext(ctx).First(&service, id).Error; err != nil {
		return nil, translate(err)
	}

	if update.Name != nil {
		service.Name = *update.Name
	}
	if update.Type != nil {
		service.Type = *update.Type
	}
	if update.Status != nil {
		service.Status = *update.Status
	}
	if update.Config != nil {
		service.Config = update.Config
	}

	if err := s.db.WithContext(ctx).Save(&service).Error; err != nil {
		return nil, err
	}

	return &service, nil
}

func (s *GormStore) DeleteService(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.Service{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Resource usage

func (s *GormStore) GetResourceUsage(ctx context.Context, serviceID uint) ([]models.ResourceUsage, error) {
	var usages []models.ResourceUsage
	if err := s.db.WithContext(ctx).
		Where("service_id = ?", serviceID).
		Order("timestamp DESC").
		Find(&usages).Error; err != nil {
		return nil, err
	}
	return usages, nil
}

func (s *GormStore) CreateResourceUsage(ctx context.Context, input NewResourceUsage) (*models.ResourceUsage, error) {
	ts := input.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	usage := models.ResourceUsage{
		ServiceID:    input.ServiceID,
		CpuUsage:     input.CpuUsage,
		MemoryUsage:  input.MemoryUsage,
		StorageUsage: input.StorageUsage,
		NetworkUsage: input.NetworkUsage,
		Timestamp:    ts,
	}

	if err := s.db.WithContext(ctx).Create(&usage).Error; err != nil {
		return nil, err
	}

	return &usage, nil
}

// Activities

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultActivityLimit
	}
	return limit
}

func (s *GormStore) GetActivities(ctx context.Context, limit int) ([]models.Activity, error) {
	var activities []models.Activity
	if err := s.db.WithContext(ctx).
		Order("timestamp DESC, id DESC").
		Limit(normalizeLimit(limit)).
		Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}

func (s *GormStore) GetActivitiesByUser(ctx context.Context, userID uint, limit int) ([]models.Activity, error) {
	var activities []models.Activity
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp DESC, id DESC").
		Limit(normalizeLimit(limit)).
		Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}

func (s *GormStore) GetActivitiesByProject(ctx context.Context, projectID uint, limit int) ([]models.Activity, error) {
	var activities []models.Activity
	if err := s.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("timestamp DESC, id DESC").
		Limit(normalizeLimit(limit)).
		Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}

func (s *GormStore) CreateActivity(ctx context.Context, input NewActivity) (*models.Activity, error) {
	activity := models.Activity{
		Type:      input.Type,
		Message:   input.Message,
		UserID:    input.UserID,
		ProjectID: input.ProjectID,
		ServiceID: input.ServiceID,
		Timestamp: time.Now(),
	}

	if err := s.db.WithContext(ctx).Create(&activity).Error; err != nil {
		return nil, err
	}

	return &activity, nil
}

// Service health

func (s *GormStore) GetServiceHealthStatuses(ctx context.Context) ([]models.ServiceHealthStatus, error) {
	var statuses []models.ServiceHealthStatus
	if err := s.db.WithContext(ctx).Order("service_type").Find(&statuses).Error; err != nil {
		return nil, err
	}
	return statuses, nil
}

func (s *GormStore) GetServiceHealthStatus(ctx context.Context, serviceType string) (*models.ServiceHealthStatus, error) {
	var status models.ServiceHealthStatus
	if err := s.db.WithContext(ctx).Where("service_type = ?", serviceType).First(&status).Error; err != nil {
		return nil, translate(err)
	}
	return &status, nil
}

func (s *GormStore) UpsertServiceHealthStatus(ctx context.Context, input HealthUpsert) (*models.ServiceHealthStatus, error) {
	var status models.ServiceHealthStatus
	err := s.db.WithContext(ctx).Where("service_type = ?", input.ServiceType).First(&status).Error

	switch {
	case err == nil:
		status.Status = input.Status
		status.Uptime = input.Uptime
		status.LastUpdated = time.Now()
		if err := s.db.WithContext(ctx).Save(&status).Error; err != nil {
			return nil, err
		}
		return &status, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		status = models.ServiceHealthStatus{
			ServiceType: input.ServiceType,
			Status:      input.Status,
			Uptime:      input.Uptime,
			LastUpdated: time.Now(),
		}
		if err := s.db.WithContext(ctx).Create(&status).Error; err != nil {
			return nil, err
		}
		return &status, nil
	default:
		return nil, err
	}
}
