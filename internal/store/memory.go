package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/cloudforge-dev/cloudforge/internal/models"
	"gorm.io/datatypes"
)

// MemStore is an in-memory Store used by tests and demo mode. Ids are
// monotonic per entity and never reused, matching the production backend.
type MemStore struct {
	mu sync.RWMutex

	users    map[uint]models.User
	projects map[uint]models.Project
	services map[uint]models.Service
	usage    map[uint]models.ResourceUsage
	acts     map[uint]models.Activity
	health   map[uint]models.ServiceHealthStatus

	nextUserID    uint
	nextProjectID uint
	nextServiceID uint
	nextUsageID   uint
	nextActID     uint
	nextHealthID  uint
}

func NewMemStore() *MemStore {
	return &MemStore{
		users:    make(map[uint]models.User),
		projects: make(map[uint]models.Project),
		services: make(map[uint]models.Service),
		usage:    make(map[uint]models.ResourceUsage),
		acts:     make(map[uint]models.Activity),
		health:   make(map[uint]models.ServiceHealthStatus),

		nextUserID:    1,
		nextProjectID: 1,
		nextServiceID: 1,
		nextUsageID:   1,
		nextActID:     1,
		nextHealthID:  1,
	}
}

// Users

func (s *MemStore) GetUser(ctx context.Context, id uint) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (s *MemStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Username == username {
			u := user
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemStore) CreateUser(ctx context.Context, input NewUser) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	role := input.Role
	if role == "" {
		role = "user"
	}

	user := models.User{
		ID:       s.nextUserID,
		Username: input.Username,
		Password: input.Password,
		FullName: input.FullName,
		Avatar:   input.Avatar,
		Role:     role,
	}
	s.nextUserID++
	s.users[user.ID] = user

	return &user, nil
}

// Projects

func (s *MemStore) GetProject(ctx context.Context, id uint) (*models.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	project, ok := s.projects[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &project, nil
}

func (s *MemStore) GetProjects(ctx context.Context, userID uint) ([]models.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var projects []models.Project
	for _, project := range s.projects {
		if project.UserID == userID {
			projects = append(projects, project)
		}
	}
	sort.Slice(projects, func(i, j int) bool { return projects[i].ID < projects[j].ID })

	return projects, nil
}

func (s *MemStore) CreateProject(ctx context.Context, input NewProject) (*models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := input.Status
	if status == "" {
		status = "development"
	}

	project := models.Project{
		ID:           s.nextProjectID,
		Name:         input.Name,
		Status:       status,
		CreatedAt:    time.Now(),
		CostPerMonth: input.CostPerMonth,
		UserID:       input.UserID,
	}
	s.nextProjectID++
	s.projects[project.ID] = project

	return &project, nil
}

func (s *MemStore) UpdateProject(ctx context.Context, id uint, update ProjectUpdate) (*models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	project, ok := s.projects[id]
	if !ok {
		return nil, ErrNotFound
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

	s.projects[id] = project
	return &project, nil
}

func (s *MemStore) DeleteProject(ctx context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.projects[id]; !ok {
		return ErrNotFound
	}
	delete(s.projects, id)

	// Cascade: services under the project, their usage samples, and
	// project-scoped activities.
	for sid, service := range s.services {
		if service.ProjectID != id {
			continue
		}
		delete(s.services, sid)
		for uid, usage := range s.usage {
			if usage.ServiceID == sid {
				delete(s.usage, uid)
			}
		}
	}
	for aid, act := range s.acts {
		if act.ProjectID != nil && *act.ProjectID == id {
			delete(s.acts, aid)
		}
	}

	return nil
}

// Services

func (s *MemStore) GetService(ctx context.Context, id uint) (*models.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	service, ok := s.services[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &service, nil
}

func (s *MemStore) GetServices(ctx context.Context, projectID uint) ([]models.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var services []models.Service
	for _, service := range s.services {
		if service.ProjectID == projectID {
			services = append(services, service)
		}
	}
	sort.Slice(services, func(i, j int) bool { return services[i].ID < services[j].ID })

	return services, nil
}

func (s *MemStore) CreateService(ctx context.Context, input NewService) (*models.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := input.Status
	if status == "" {
		status = "active"
	}

	config := input.Config
	if len(config) == 0 {
		config = datatypes.JSON([]byte("{}"))
	}

	service := models.Service{
		ID:        s.nextServiceID,
		Name:      input.Name,
		Type:      input.Type,
		Status:    status,
		ProjectID: input.ProjectID,
		Config:    config,
		CreatedAt: time.Now(),
	}
	s.nextServiceID++
	s.services[service.ID] = service

	return &service, nil
}

func (s *MemStore) UpdateService(ctx context.Context, id uint, update ServiceUpdate) (*models.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	service, ok := s.services[id]
	if !ok {
		return nil, ErrNotFound
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

	s.services[id] = service
	return &service, nil
}

func (s *MemStore) DeleteService(ctx context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.services[id]; !ok {
		return ErrNotFound
	}
	delete(s.services, id)

	for uid, usage := range s.usage {
		if usage.ServiceID == id {
			delete(s.usage, uid)
		}
	}

	return nil
}

// Resource usage

func (s *MemStore) GetResourceUsage(ctx context.Context, serviceID uint) ([]models.ResourceUsage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var usages []models.ResourceUsage
	for _, usage := range s.usage {
		if usage.ServiceID == serviceID {
			usages = append(usages, usage)
		}
	}
	sort.Slice(usages, func(i, j int) bool {
		if usages[i].Timestamp.Equal(usages[j].Timestamp) {
			return usages[i].ID > usages[j].ID
		}
		return usages[i].Timestamp.After(usages[j].Timestamp)
	})

	return usages, nil
}

func (s *MemStore) CreateResourceUsage(ctx context.Context, input NewResourceUsage) (*models.ResourceUsage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ts := input.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	usage := models.ResourceUsage{
		ID:           s.nextUsageID,
		ServiceID:    input.ServiceID,
		CpuUsage:     input.CpuUsage,
		MemoryUsage:  input.MemoryUsage,
		StorageUsage: input.StorageUsage,
		NetworkUsage: input.NetworkUsage,
		Timestamp:    ts,
	}
	s.nextUsageID++
	s.usage[usage.ID] = usage

	return &usage, nil
}

// Activities

func (s *MemStore) listActivities(filter func(models.Activity) bool, limit int) []models.Activity {
	var activities []models.Activity
	for _, act := range s.acts {
		if filter(act) {
			activities = append(activities, act)
		}
	}
	sort.Slice(activities, func(i, j int) bool {
		if activities[i].Timestamp.Equal(activities[j].Timestamp) {
			return activities[i].ID > activities[j].ID
		}
		return activities[i].Timestamp.After(activities[j].Timestamp)
	})

	limit = normalizeLimit(limit)
	if len(activities) > limit {
		activities = activities[:limit]
	}

	return activities
}

func (s *MemStore) GetActivities(ctx context.Context, limit int) ([]models.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.listActivities(func(models.Activity) bool { return true }, limit), nil
}

func (s *MemStore) GetActivitiesByUser(ctx context.Context, userID uint, limit int) ([]models.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.listActivities(func(a models.Activity) bool {
		return a.UserID != nil && *a.UserID == userID
	}, limit), nil
}

func (s *MemStore) GetActivitiesByProject(ctx context.Context, projectID uint, limit int) ([]models.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.listActivities(func(a models.Activity) bool {
		return a.ProjectID != nil && *a.ProjectID == projectID
	}, limit), nil
}

func (s *MemStore) CreateActivity(ctx context.Context, input NewActivity) (*models.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	activity := models.Activity{
		ID:        s.nextActID,
		Type:      input.Type,
		Message:   input.Message,
		UserID:    input.UserID,
		ProjectID: input.ProjectID,
		ServiceID: input.ServiceID,
		Timestamp: time.Now(),
	}
	s.nextActID++
	s.acts[activity.ID] = activity

	return &activity, nil
}

// Service health

func (s *MemStore) GetServiceHealthStatuses(ctx context.Context) ([]models.ServiceHealthStatus, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var statuses []models.ServiceHealthStatus
	for _, status := range s.health {
		statuses = append(statuses, status)
	}
	sort.Slice(statuses, func(i, j int) bool { return statuses[i].ServiceType < statuses[j].ServiceType })

	return statuses, nil
}

func (s *MemStore) GetServiceHealthStatus(ctx context.Context, serviceType string) (*models.ServiceHealthStatus, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, status := range s.health {
		if status.ServiceType == serviceType {
			st := status
			return &st, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemStore) UpsertServiceHealthStatus(ctx context.Context, input HealthUpsert) (*models.ServiceHealthStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, status := range s.health {
		if status.ServiceType == input.ServiceType {
			status.Status = input.Status
			status.Uptime = input.Uptime
			status.LastUpdated = time.Now()
			s.health[id] = status
			return &status, nil
		}
	}

	status := models.ServiceHealthStatus{
		ID:          s.nextHealthID,
		ServiceType: input.ServiceType,
		Status:      input.Status,
		Uptime:      input.Uptime,
		LastUpdated: time.Now(),
	}
	s.nextHealthID++
	s.health[status.ID] = status

	return &status, nil
}
