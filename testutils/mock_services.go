package testutils

import (
	"sync"

	"github.com/stretchr/testify/mock"

	"reminder-app/reminder/database"
	"reminder-app/reminder/models"
	"reminder-app/reminder/services"
)

// MockTaskService mocks the TaskServiceInterface for testing
type MockTaskService struct {
	mock.Mock
}

func (m *MockTaskService) CreateTask(db *database.Database, actor models.User, input services.TaskInput) (models.Task, error) {
	args := m.Called(db, actor, input)
	return args.Get(0).(models.Task), args.Error(1)
}

func (m *MockTaskService) GetTaskById(db *database.Database, id uint) (models.Task, error) {
	args := m.Called(db, id)
	return args.Get(0).(models.Task), args.Error(1)
}

func (m *MockTaskService) UpdateTask(db *database.Database, id uint, actor models.User, input services.TaskInput) (models.Task, error) {
	args := m.Called(db, id, actor, input)
	return args.Get(0).(models.Task), args.Error(1)
}

func (m *MockTaskService) SetStatus(db *database.Database, id uint, status models.Status, actorID uint) (models.Task, error) {
	args := m.Called(db, id, status, actorID)
	return args.Get(0).(models.Task), args.Error(1)
}

func (m *MockTaskService) DeleteTask(db *database.Database, id uint, actorID uint) error {
	args := m.Called(db, id, actorID)
	return args.Error(0)
}

func (m *MockTaskService) GetTasks(db *database.Database, filter services.TaskFilter) ([]models.Task, error) {
	args := m.Called(db, filter)
	return args.Get(0).([]models.Task), args.Error(1)
}

func (m *MockTaskService) GetOpenTasksForAssignee(db *database.Database, assigneeID uint) ([]models.Task, error) {
	args := m.Called(db, assigneeID)
	return args.Get(0).([]models.Task), args.Error(1)
}

// MockUserService mocks the UserServiceInterface for testing
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) CreateUser(db *database.Database, name string) (models.User, error) {
	args := m.Called(db, name)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *MockUserService) GetUserById(db *database.Database, id uint) (models.User, error) {
	args := m.Called(db, id)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *MockUserService) GetUserByName(db *database.Database, name string) (models.User, error) {
	args := m.Called(db, name)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *MockUserService) GetUsers(db *database.Database) ([]models.User, error) {
	args := m.Called(db)
	return args.Get(0).([]models.User), args.Error(1)
}

// RecordingProducer keeps every published event in memory.
type RecordingProducer struct {
	mu     sync.Mutex
	Events []*models.Event
	Err    error
}

func (p *RecordingProducer) Publish(event *models.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.Err != nil {
		return p.Err
	}
	p.Events = append(p.Events, event)
	return nil
}

func (p *RecordingProducer) Close() {}

// Types returns the event names in publish order.
func (p *RecordingProducer) Types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	types := make([]string, 0, len(p.Events))
	for _, e := range p.Events {
		types = append(types, e.Event)
	}
	return types
}
