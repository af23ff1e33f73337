package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"carebridge-org/carebridge/database"
	"carebridge-org/carebridge/models"
	"carebridge-org/carebridge/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type MockEventService struct {
	knownEventID uuid.UUID
	registered   map[string]bool
}

func newMockEventService() *MockEventService {
	return &MockEventService{
		knownEventID: uuid.Must(uuid.Parse("123e4567-e89b-12d3-a456-426614174000")),
		registered:   make(map[string]bool),
	}
}

func (m *MockEventService) CreateEvent(db *database.Database, event models.Event) (models.Event, error) {
	if event.Title == "" || event.StartsAt.IsZero() {
		return models.Event{}, services.ErrValidation
	}
	event.ID = uuid.New()
	return event, nil
}

func (m *MockEventService) GetEventById(db *database.Database, id string) (models.Event, error) {
	if id != m.knownEventID.String() {
		return models.Event{}, services.ErrEventNotFound
	}
	return models.Event{ID: m.knownEventID, Title: "Community Cleanup", Published: true}, nil
}

func (m *MockEventService) GetEvents(db *database.Database, params map[string]interface{}) ([]models.Event, error) {
	return []models.Event{{ID: m.knownEventID, Title: "Community Cleanup", Published: true}}, nil
}

func (m *MockEventService) UpdateEvent(db *database.Database, id string, updatedData models.Event) (models.Event, error) {
	if id != m.knownEventID.String() {
		return models.Event{}, services.ErrEventNotFound
	}
	return models.Event{ID: m.knownEventID, Title: updatedData.Title}, nil
}

func (m *MockEventService) DeleteEvent(db *database.Database, id string) error {
	if id != m.knownEventID.String() {
		return services.ErrEventNotFound
	}
	return nil
}

func (m *MockEventService) RegisterUser(db *database.Database, eventID string, userID uuid.UUID) (models.EventRegistration, error) {
	if eventID != m.knownEventID.String() {
		return models.EventRegistration{}, services.ErrEventNotFound
	}
	key := eventID + "/" + userID.String()
	if m.registered[key] {
		return models.EventRegistration{}, services.ErrAlreadyRegistered
	}
	m.registered[key] = true
	return models.EventRegistration{
		ID:      uuid.New(),
		EventID: m.knownEventID,
		UserID:  userID,
	}, nil
}

func (m *MockEventService) UnregisterUser(db *database.Database, eventID string, userID uuid.UUID) error {
	key := eventID + "/" + userID.String()
	if !m.registered[key] {
		return services.ErrNotFound
	}
	delete(m.registered, key)
	return nil
}

func (m *MockEventService) GetRegistrations(db *database.Database, eventID string) ([]models.EventRegistration, error) {
	return []models.EventRegistration{}, nil
}

func setupEventRouter(svc services.EventServiceInterface, userID uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")

	public := api.Group("")
	protected := api.Group("")
	protected.Use(func(c *gin.Context) {
		c.Set("userID", userID)
		c.Set("role", string(models.RoleDonor))
	})
	admin := api.Group("/admin")

	RegisterEventRoutes(public, protected, admin, &database.Database{}, svc)
	return router
}

func TestRegisterForEvent_Success(t *testing.T) {
	svc := newMockEventService()
	router := setupEventRouter(svc, uuid.New())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/events/"+svc.knownEventID.String()+"/register", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestRegisterForEvent_Duplicate(t *testing.T) {
	svc := newMockEventService()
	userID := uuid.New()
	router := setupEventRouter(svc, userID)

	path := "/api/v1/events/" + svc.knownEventID.String() + "/register"

	first := httptest.NewRecorder()
	req1, _ := http.NewRequest(http.MethodPost, path, nil)
	router.ServeHTTP(first, req1)
	assert.Equal(t, http.StatusCreated, first.Code)

	second := httptest.NewRecorder()
	req2, _ := http.NewRequest(http.MethodPost, path, nil)
	router.ServeHTTP(second, req2)
	assert.Equal(t, http.StatusConflict, second.Code)
}

func TestRegisterForEvent_UnknownEvent(t *testing.T) {
	svc := newMockEventService()
	router := setupEventRouter(svc, uuid.New())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/events/"+uuid.New().String()+"/register", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUnregisterFromEvent_NotRegistered(t *testing.T) {
	svc := newMockEventService()
	router := setupEventRouter(svc, uuid.New())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodDelete, "/api/v1/events/"+svc.knownEventID.String()+"/register", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetPublishedEvents(t *testing.T) {
	svc := newMockEventService()
	router := setupEventRouter(svc, uuid.New())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/events/", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
