package handlers

import (
	"context"
	"net/http"
	"sync"

	"second_brain/internal/models"
	"second_brain/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID      int
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseID       int
	parseErr      error

	lastSignUpUsername string
	lastSignUpPassword string
	lastGenUsername    string
	lastGenPassword    string
	lastParseToken     string
}

func (m *mockAuth) SignUp(_ context.Context, username, password string) (int, error) {
	m.lastSignUpUsername = username
	m.lastSignUpPassword = password
	return m.signUpID, m.signUpErr
}
func (m *mockAuth) GenerateToken(_ context.Context, username, password string) (string, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

type mockContent struct {
	added   models.Content
	addErr  error
	list    []models.Content
	listErr error
	delErr  error

	lastUserID int
	lastInput  service.ContentInput
	lastDelID  string
	addCalls   int
}

func (m *mockContent) Add(_ context.Context, userID int, in service.ContentInput) (models.Content, error) {
	m.addCalls++
	m.lastUserID = userID
	m.lastInput = in
	return m.added, m.addErr
}
func (m *mockContent) List(_ context.Context, userID int) ([]models.Content, error) {
	m.lastUserID = userID
	return m.list, m.listErr
}
func (m *mockContent) Delete(_ context.Context, userID int, contentID string) error {
	m.lastUserID = userID
	m.lastDelID = contentID
	return m.delErr
}

type mockBrain struct {
	mu sync.Mutex

	hash       string
	shareErr   error
	unshareErr error
	shared     models.SharedBrain
	sharedErr  error
	// sharedErrAfter > 0 makes Shared fail once it has been called that many times.
	sharedErrAfter int

	shareCalls   int
	unshareCalls int
	sharedCalls  int
	lastHash     string
}

func (m *mockBrain) Share(_ context.Context, _ int) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.shareCalls++
	return m.hash, m.shareErr
}
func (m *mockBrain) Unshare(_ context.Context, _ int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.unshareCalls++
	return m.unshareErr
}
func (m *mockBrain) Shared(_ context.Context, hash string) (models.SharedBrain, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sharedCalls++
	m.lastHash = hash
	if m.sharedErrAfter > 0 && m.sharedCalls > m.sharedErrAfter {
		return models.SharedBrain{}, service.ErrShareNotFound
	}
	return m.shared, m.sharedErr
}

type mockHealth struct {
	pingErr error
	report  service.HealthReport
}

func (m *mockHealth) PingStore(context.Context) error { return m.pingErr }
func (m *mockHealth) Check(context.Context) service.HealthReport {
	return m.report
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes(RouterOptions{AllowedOrigins: []string{"http://localhost:5173", "https://*.vercel.app"}})
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
