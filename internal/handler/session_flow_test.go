package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lernia/console-backend/internal/audit"
	"github.com/lernia/console-backend/internal/config"
	"github.com/lernia/console-backend/internal/handler"
	"github.com/lernia/console-backend/internal/router"
	"github.com/lernia/console-backend/internal/session"
	"github.com/lernia/console-backend/internal/upstream"
	"github.com/lernia/console-backend/internal/validator"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	validator.Setup()
	os.Exit(m.Run())
}

// fakePlatform simulates the platform's admin API. Setting expired forces
// 401 on every authenticated route.
type fakePlatform struct {
	srv      *httptest.Server
	expired  atomic.Bool
	requests atomic.Int64
}

func newFakePlatform() *fakePlatform {
	p := &fakePlatform{}
	p.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p.requests.Add(1)
		if r.URL.Path == "/api/admin/login" {
			var body struct {
				Email    string `json:"email"`
				Password string `json:"password"`
			}
			json.NewDecoder(r.Body).Decode(&body)
			if body.Password != "secret" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			w.Write([]byte(`{"success":true,"token":"upstream-tok","admin":{"_id":"a-1","name":"Root","email":"root@example.com"}}`))
			return
		}

		if r.Header.Get("Authorization") != "Bearer upstream-tok" || p.expired.Load() {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		switch {
		case r.URL.Path == "/api/admin/dashboard/stats":
			w.Write([]byte(`{"success":true,"stats":{"totalStudents":12,"totalTeachers":3,"totalCourses":5}}`))
		case r.URL.Path == "/api/admin/teachers" && r.Method == http.MethodGet:
			w.Write([]byte(`{"success":true,"teachers":[{"_id":"t-1","name":"Ada","email":"ada@example.com"}],"pagination":{"page":1,"limit":10,"total":1,"totalPages":1}}`))
		case strings.HasPrefix(r.URL.Path, "/api/admin/teachers/") && r.Method == http.MethodPut:
			w.Write([]byte(`{"success":true,"teacher":{"_id":"t-1","name":"Ada L","email":"ada@example.com"}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"success":false,"message":"not found"}`))
		}
	}))
	return p
}

func newTestRouter(t *testing.T, platformURL string) *gin.Engine {
	t.Helper()
	cfg := &config.Config{
		GinMode:         gin.TestMode,
		AdminAPIBaseURL: platformURL + "/api/admin",
		UpstreamTimeout: 5 * time.Second,
		SessionSecret:   "test-secret",
		SessionTTL:      time.Hour,
	}

	log := zerolog.Nop()
	client := upstream.New(cfg, log)
	manager := session.NewManager(client, session.NewMemoryStore(), cfg, log)
	recorder := audit.NopRecorder{}

	handlers := &router.Handlers{
		Session:      handler.NewSessionHandler(manager, log),
		Dashboard:    handler.NewDashboardHandler(client, manager),
		Teacher:      handler.NewTeacherHandler(client, manager, recorder, log),
		Student:      handler.NewStudentHandler(client, manager, recorder, log),
		Course:       handler.NewCourseHandler(client, manager, recorder, log),
		Quiz:         handler.NewQuizHandler(client, manager, recorder, log),
		Video:        handler.NewVideoHandler(client, manager, recorder, log),
		Withdrawal:   handler.NewWithdrawalHandler(client, manager, recorder, log),
		Verification: handler.NewVerificationHandler(client, manager, recorder, log),
		Support:      handler.NewSupportHandler(client, manager, recorder, log),
		Audit:        handler.NewAuditHandler(recorder),
	}
	return router.SetupRouter(manager, handlers, cfg)
}

func doJSON(r *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func loginToken(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := doJSON(r, http.MethodPost, "/console/v1/session/login", "", `{"email":"root@example.com","password":"secret"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data.Token)
	return resp.Data.Token
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Error.Code
}

func TestLoginAndAuthenticatedFlow(t *testing.T) {
	platform := newFakePlatform()
	defer platform.srv.Close()
	r := newTestRouter(t, platform.srv.URL)

	token := loginToken(t, r)

	w := doJSON(r, http.MethodGet, "/console/v1/dashboard/stats", token, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"totalStudents":12`)

	w = doJSON(r, http.MethodGet, "/console/v1/teachers?page=1&limit=10", token, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"ada@example.com"`)
	assert.Contains(t, w.Body.String(), `"pagination"`)
}

func TestLoginWithBadCredentials(t *testing.T) {
	platform := newFakePlatform()
	defer platform.srv.Close()
	r := newTestRouter(t, platform.srv.URL)

	w := doJSON(r, http.MethodPost, "/console/v1/session/login", "", `{"email":"root@example.com","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", errorCode(t, w))
}

func TestLoginValidatesPayload(t *testing.T) {
	platform := newFakePlatform()
	defer platform.srv.Close()
	r := newTestRouter(t, platform.srv.URL)

	w := doJSON(r, http.MethodPost, "/console/v1/session/login", "", `{"email":"not-an-email"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", errorCode(t, w))
}

func TestRequestWithoutTokenIsBlocked(t *testing.T) {
	platform := newFakePlatform()
	defer platform.srv.Close()
	r := newTestRouter(t, platform.srv.URL)

	before := platform.requests.Load()
	w := doJSON(r, http.MethodGet, "/console/v1/dashboard/stats", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "TOKEN_REQUIRED", errorCode(t, w))

	// Blocked at the gate: the platform never saw the request.
	assert.Equal(t, before, platform.requests.Load())
}

func TestUpstreamExpiryTearsDownSession(t *testing.T) {
	platform := newFakePlatform()
	defer platform.srv.Close()
	r := newTestRouter(t, platform.srv.URL)

	token := loginToken(t, r)
	platform.expired.Store(true)

	w := doJSON(r, http.MethodGet, "/console/v1/dashboard/stats", token, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "SESSION_EXPIRED", errorCode(t, w))

	// The session is gone, so the next request never reaches the platform.
	before := platform.requests.Load()
	w = doJSON(r, http.MethodGet, "/console/v1/dashboard/stats", token, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "SESSION_EXPIRED", errorCode(t, w))
	assert.Equal(t, before, platform.requests.Load())
}

func TestLogoutInvalidatesSession(t *testing.T) {
	platform := newFakePlatform()
	defer platform.srv.Close()
	r := newTestRouter(t, platform.srv.URL)

	token := loginToken(t, r)

	w := doJSON(r, http.MethodPost, "/console/v1/session/logout", token, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/console/v1/session/me", token, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "SESSION_EXPIRED", errorCode(t, w))
}

func TestMeReturnsStoredProfile(t *testing.T) {
	platform := newFakePlatform()
	defer platform.srv.Close()
	r := newTestRouter(t, platform.srv.URL)

	token := loginToken(t, r)
	before := platform.requests.Load()

	w := doJSON(r, http.MethodGet, "/console/v1/session/me", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"root@example.com"`)

	// The profile is served from the session store, not re-fetched.
	assert.Equal(t, before, platform.requests.Load())
}

func TestUpdateTeacherValidation(t *testing.T) {
	platform := newFakePlatform()
	defer platform.srv.Close()
	r := newTestRouter(t, platform.srv.URL)

	token := loginToken(t, r)

	w := doJSON(r, http.MethodPut, "/console/v1/teachers/t-1", token, `{"name":"","email":"bad"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", errorCode(t, w))

	w = doJSON(r, http.MethodPut, "/console/v1/teachers/t-1", token, `{"name":"Ada L","email":"ada@example.com"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"Ada L"`)
}

func TestUpstreamNotFoundIsRelayed(t *testing.T) {
	platform := newFakePlatform()
	defer platform.srv.Close()
	r := newTestRouter(t, platform.srv.URL)

	token := loginToken(t, r)

	w := doJSON(r, http.MethodGet, "/console/v1/students/missing", token, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", errorCode(t, w))
}

func TestQuizCreateValidationFields(t *testing.T) {
	platform := newFakePlatform()
	defer platform.srv.Close()
	r := newTestRouter(t, platform.srv.URL)

	token := loginToken(t, r)

	w := doJSON(r, http.MethodPost, "/console/v1/quizzes", token, `{"title":"Quiz"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", errorCode(t, w))

	var resp struct {
		Error struct {
			Fields map[string]string `json:"fields"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error.Fields, "questions")
	assert.Contains(t, resp.Error.Fields, "startDate")
}
