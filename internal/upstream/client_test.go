package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lernia/console-backend/internal/config"
	"github.com/lernia/console-backend/internal/forms"
	"github.com/lernia/console-backend/internal/model"
)

func testClient(srv *httptest.Server) *Client {
	cfg := &config.Config{
		AdminAPIBaseURL:        srv.URL + "/api/admin",
		SupportAPIBaseURL:      srv.URL + "/api/support",
		VerificationAPIBaseURL: srv.URL + "/api/verification",
		UpstreamTimeout:        5 * time.Second,
	}
	return New(cfg, zerolog.Nop())
}

func TestCallInjectsBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"teachers":[],"pagination":null}`))
	}))
	defer srv.Close()

	client := testClient(srv)
	ctx := WithToken(context.Background(), "tok-123")
	_, _, err := client.ListTeachers(ctx, 1, 10, "")
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestCallWithoutTokenSendsNoAuthHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	client := testClient(srv)
	err := client.DeleteTeacher(context.Background(), "t-1")
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestUnauthorizedAlwaysMapsToSessionExpired(t *testing.T) {
	bodies := []string{
		`{"success":false,"message":"token expired"}`,
		`{"success":true}`,
		`not even json`,
	}
	for _, body := range bodies {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(body))
		}))
		client := testClient(srv)

		_, _, err := client.ListTeachers(context.Background(), 1, 10, "")
		assert.ErrorIs(t, err, ErrSessionExpired, "body: %s", body)
		srv.Close()
	}
}

func TestForbiddenMapsToSessionExpired(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	client := testClient(srv)
	_, err := client.DashboardStats(context.Background())
	assert.ErrorIs(t, err, ErrSessionExpired)
}

func TestSuccessFalseIsRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"message":"insufficient balance"}`))
	}))
	defer srv.Close()

	client := testClient(srv)
	err := client.ApproveWithdrawal(context.Background(), "w-1")
	rej, ok := AsRejection(err)
	require.True(t, ok)
	assert.Equal(t, "insufficient balance", rej.Message)
}

func TestErrorStatusCarriesServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"success":false,"message":"reason is required"}`))
	}))
	defer srv.Close()

	client := testClient(srv)
	err := client.RejectWithdrawal(context.Background(), "w-1", "")
	rej, ok := AsRejection(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, rej.StatusCode)
	assert.Equal(t, "reason is required", rej.Message)
}

func TestNetworkErrorIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	client := testClient(srv)
	_, _, err := client.ListStudents(context.Background(), 1, 10, "")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestLoginReturnsTokenAndProfile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/admin/login", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		w.Write([]byte(`{"success":true,"token":"tok-abc","admin":{"_id":"a-1","name":"Root","email":"root@example.com"}}`))
	}))
	defer srv.Close()

	client := testClient(srv)
	token, profile, err := client.Login(context.Background(), "root@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", token)
	assert.Equal(t, "a-1", profile.ID)
	assert.Equal(t, "Root", profile.Name)
}

func TestLoginUnauthorizedIsCredentialRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := testClient(srv)
	_, _, err := client.Login(context.Background(), "root@example.com", "wrong")
	assert.NotErrorIs(t, err, ErrSessionExpired)
	rej, ok := AsRejection(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, rej.StatusCode)
}

func TestLoginWithoutTokenInBodyFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"admin":{"_id":"a-1"}}`))
	}))
	defer srv.Close()

	client := testClient(srv)
	_, _, err := client.Login(context.Background(), "root@example.com", "secret")
	assert.Error(t, err)
}

func TestCreateCourseMultipartFields(t *testing.T) {
	var parsed *http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		parsed = r
		w.Write([]byte(`{"success":true,"course":{"_id":"c-1"}}`))
	}))
	defer srv.Close()

	client := testClient(srv)
	payload := model.CoursePayload{
		Title:       "Physics",
		Description: "Mechanics",
		Price:       49.9,
		Details: &model.CourseDetails{
			Duration:     "6 weeks",
			Requirements: []string{"Algebra", "Trigonometry"},
		},
	}
	thumb := forms.FileAttachment("cover.png", []byte{0x89, 0x50})

	course, err := client.CreateCourse(context.Background(), payload, thumb)
	require.NoError(t, err)
	assert.Equal(t, "c-1", course.ID)

	form := parsed.MultipartForm
	assert.Equal(t, "Physics", form.Value["title"][0])
	assert.Equal(t, "49.9", form.Value["price"][0])
	assert.Equal(t, "6 weeks", form.Value["details[duration]"][0])
	assert.Equal(t, []string{"Algebra", "Trigonometry"}, form.Value["details[requirements][]"])
	assert.NotContains(t, form.Value, "details[level]")
	require.Len(t, form.File["thumbnail"], 1)
	assert.Equal(t, "cover.png", form.File["thumbnail"][0].Filename)
}

func TestCreateCourseRemoteThumbnailIsTextField(t *testing.T) {
	var parsed *http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		parsed = r
		w.Write([]byte(`{"success":true,"course":{"_id":"c-2"}}`))
	}))
	defer srv.Close()

	client := testClient(srv)
	payload := model.CoursePayload{Title: "Physics", Description: "Mechanics", Price: 0}
	thumb := forms.RemoteAttachment("https://cdn.example.com/cover.png")

	_, err := client.CreateCourse(context.Background(), payload, thumb)
	require.NoError(t, err)

	form := parsed.MultipartForm
	assert.Equal(t, "https://cdn.example.com/cover.png", form.Value["thumbnail"][0])
	assert.Empty(t, form.File["thumbnail"])
}

func TestPlaylistMountsBesideAdminNamespace(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"success":true,"items":[]}`))
	}))
	defer srv.Close()

	client := testClient(srv)
	_, err := client.CoursePlaylist(context.Background(), "c-1")
	require.NoError(t, err)
	assert.Equal(t, "/api/playlists/c-1/items", gotPath)
}

func TestVerificationListKeyedByRole(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "/teacher/pending")
		w.Write([]byte(`{"success":true,"count":2,"teachers":[{"_id":"v-1"},{"_id":"v-2"}],"students":[{"_id":"v-9"}]}`))
	}))
	defer srv.Close()

	client := testClient(srv)
	reqs, err := client.PendingVerifications(context.Background(), model.VerificationRoleTeacher)
	require.NoError(t, err)
	require.Len(t, reqs, 2)
	assert.Equal(t, "v-1", reqs[0].ID)
}

func TestListQueryEncodesSearch(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"success":true,"quizzes":[]}`))
	}))
	defer srv.Close()

	client := testClient(srv)
	_, _, err := client.ListQuizzes(context.Background(), 2, 25, "algebra")
	require.NoError(t, err)
	assert.Contains(t, gotQuery, "page=2")
	assert.Contains(t, gotQuery, "limit=25")
	assert.Contains(t, gotQuery, "search=algebra")
}
