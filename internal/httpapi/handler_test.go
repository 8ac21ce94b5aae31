package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nlohrer/practice-tracker/internal/contract"
	"github.com/nlohrer/practice-tracker/internal/repository"
	"github.com/nlohrer/practice-tracker/internal/service"
	"github.com/nlohrer/practice-tracker/internal/testutil"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	database := testutil.NewTestDB(t)
	sessions := service.NewSessionService(repository.NewSQLiteSessionRepo(database))
	users := service.NewUserService(repository.NewSQLiteUserRepo(database))
	return NewRouter(sessions, users, zerolog.Nop())
}

func doJSON(t *testing.T, handler http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func strPtr(s string) *string { return &s }

func TestCreateThenGetSession(t *testing.T) {
	router := newTestRouter(t)

	req := contract.Session{
		Task:     "learn",
		Duration: contract.Duration{Hours: 2, Minutes: 30},
		Date:     strPtr("2020-02-15"),
		Time:     strPtr("06:30:00"),
	}
	rec := doJSON(t, router, http.MethodPost, "/api/sessions", req)
	require.Equal(t, http.StatusCreated, rec.Code)

	location := rec.Header().Get("Location")
	require.NotEmpty(t, location)

	getRec := doJSON(t, router, http.MethodGet, location, nil)
	require.Equal(t, http.StatusOK, getRec.Code)

	fetched := decodeBody[contract.SessionResponse](t, getRec)
	assert.Equal(t, req, fetched.Session)
}

func TestGetSession_NotFound(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/sessions/100", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetSession_InvalidID(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/sessions/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateSession_ValidationErrorWithFieldDetail(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/sessions", contract.Session{
		Duration: contract.Duration{Hours: 26},
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	verr := decodeBody[contract.ValidationError](t, rec)
	assert.Contains(t, verr.Fields, "task")
	assert.Contains(t, verr.Fields, "duration.hours")
}

func TestCreateSession_MalformedBody(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/sessions", bytes.NewReader([]byte("{")))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateSession(t *testing.T) {
	router := newTestRouter(t)

	created := decodeBody[contract.SessionResponse](t, doJSON(t, router, http.MethodPost, "/api/sessions",
		contract.Session{Task: "learn math", Duration: contract.Duration{Hours: 1, Minutes: 15}}))

	rec := doJSON(t, router, http.MethodPut, "/api/sessions/1", contract.Session{
		Task:     "play cello",
		Duration: contract.Duration{Hours: 1, Minutes: 30},
	})
	require.Equal(t, http.StatusNoContent, rec.Code)

	fetched := decodeBody[contract.SessionResponse](t, doJSON(t, router, http.MethodGet, "/api/sessions/1", nil))
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, "play cello", fetched.Task)
}

func TestUpdateSession_NotFound(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPut, "/api/sessions/100", contract.Session{
		Task:     "play cello",
		Duration: contract.Duration{Hours: 1},
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteSession_Twice(t *testing.T) {
	router := newTestRouter(t)

	doJSON(t, router, http.MethodPost, "/api/sessions",
		contract.Session{Task: "learn", Duration: contract.Duration{Hours: 2, Minutes: 45}})

	first := doJSON(t, router, http.MethodDelete, "/api/sessions/1", nil)
	assert.Equal(t, http.StatusNoContent, first.Code)

	second := doJSON(t, router, http.MethodDelete, "/api/sessions/1", nil)
	assert.Equal(t, http.StatusNotFound, second.Code)
}

func TestListSessions_ByUsername(t *testing.T) {
	router := newTestRouter(t)

	doJSON(t, router, http.MethodPost, "/api/sessions?username=anna",
		contract.Session{Task: "for anna", Duration: contract.Duration{Hours: 1}})
	doJSON(t, router, http.MethodPost, "/api/sessions",
		contract.Session{Task: "unassigned", Duration: contract.Duration{Minutes: 30}})

	annas := decodeBody[[]contract.SessionResponse](t, doJSON(t, router, http.MethodGet, "/api/sessions?username=anna", nil))
	require.Len(t, annas, 1)
	assert.Equal(t, "for anna", annas[0].Task)

	unassigned := decodeBody[[]contract.SessionResponse](t, doJSON(t, router, http.MethodGet, "/api/sessions", nil))
	require.Len(t, unassigned, 1)
	assert.Equal(t, "unassigned", unassigned[0].Task)
}

func TestSearchSessions(t *testing.T) {
	router := newTestRouter(t)

	for _, s := range []contract.Session{
		{Task: "play violin", Duration: contract.Duration{Hours: 2, Minutes: 30}, Date: strPtr("2020-02-15")},
		{Task: "learn math", Duration: contract.Duration{Hours: 1, Minutes: 15}, Date: strPtr("2020-09-03")},
		{Task: "learn violin", Duration: contract.Duration{Hours: 1}, Date: strPtr("2021-09-04")},
	} {
		doJSON(t, router, http.MethodPost, "/api/sessions", s)
	}

	rec := doJSON(t, router, http.MethodPost, "/api/sessions/search", contract.SessionSearch{Task: strPtr("VioLIn")})
	require.Equal(t, http.StatusOK, rec.Code)

	found := decodeBody[[]contract.Session](t, rec)
	names := make([]string, 0, len(found))
	for _, s := range found {
		names = append(names, s.Task)
	}
	assert.ElementsMatch(t, []string{"play violin", "learn violin"}, names)
}

func TestSummary_RequiresUsername(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/sessions/summary", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSummary_UnknownUserIsZero(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/sessions/summary?username=nobody", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	result := decodeBody[contract.SessionSummary](t, rec)
	assert.Equal(t, contract.SessionSummary{}, result)
}

func TestUserLifecycle(t *testing.T) {
	router := newTestRouter(t)

	created := doJSON(t, router, http.MethodPost, "/api/users", contract.User{Username: "anna", Group: strPtr("strings")})
	require.Equal(t, http.StatusCreated, created.Code)
	assert.NotEmpty(t, created.Header().Get("Location"))

	list := decodeBody[[]contract.User](t, doJSON(t, router, http.MethodGet, "/api/users", nil))
	require.Len(t, list, 1)
	assert.Equal(t, "anna", list[0].Username)

	rec := doJSON(t, router, http.MethodDelete, "/api/users/1", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, router, http.MethodDelete, "/api/users/1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateUser_ValidationError(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/users", contract.User{})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	verr := decodeBody[contract.ValidationError](t, rec)
	assert.Contains(t, verr.Fields, "username")
}
