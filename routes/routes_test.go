package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"doctorsportal/handlers"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticRoles map[string]bool

func (s staticRoles) IsAdmin(ctx context.Context, email string) (bool, error) {
	return s[email], nil
}

func ok(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"handler": name})
	}
}

func newTestEngine(t *testing.T) (*gin.Engine, *utils.TokenManager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens, err := utils.NewTokenManager("routes-secret", time.Hour)
	require.NoError(t, err)

	hb := &handlers.HandlerBundle{
		Tokens:                    tokens,
		Roles:                     staticRoles{"boss@x.com": true},
		GetServicesHandler:        ok("services"),
		GetAvailableHandler:       ok("available"),
		CreateBookingHandler:      ok("createBooking"),
		GetPatientBookingsHandler: ok("patientBookings"),
		GetUsersHandler:           ok("users"),
		UpsertUserHandler:         ok("upsertUser"),
		CheckAdminHandler:         ok("checkAdmin"),
		MakeAdminHandler:          ok("makeAdmin"),
		ListDoctorsHandler:        ok("listDoctors"),
		AddDoctorHandler:          ok("addDoctor"),
		DeleteDoctorHandler:       ok("deleteDoctor"),
	}

	r := gin.New()
	RegisterRoutes(r, hb)
	return r, tokens
}

func TestRouteGuards(t *testing.T) {
	r, tokens := newTestEngine(t)
	patientToken, err := tokens.GenerateToken("p@x.com")
	require.NoError(t, err)
	adminToken, err := tokens.GenerateToken("boss@x.com")
	require.NoError(t, err)

	tests := []struct {
		method string
		path   string
		token  string
		want   int
		body   string
	}{
		{http.MethodGet, "/service", "", http.StatusOK, "services"},
		{http.MethodGet, "/available?date=Dec+4,+2022", "", http.StatusOK, "available"},
		{http.MethodPost, "/booking", "", http.StatusOK, "createBooking"},
		{http.MethodPut, "/user/p@x.com", "", http.StatusOK, "upsertUser"},
		{http.MethodGet, "/admin/p@x.com", "", http.StatusOK, "checkAdmin"},

		{http.MethodGet, "/booking?patient=p@x.com", "", http.StatusUnauthorized, "Unauthorized person"},
		{http.MethodGet, "/booking?patient=p@x.com", "garbage", http.StatusForbidden, "Forbidden Access"},
		{http.MethodGet, "/booking?patient=p@x.com", patientToken, http.StatusOK, "patientBookings"},
		{http.MethodGet, "/user", patientToken, http.StatusOK, "users"},

		{http.MethodPut, "/user/admin/p@x.com", "", http.StatusUnauthorized, ""},
		{http.MethodPut, "/user/admin/p@x.com", patientToken, http.StatusForbidden, "forbidden"},
		{http.MethodPut, "/user/admin/p@x.com", adminToken, http.StatusOK, "makeAdmin"},

		{http.MethodGet, "/doctor", patientToken, http.StatusForbidden, "forbidden"},
		{http.MethodGet, "/doctor", adminToken, http.StatusOK, "listDoctors"},
		{http.MethodPost, "/doctor", adminToken, http.StatusOK, "addDoctor"},
		{http.MethodDelete, "/doctor/who@x.com", adminToken, http.StatusOK, "deleteDoctor"},
		{http.MethodDelete, "/doctor/who@x.com", "", http.StatusUnauthorized, ""},
	}

	for _, tc := range tests {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			if tc.token != "" {
				req.Header.Set("Authorization", "Bearer "+tc.token)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tc.want, w.Code)
			if tc.body != "" {
				assert.Contains(t, w.Body.String(), tc.body)
			}
		})
	}
}

func TestRootAndHealth(t *testing.T) {
	r, _ := newTestEngine(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Hello Doctors portal", w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestHealthReportsDegradedMongo(t *testing.T) {
	gin.SetMode(gin.TestMode)
	monitor := utils.NewHealthMonitor(nil, nil)
	monitor.Check(context.Background())

	r := gin.New()
	RegisterHealthRoute(r, &handlers.HandlerBundle{Health: monitor})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"degraded"`)
}

func TestCORSPreflight(t *testing.T) {
	r, _ := newTestEngine(t)

	req := httptest.NewRequest(http.MethodOptions, "/booking", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

