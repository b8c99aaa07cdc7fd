package get_user_appointments

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/api/middleware"
	"github.com/m04kA/SMC-RentalService/internal/service/appointments"
	"github.com/m04kA/SMC-RentalService/internal/service/appointments/models"
)

type fakeAppointmentService struct {
	lastReq *models.GetUserAppointmentsRequest
	resp    *models.AppointmentListResponse
	err     error
}

func (f *fakeAppointmentService) GetUserAppointments(_ context.Context, req *models.GetUserAppointmentsRequest) (*models.AppointmentListResponse, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newRouter(svc AppointmentService) *mux.Router {
	router := mux.NewRouter()
	router.Handle(
		"/users/{userId}/appointments",
		middleware.Auth(http.HandlerFunc(NewHandler(svc, noopLogger{}).Handle)),
	).Methods(http.MethodGet)
	return router
}

func TestHandle(t *testing.T) {
	t.Run("returns appointments for owner", func(t *testing.T) {
		svc := &fakeAppointmentService{resp: &models.AppointmentListResponse{
			Appointments: []*models.AppointmentResponse{{ID: 1, UserID: 7}},
			Total:        1,
		}}

		req := httptest.NewRequest(http.MethodGet, "/users/7/appointments", nil)
		req.Header.Set("X-User-ID", "7")
		rec := httptest.NewRecorder()

		newRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, svc.lastReq)
		assert.Equal(t, int64(7), svc.lastReq.UserID)
		assert.Equal(t, int64(7), svc.lastReq.RequestorID)
		assert.Nil(t, svc.lastReq.Status)
	})

	t.Run("invalid status filter returns 400", func(t *testing.T) {
		svc := &fakeAppointmentService{err: appointments.ErrInvalidStatus}

		req := httptest.NewRequest(http.MethodGet, "/users/7/appointments?status=bogus", nil)
		req.Header.Set("X-User-ID", "7")
		rec := httptest.NewRecorder()

		newRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, svc.lastReq)
		require.NotNil(t, svc.lastReq.Status)
		assert.Equal(t, "bogus", *svc.lastReq.Status)
	})

	t.Run("access denied returns 403", func(t *testing.T) {
		svc := &fakeAppointmentService{err: appointments.ErrAccessDenied}

		req := httptest.NewRequest(http.MethodGet, "/users/7/appointments", nil)
		req.Header.Set("X-User-ID", "8")
		rec := httptest.NewRecorder()

		newRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("missing auth header returns 401", func(t *testing.T) {
		svc := &fakeAppointmentService{}

		req := httptest.NewRequest(http.MethodGet, "/users/7/appointments", nil)
		rec := httptest.NewRecorder()

		newRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Nil(t, svc.lastReq)
	})
}
