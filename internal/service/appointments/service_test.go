package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/appointment"
	paymentRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/payment"
	userRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/user"
	"github.com/m04kA/SMC-RentalService/internal/service/appointments/models"
	"github.com/m04kA/SMC-RentalService/pkg/ptr"
)

// Фейки зависимостей сервиса

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
	lastFilter   domain.UserAppointmentsFilter
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	for _, a := range f.appointments {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, appointmentRepo.ErrAppointmentNotFound
}

func (f *fakeAppointmentRepo) GetByUser(_ context.Context, filter domain.UserAppointmentsFilter) ([]*domain.Appointment, error) {
	f.lastFilter = filter
	result := make([]*domain.Appointment, 0, len(f.appointments))
	for _, a := range f.appointments {
		if a.UserID != filter.UserID {
			continue
		}
		if filter.Status != nil && a.Status != *filter.Status {
			continue
		}
		result = append(result, a)
	}
	return result, nil
}

func (f *fakeAppointmentRepo) UpdateStatus(_ context.Context, id int64, status domain.AppointmentStatus) error {
	for _, a := range f.appointments {
		if a.ID == id {
			a.Status = status
			return nil
		}
	}
	return appointmentRepo.ErrAppointmentNotFound
}

func (f *fakeAppointmentRepo) Cancel(_ context.Context, id int64, status domain.AppointmentStatus, reason string) error {
	for _, a := range f.appointments {
		if a.ID == id {
			a.Status = status
			a.CancellationReason = &reason
			return nil
		}
	}
	return appointmentRepo.ErrAppointmentNotFound
}

type fakePaymentRepo struct {
	latest *domain.Payment
	status domain.PaymentStatus
}

func (f *fakePaymentRepo) GetLatestByAppointment(_ context.Context, _ int64) (*domain.Payment, error) {
	if f.latest == nil {
		return nil, paymentRepo.ErrPaymentNotFound
	}
	return f.latest, nil
}

func (f *fakePaymentRepo) UpdateStatus(_ context.Context, _ int64, status domain.PaymentStatus) error {
	f.status = status
	return nil
}

type fakeUserRepo struct {
	users map[int64]*domain.User
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	return u, nil
}

type fakeNotifier struct {
	titles []string
}

func (f *fakeNotifier) Notify(_ context.Context, _ int64, _ domain.NotificationType, title, _ string) error {
	f.titles = append(f.titles, title)
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newService() (*Service, *fakeAppointmentRepo) {
	now := time.Now()
	repo := &fakeAppointmentRepo{appointments: []*domain.Appointment{
		{ID: 1, UserID: 10, VehicleID: 3, Status: domain.StatusConfirmed, StartAt: now, EndAt: now.Add(48 * time.Hour)},
		{ID: 2, UserID: 10, VehicleID: 4, Status: domain.StatusCompleted, StartAt: now.AddDate(0, -1, 0), EndAt: now.AddDate(0, -1, 2)},
		{ID: 3, UserID: 20, VehicleID: 3, Status: domain.StatusConfirmed, StartAt: now, EndAt: now.Add(24 * time.Hour)},
	}}
	users := &fakeUserRepo{users: map[int64]*domain.User{
		10: {ID: 10, Role: domain.RoleCustomer},
		20: {ID: 20, Role: domain.RoleCustomer},
		99: {ID: 99, Role: domain.RoleStaff},
	}}

	return NewService(repo, &fakePaymentRepo{}, users, &fakeNotifier{}, noopLogger{}), repo
}

func TestGetUserAppointments(t *testing.T) {
	t.Run("owner fetches own history", func(t *testing.T) {
		svc, _ := newService()

		resp, err := svc.GetUserAppointments(context.Background(), &models.GetUserAppointmentsRequest{
			UserID:      10,
			RequestorID: 10,
		})

		require.NoError(t, err)
		assert.Equal(t, 2, resp.Total)
	})

	t.Run("status filter is passed to repository", func(t *testing.T) {
		svc, repo := newService()

		resp, err := svc.GetUserAppointments(context.Background(), &models.GetUserAppointmentsRequest{
			UserID:      10,
			RequestorID: 10,
			Status:      ptr.Ptr("completed"),
		})

		require.NoError(t, err)
		assert.Equal(t, 1, resp.Total)
		require.NotNil(t, repo.lastFilter.Status)
		assert.Equal(t, domain.StatusCompleted, *repo.lastFilter.Status)
	})

	t.Run("unknown status filter", func(t *testing.T) {
		svc, _ := newService()

		_, err := svc.GetUserAppointments(context.Background(), &models.GetUserAppointmentsRequest{
			UserID:      10,
			RequestorID: 10,
			Status:      ptr.Ptr("bogus"),
		})

		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("foreign history requires staff role", func(t *testing.T) {
		svc, _ := newService()

		_, err := svc.GetUserAppointments(context.Background(), &models.GetUserAppointmentsRequest{
			UserID:      10,
			RequestorID: 20,
		})

		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("staff fetches foreign history", func(t *testing.T) {
		svc, _ := newService()

		resp, err := svc.GetUserAppointments(context.Background(), &models.GetUserAppointmentsRequest{
			UserID:      20,
			RequestorID: 99,
		})

		require.NoError(t, err)
		assert.Equal(t, 1, resp.Total)
	})
}
