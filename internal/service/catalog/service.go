package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	vehicleRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/vehicle"
	"github.com/m04kA/SMC-RentalService/internal/service/catalog/models"
)

// Service сервис каталога автомобилей
type Service struct {
	vehicleRepo VehicleRepository
	userRepo    UserRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(vehicleRepo VehicleRepository, userRepo UserRepository, logger Logger) *Service {
	return &Service{
		vehicleRepo: vehicleRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

// List получает каталог автомобилей с фильтрацией и сортировкой
func (s *Service) List(ctx context.Context, req *models.ListVehiclesRequest) (*models.VehicleListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	vehicles, err := s.vehicleRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d vehicles", len(vehicles))
	return models.FromDomainVehicleList(vehicles), nil
}

// GetByID получает карточку автомобиля
func (s *Service) GetByID(ctx context.Context, vehicleID int64) (*models.VehicleResponse, error) {
	v, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
			s.logger.Warn("GetByID: vehicle id=%d not found", vehicleID)
			return nil, ErrVehicleNotFound
		}
		s.logger.Error("GetByID: repository error for vehicle id=%d: %v", vehicleID, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainVehicle(v), nil
}

// Create добавляет автомобиль в каталог
// Доступно только менеджерам
func (s *Service) Create(ctx context.Context, req *models.CreateVehicleRequest) (*models.VehicleResponse, error) {
	s.logger.Info("Create: user=%d adds vehicle %s %s", req.UserID, req.Brand, req.Model)

	if err := s.checkManagerAccess(ctx, req.UserID); err != nil {
		return nil, err
	}

	v, err := vehicleFromCreateRequest(req)
	if err != nil {
		s.logger.Warn("Create: invalid request: %v", err)
		return nil, err
	}

	created, err := s.vehicleRepo.Create(ctx, v)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: vehicle id=%d created", created.ID)
	return models.FromDomainVehicle(created), nil
}

// Update обновляет данные автомобиля
// Доступно только менеджерам
func (s *Service) Update(ctx context.Context, vehicleID int64, req *models.UpdateVehicleRequest) (*models.VehicleResponse, error) {
	s.logger.Info("Update: user=%d updates vehicle id=%d", req.UserID, vehicleID)

	if err := s.checkManagerAccess(ctx, req.UserID); err != nil {
		return nil, err
	}

	v, err := vehicleFromUpdateRequest(vehicleID, req)
	if err != nil {
		s.logger.Warn("Update: invalid request for vehicle id=%d: %v", vehicleID, err)
		return nil, err
	}

	if err := s.vehicleRepo.Update(ctx, v); err != nil {
		if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
			s.logger.Warn("Update: vehicle id=%d not found", vehicleID)
			return nil, ErrVehicleNotFound
		}
		s.logger.Error("Update: repository error for vehicle id=%d: %v", vehicleID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	updated, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		s.logger.Error("Update: failed to reload vehicle id=%d: %v", vehicleID, err)
		return nil, fmt.Errorf("%w: Update - reload error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: vehicle id=%d updated", vehicleID)
	return models.FromDomainVehicle(updated), nil
}

// checkManagerAccess проверяет, что пользователь - менеджер
func (s *Service) checkManagerAccess(ctx context.Context, userID int64) error {
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		s.logger.Warn("checkManagerAccess: failed to get user id=%d: %v", userID, err)
		return ErrAccessDenied
	}
	if !u.CanManageFleet() {
		s.logger.Warn("checkManagerAccess: user id=%d role=%s denied", userID, u.Role)
		return ErrAccessDenied
	}
	return nil
}

// vehicleFromCreateRequest валидирует и конвертирует запрос в domain модель
func vehicleFromCreateRequest(req *models.CreateVehicleRequest) (*domain.Vehicle, error) {
	if req.Brand == "" || req.Model == "" || req.LicensePlate == "" {
		return nil, fmt.Errorf("%w: brand, model and licensePlate are required", ErrInvalidInput)
	}
	if req.Seats <= 0 {
		return nil, fmt.Errorf("%w: seats must be positive", ErrInvalidInput)
	}
	if req.DailyRate <= 0 {
		return nil, fmt.Errorf("%w: dailyRate must be positive", ErrInvalidInput)
	}

	vehicleType, err := models.ToDomainVehicleType(req.Type)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown vehicle type %q", ErrInvalidInput, req.Type)
	}
	fuel, err := models.ToDomainFuelType(req.Fuel)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown fuel type %q", ErrInvalidInput, req.Fuel)
	}
	transmission, err := models.ToDomainTransmission(req.Transmission)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown transmission %q", ErrInvalidInput, req.Transmission)
	}

	return &domain.Vehicle{
		Brand:        req.Brand,
		Model:        req.Model,
		Year:         req.Year,
		Type:         vehicleType,
		Fuel:         fuel,
		Transmission: transmission,
		Seats:        req.Seats,
		DailyRate:    req.DailyRate,
		LicensePlate: req.LicensePlate,
		ImageURL:     req.ImageURL,
		IsActive:     true,
	}, nil
}

// vehicleFromUpdateRequest валидирует и конвертирует запрос обновления
func vehicleFromUpdateRequest(vehicleID int64, req *models.UpdateVehicleRequest) (*domain.Vehicle, error) {
	v, err := vehicleFromCreateRequest(&models.CreateVehicleRequest{
		UserID:       req.UserID,
		Brand:        req.Brand,
		Model:        req.Model,
		Year:         req.Year,
		Type:         req.Type,
		Fuel:         req.Fuel,
		Transmission: req.Transmission,
		Seats:        req.Seats,
		DailyRate:    req.DailyRate,
		LicensePlate: req.LicensePlate,
		ImageURL:     req.ImageURL,
	})
	if err != nil {
		return nil, err
	}

	v.ID = vehicleID
	v.IsActive = req.IsActive
	return v, nil
}
