package favorites

import (
	"context"
	"errors"
	"fmt"

	favoriteRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/favorite"
	vehicleRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/vehicle"
	"github.com/m04kA/SMC-RentalService/internal/service/favorites/models"
)

// Service сервис избранного
type Service struct {
	favoriteRepo FavoriteRepository
	vehicleRepo  VehicleRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса избранного
func NewService(favoriteRepo FavoriteRepository, vehicleRepo VehicleRepository, logger Logger) *Service {
	return &Service{
		favoriteRepo: favoriteRepo,
		vehicleRepo:  vehicleRepo,
		logger:       logger,
	}
}

// Add добавляет автомобиль в избранное пользователя
func (s *Service) Add(ctx context.Context, userID, vehicleID int64) error {
	s.logger.Info("Add: user=%d adds vehicle=%d to favorites", userID, vehicleID)

	if _, err := s.vehicleRepo.GetByID(ctx, vehicleID); err != nil {
		if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
			s.logger.Warn("Add: vehicle id=%d not found", vehicleID)
			return ErrVehicleNotFound
		}
		s.logger.Error("Add: failed to get vehicle id=%d: %v", vehicleID, err)
		return fmt.Errorf("%w: Add - vehicle lookup: %v", ErrInternal, err)
	}

	if err := s.favoriteRepo.Add(ctx, userID, vehicleID); err != nil {
		if errors.Is(err, favoriteRepo.ErrDuplicateFavorite) {
			s.logger.Warn("Add: vehicle id=%d already in favorites of user=%d", vehicleID, userID)
			return ErrDuplicateFavorite
		}
		s.logger.Error("Add: repository error: %v", err)
		return fmt.Errorf("%w: Add - repository error: %v", ErrInternal, err)
	}

	return nil
}

// Remove удаляет автомобиль из избранного пользователя
func (s *Service) Remove(ctx context.Context, userID, vehicleID int64) error {
	s.logger.Info("Remove: user=%d removes vehicle=%d from favorites", userID, vehicleID)

	if err := s.favoriteRepo.Remove(ctx, userID, vehicleID); err != nil {
		if errors.Is(err, favoriteRepo.ErrFavoriteNotFound) {
			s.logger.Warn("Remove: vehicle id=%d not in favorites of user=%d", vehicleID, userID)
			return ErrFavoriteNotFound
		}
		s.logger.Error("Remove: repository error: %v", err)
		return fmt.Errorf("%w: Remove - repository error: %v", ErrInternal, err)
	}

	return nil
}

// List возвращает избранные автомобили пользователя
// Снятые с проката автомобили остаются в списке с признаком IsActive=false
func (s *Service) List(ctx context.Context, userID int64) (*models.FavoritesResponse, error) {
	ids, err := s.favoriteRepo.ListVehicleIDs(ctx, userID)
	if err != nil {
		s.logger.Error("List: failed to list favorites for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	vehicles := make([]models.FavoriteVehicleResponse, 0, len(ids))
	for _, id := range ids {
		v, err := s.vehicleRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
				continue
			}
			s.logger.Error("List: failed to get vehicle id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: List - vehicle lookup: %v", ErrInternal, err)
		}
		vehicles = append(vehicles, models.FromDomainVehicle(v))
	}

	return &models.FavoritesResponse{
		Vehicles: vehicles,
		Total:    len(vehicles),
	}, nil
}
