// Package jobs фоновые задачи сервиса по расписанию cron
package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

const jobTimeout = 30 * time.Second

// Scheduler запускает периодические задачи обслуживания данных:
// завершение прошедших бронирований и деактивацию истекших промоакций
type Scheduler struct {
	cron            *cron.Cron
	appointmentRepo AppointmentRepository
	promotionRepo   PromotionRepository
	logger          Logger
}

// NewScheduler создает новый планировщик фоновых задач
func NewScheduler(
	appointmentRepo AppointmentRepository,
	promotionRepo PromotionRepository,
	logger Logger,
) *Scheduler {
	return &Scheduler{
		cron:            cron.New(),
		appointmentRepo: appointmentRepo,
		promotionRepo:   promotionRepo,
		logger:          logger,
	}
}

// Start регистрирует задачи по переданным cron-расписаниям и запускает планировщик
func (s *Scheduler) Start(completeSchedule, deactivateSchedule string) error {
	if _, err := s.cron.AddFunc(completeSchedule, s.completeFinishedAppointments); err != nil {
		return fmt.Errorf("jobs: invalid complete appointments schedule %q: %w", completeSchedule, err)
	}

	if _, err := s.cron.AddFunc(deactivateSchedule, s.deactivateExpiredPromotions); err != nil {
		return fmt.Errorf("jobs: invalid deactivate promotions schedule %q: %w", deactivateSchedule, err)
	}

	s.cron.Start()
	s.logger.Info("Jobs scheduler started (complete=%q, deactivate=%q)", completeSchedule, deactivateSchedule)
	return nil
}

// Stop останавливает планировщик и дожидается завершения запущенных задач
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Jobs scheduler stopped")
}

// completeFinishedAppointments переводит подтвержденные и начатые бронирования
// с прошедшей датой окончания в статус completed
func (s *Scheduler) completeFinishedAppointments() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	count, err := s.appointmentRepo.CompleteFinished(ctx)
	if err != nil {
		s.logger.Error("Jobs: failed to complete finished appointments: %v", err)
		return
	}

	if count > 0 {
		s.logger.Info("Jobs: completed %d finished appointments", count)
	}
}

// deactivateExpiredPromotions снимает флаг активности с промоакций,
// у которых вышло окно действия или исчерпан лимит применений
func (s *Scheduler) deactivateExpiredPromotions() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	count, err := s.promotionRepo.DeactivateExpired(ctx)
	if err != nil {
		s.logger.Error("Jobs: failed to deactivate expired promotions: %v", err)
		return
	}

	if count > 0 {
		s.logger.Info("Jobs: deactivated %d expired promotions", count)
	}
}
