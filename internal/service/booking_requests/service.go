package booking_requests

import (
	"context"
	"errors"
	"fmt"
	"time"

	bookingRequestRepo "github.com/m04kA/PhotoStudio-BookingService/internal/infra/storage/booking_request"
	"github.com/m04kA/PhotoStudio-BookingService/internal/service/booking_requests/models"
)

// publishTimeout ограничивает публикацию события, статус к этому моменту уже изменён
const publishTimeout = 500 * time.Millisecond

// Service сервис просмотра и обработки заявок администратором
type Service struct {
	repo           BookingRequestRepository
	publisher      EventPublisher
	publishTimeout time.Duration
	logger         Logger
}

// NewService создает новый экземпляр сервиса заявок
func NewService(repo BookingRequestRepository, publisher EventPublisher, logger Logger) *Service {
	return &Service{
		repo:           repo,
		publisher:      publisher,
		publishTimeout: publishTimeout,
		logger:         logger,
	}
}

// GetByID получает заявку по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingRequestResponse, error) {
	s.logger.Info("GetByID: fetching booking request id=%d", id)

	req, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRequestRepo.ErrNotFound) {
			s.logger.Warn("GetByID: booking request id=%d not found", id)
			return nil, ErrBookingRequestNotFound
		}
		s.logger.Error("GetByID: repository error for booking request id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBookingRequest(req), nil
}

// List получает заявки с фильтрацией, новые первыми
func (s *Service) List(ctx context.Context, req *models.ListRequest) (*models.BookingRequestListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if filter.FromDate != nil && filter.ToDate != nil && filter.ToDate.Before(*filter.FromDate) {
		s.logger.Warn("List: toDate %s is before fromDate %s", filter.ToDate, filter.FromDate)
		return nil, fmt.Errorf("%w: toDate is before fromDate", ErrInvalidInput)
	}

	list, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: found %d booking requests", len(list))
	return models.FromDomainBookingRequestList(list), nil
}

// UpdateStatus меняет статус заявки
// Разрешены переходы new → confirmed|cancelled и confirmed → done|cancelled
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) (*models.BookingRequestResponse, error) {
	s.logger.Info("UpdateStatus: booking request id=%d, status=%s", id, req.Status)

	next, err := models.ToDomainStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status %q", req.Status)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRequestRepo.ErrNotFound) {
			s.logger.Warn("UpdateStatus: booking request id=%d not found", id)
			return nil, ErrBookingRequestNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking request id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	if !current.CanTransitionTo(next) {
		if current.Status.IsFinal() {
			s.logger.Warn("UpdateStatus: booking request id=%d is already %s", id, current.Status)
			return nil, fmt.Errorf("%w: status %s is final", ErrInvalidTransition, current.Status)
		}
		s.logger.Warn("UpdateStatus: transition %s -> %s not allowed for id=%d", current.Status, next, id)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, next)
	}

	previous := current.Status
	updatedAt, err := s.repo.UpdateStatus(ctx, id, previous, next)
	if err != nil {
		if errors.Is(err, bookingRequestRepo.ErrStatusConflict) {
			s.logger.Warn("UpdateStatus: status of id=%d changed concurrently", id)
			return nil, fmt.Errorf("%w: status changed concurrently", ErrInvalidTransition)
		}
		s.logger.Error("UpdateStatus: failed to update status for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	current.Status = next
	current.UpdatedAt = updatedAt

	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.publishTimeout)
	defer cancel()
	if err := s.publisher.PublishStatusChanged(publishCtx, current, previous); err != nil {
		s.logger.Error("UpdateStatus: failed to publish event for id=%d: %v", id, err)
	}

	s.logger.Info("UpdateStatus: booking request id=%d moved %s -> %s", id, previous, next)
	return models.FromDomainBookingRequest(current), nil
}
