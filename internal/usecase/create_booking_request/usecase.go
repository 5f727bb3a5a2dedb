package create_booking_request

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"

	"github.com/m04kA/PhotoStudio-BookingService/internal/availability"
	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
)

// Результаты для счётчика заявок
const (
	resultCreated     = "created"
	resultRejected    = "rejected"
	resultUnavailable = "unavailable"
	resultError       = "error"
)

// publishTimeout ограничивает публикацию события, заявка к этому моменту уже сохранена
const publishTimeout = 500 * time.Millisecond

// UseCase use case для создания заявки на бронирование
type UseCase struct {
	repo            BookingRequestRepository
	settingsService SettingsService
	publisher       EventPublisher
	metrics         MetricsRecorder
	timeProvider    TimeProvider
	publishTimeout  time.Duration
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
// metrics может быть nil
func NewUseCase(
	repo BookingRequestRepository,
	settingsService SettingsService,
	publisher EventPublisher,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		repo:            repo,
		settingsService: settingsService,
		publisher:       publisher,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{},
		publishTimeout:  publishTimeout,
		logger:          logger,
	}
}

// Execute выполняет use case создания заявки
// Слот проверяется по текущему расчёту доступности, другие заявки на тот же слот не учитываются
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	normalizeRequest(req)
	uc.logger.Info("CreateBookingRequest: date=%s, time=%s", req.Date, req.Time)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBookingRequest: validation failed: %v", err)
		uc.record(resultRejected)
		return nil, err
	}

	date, err := civil.ParseDate(req.Date)
	if err != nil {
		uc.record(resultRejected)
		return nil, fmt.Errorf("%w: date must be in YYYY-MM-DD format", ErrInvalidInput)
	}

	// 2. Проверяем дату относительно сегодняшнего дня
	today := civil.DateOf(uc.timeProvider.Now())
	if err := validateDate(date, today); err != nil {
		uc.logger.Warn("CreateBookingRequest: date validation failed: %v", err)
		uc.record(resultRejected)
		return nil, err
	}

	// 3. Получаем настройки
	settings, err := uc.settingsService.Get(ctx)
	if err != nil {
		uc.logger.Error("CreateBookingRequest: failed to get settings: %v", err)
		uc.record(resultError)
		return nil, fmt.Errorf("%w: %v", ErrSettingsUnavailable, err)
	}

	// 4. Проверяем слот по расчёту доступности на эту дату
	if !settings.HasStartTime(req.Time) {
		uc.logger.Warn("CreateBookingRequest: unknown start time %s", req.Time)
		uc.record(resultRejected)
		return nil, fmt.Errorf("%w: %s", ErrUnknownTime, req.Time)
	}

	days, err := availability.Compute(*settings, date, date)
	if err != nil {
		uc.logger.Error("CreateBookingRequest: failed to compute availability: %v", err)
		uc.record(resultError)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	if len(days) != 1 || !days[0].IsTimeAvailable(req.Time) {
		uc.logger.Warn("CreateBookingRequest: slot %s %s is not available", date, req.Time)
		uc.record(resultUnavailable)
		return nil, ErrSlotNotAvailable
	}

	// 5. Сохраняем заявку
	bookingRequest := &domain.BookingRequest{
		Reference: uuid.New(),
		Date:      date,
		Time:      req.Time,
		Timezone:  settings.Timezone,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Message:   req.Message,
		Consent:   req.Consent,
		Status:    domain.StatusNew,
	}

	created, err := uc.repo.Create(ctx, bookingRequest)
	if err != nil {
		uc.logger.Error("CreateBookingRequest: failed to create booking request: %v", err)
		uc.record(resultError)
		return nil, fmt.Errorf("%w: failed to create booking request: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBookingRequest: created booking request id=%d, reference=%s", created.ID, created.Reference)
	uc.record(resultCreated)

	// 6. Публикуем событие, ошибка не отменяет заявку
	// Контекст отвязан от запроса: отмена клиентом не должна обрывать публикацию
	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), uc.publishTimeout)
	defer cancel()
	if err := uc.publisher.PublishCreated(publishCtx, created); err != nil {
		uc.logger.Error("CreateBookingRequest: failed to publish event for id=%d: %v", created.ID, err)
	}

	return &Response{
		ID:        created.ID,
		Reference: created.Reference,
		Status:    string(created.Status),
		Date:      created.Date,
		Time:      created.Time,
		Timezone:  created.Timezone,
		CreatedAt: created.CreatedAt,
	}, nil
}

func (uc *UseCase) record(result string) {
	if uc.metrics != nil {
		uc.metrics.IncBookingRequest(result)
	}
}
