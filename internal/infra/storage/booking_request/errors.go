package booking_request

import "errors"

var (
	// ErrNotFound возвращается, когда заявка не найдена
	ErrNotFound = errors.New("booking_request.repository: booking request not found")

	// ErrStatusConflict возвращается, когда статус заявки изменился параллельно
	ErrStatusConflict = errors.New("booking_request.repository: status changed concurrently")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking_request.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking_request.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking_request.repository: failed to scan row")
)
