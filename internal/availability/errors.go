package availability

import "errors"

var (
	// ErrInvalidRange возвращается, когда конец окна раньше начала
	ErrInvalidRange = errors.New("availability: to is before from")
)
