package settings

import "errors"

var (
	// ErrCacheMiss возвращается, когда настроек нет в кэше
	ErrCacheMiss = errors.New("settings.cache: cache miss")

	// ErrCache возвращается при ошибках работы с Redis
	ErrCache = errors.New("settings.cache: redis error")

	// ErrDecode возвращается, когда значение в кэше не удалось разобрать
	ErrDecode = errors.New("settings.cache: failed to decode cached value")
)
