package domain

// Окно календаря доступности
const (
	DefaultAdvanceDays = 45  // Горизонт окна, если в настройках не задан
	MaxWindowDays      = 120 // Максимальная длина запрошенного окна, конец обрезается
)

// Список заявок для администратора
const (
	DefaultListLimit = 100
	MaxListLimit     = 500
)

// Галерея
const (
	DefaultGalleryLimit = 30
	MaxGalleryLimit     = 100
)
