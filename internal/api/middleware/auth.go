package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/m04kA/PhotoStudio-BookingService/internal/api/handlers"
)

// HeaderAdminKey заголовок с ключом администратора
const HeaderAdminKey = "X-Admin-Key"

const msgUnauthorized = "требуется ключ администратора"

// AdminAuth пропускает только запросы с корректным X-Admin-Key
// Пустой apiKey закрывает доступ полностью
func AdminAuth(apiKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get(HeaderAdminKey)
			if apiKey == "" || subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) != 1 {
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
