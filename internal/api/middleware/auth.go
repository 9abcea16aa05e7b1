package middleware

import (
	"context"
	"net/http"
	"strconv"
)

// StaffIDHeader заголовок с ID сотрудника отеля
const StaffIDHeader = "X-Staff-ID"

type staffIDCtxKey struct{}

// Auth извлекает ID сотрудника из заголовка X-Staff-ID и кладет его в
// контекст запроса. Запросы без валидного заголовка отклоняются: staff-роуты
// не обслуживают анонимов.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		staffIDStr := r.Header.Get(StaffIDHeader)
		if staffIDStr == "" {
			respondUnauthorized(w, "отсутствует заголовок "+StaffIDHeader)
			return
		}

		staffID, err := strconv.ParseInt(staffIDStr, 10, 64)
		if err != nil || staffID <= 0 {
			respondUnauthorized(w, "некорректный "+StaffIDHeader)
			return
		}

		ctx := context.WithValue(r.Context(), staffIDCtxKey{}, staffID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetStaffID возвращает ID сотрудника из контекста
func GetStaffID(ctx context.Context) (int64, bool) {
	staffID, ok := ctx.Value(staffIDCtxKey{}).(int64)
	return staffID, ok
}

func respondUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"code":401,"message":"` + message + `"}`))
}
