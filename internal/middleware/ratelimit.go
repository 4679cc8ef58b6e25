package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	handlers "socialgram/internal/handler"
	"socialgram/internal/models"
)

// CheckRateLimit - фиксированное окно на счетчике в Redis.
// При недоступном Redis пропускаем запрос (fail-open).
func CheckRateLimit(r *http.Request, rdb *redis.Client, resource, id string, limit int, window time.Duration) (bool, error) {
	if rdb == nil {
		return true, nil
	}

	key := fmt.Sprintf("rl:%s:%s", resource, id)

	// INCR and set EXPIRE if new
	cnt, err := rdb.Incr(r.Context(), key).Result()
	if err != nil {
		return true, err
	}
	if cnt == 1 {
		rdb.Expire(r.Context(), key, window)
	}
	if cnt > int64(limit) {
		return false, nil
	}
	return true, nil
}

// RateLimit ограничивает количество запросов на ресурс за окно.
// Ключ - ID пользователя, для анонимных запросов - адрес клиента.
func RateLimit(rdb *redis.Client, resource string, limit int, window time.Duration) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var id string
			if actor, ok := r.Context().Value("actor").(*models.User); ok && actor != nil {
				id = "user:" + actor.UserID
			} else {
				id = "ip:" + r.RemoteAddr
			}

			allowed, err := CheckRateLimit(r, rdb, resource, id, limit, window)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			if !allowed {
				handlers.WriteError(w, "превышен лимит запросов", http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
