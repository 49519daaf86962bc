package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/tradescribe/backend/pkg/ctxutil"
)

// RequestID tags every request with an identifier, honoring one supplied
// by the client, and echoes it back in the response headers.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if id == "" {
			id = uuid.New().String()
		}
		ctx := ctxutil.WithRequestID(r.Context(), id)
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
