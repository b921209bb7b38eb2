package middlewarex

import (
	"net/http"
	"strings"
)

// CORS allows browser clients from any origin to call the API with GET and
// POST requests and answers preflight requests itself.
func CORS(methods ...string) func(next http.Handler) http.Handler {
	allowMethods := strings.Join(methods, ", ")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := w.Header()
			header.Set("Access-Control-Allow-Origin", "*")
			header.Set("Access-Control-Allow-Methods", allowMethods)
			header.Set("Access-Control-Allow-Headers", "Content-Type")
			header.Set("Access-Control-Expose-Headers", headerNameTraceID)

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
