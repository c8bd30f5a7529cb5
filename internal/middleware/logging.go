package middleware

import (
	"net/http"

	log "github.com/sirupsen/logrus"
)

func LogRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userAgent := r.Header.Get("User-Agent")
			clientID := r.Header.Get("X-Client-Id")
			log.Tracef(" ====> request [%s] path: [%s] [client: %s] [UA: %s]", r.Method, r.URL.Path, clientID, userAgent)
			next.ServeHTTP(w, r)
		})
	}
}
