package controller

import (
	"net/http"

	"github.com/sirupsen/logrus"
)

const msgSomethingWentWrong = "Something went wrong. Try again."

// Recoverer is the top-level fallback boundary: any panic escaping a handler
// is logged and answered with one generic message. The underlying data is
// untouched; the next request starts clean.
func Recoverer(log *logrus.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if log != nil {
						log.WithFields(logrus.Fields{
							"panic": rec,
							"path":  r.URL.Path,
						}).Error("handler panic recovered")
					}
					respond(w, http.StatusInternalServerError, map[string]string{
						"error": msgSomethingWentWrong,
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
