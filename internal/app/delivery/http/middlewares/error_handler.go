package middlewares

import (
	"errors"
	"net/http"
	"timeslot-service/internal/pkg/exceptions"
	"timeslot-service/internal/pkg/utils"
)

// ErrorHandler converts handler panics into a 500 JSON response instead of
// tearing down the connection.
func (m *Middlewares) ErrorHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				var err error
				switch x := rec.(type) {
				case string:
					err = errors.New(x)
				case error:
					err = x
				default:
					err = errors.New("unknown error")
				}

				utils.BuildErrorResponse(m.Log, w, exceptions.ErrServerPanic(err))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
