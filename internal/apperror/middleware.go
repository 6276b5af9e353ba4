package apperror

import (
	"errors"
	"net/http"
)

type handler func(w http.ResponseWriter, r *http.Request) error

func Middleware(h handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := h(w, r)
		if err == nil {
			return
		}

		w.Header().Set("Content-Type", "application/json")

		var appErr *AppError
		if errors.As(err, &appErr) {
			status := appErr.Status()
			w.WriteHeader(status)
			w.Write(NewResponse(status, appErr.Message, appErr.Details).Marshal())

			return
		}

		w.WriteHeader(http.StatusInternalServerError)
		w.Write(internalError().Marshal())
	}
}
