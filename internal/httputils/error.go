package httputils

import (
	"errors"
	"net/http"

	"github.com/Instilla-AI/seontology-mcp-server/pkg/seoquery/internalerr"
)

type HTTPError struct {
	Code    int
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// StatusFor maps an error to the HTTP status it should be reported with.
func StatusFor(err error) int {
	var httpErr *HTTPError
	switch {
	case errors.As(err, &httpErr):
		return httpErr.Code
	case errors.Is(err, internalerr.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, internalerr.ErrFetch):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func HandleError(w http.ResponseWriter, err error) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		JSONError(w, status, "Internal server error")
		return
	}
	JSONError(w, status, err.Error())
}
