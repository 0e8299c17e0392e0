package httpx

import (
	"errors"
	"net/http"
)

// ErrBadRequest marks malformed input detected at the transport layer.
var ErrBadRequest = errors.New("bad request")

// RespondError handles the transport-level cases; domain packages map
// their own errors before falling back to this.
func RespondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrBadRequest):
		Problem(w, http.StatusBadRequest, "Bad Request", err.Error())
	default:
		Problem(w, http.StatusInternalServerError, "Internal Error", "")
	}
}
