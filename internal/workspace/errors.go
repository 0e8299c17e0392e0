package workspace

import (
	"errors"
	"net/http"

	"github.com/ledgersim/ledgersim/internal/coa"
	"github.com/ledgersim/ledgersim/internal/ledger"
	"github.com/ledgersim/ledgersim/internal/platform/httpx"
)

// respondError maps domain errors to RFC7807 responses. Validation and
// posting failures carry their full reason lists so a client can show
// every problem at once.
func respondError(w http.ResponseWriter, err error) {
	var verr *ValidationError
	var perr *ledger.PostingError
	switch {
	case errors.As(err, &verr):
		httpx.ProblemReasons(w, http.StatusUnprocessableEntity, "Invalid Transaction", verr.Reasons)
	case errors.As(err, &perr):
		httpx.ProblemReasons(w, http.StatusUnprocessableEntity, "Posting Rejected", perr.Reasons)
	case errors.Is(err, ledger.ErrPeriodLocked):
		httpx.Problem(w, http.StatusConflict, "Period Locked", err.Error())
	case errors.Is(err, ledger.ErrBalanceInvariant):
		httpx.Problem(w, http.StatusUnprocessableEntity, "Unbalanced Entry", err.Error())
	case errors.Is(err, coa.ErrAccountNotFound),
		errors.Is(err, ledger.ErrEntryNotFound),
		errors.Is(err, ErrWorkspaceNotFound):
		httpx.Problem(w, http.StatusNotFound, "Not Found", err.Error())
	default:
		httpx.RespondError(w, err)
	}
}
