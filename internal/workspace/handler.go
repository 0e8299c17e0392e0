package workspace

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/singleflight"

	"github.com/ledgersim/ledgersim/internal/platform/httpx"
)

// Handler wires the workspace JSON API.
type Handler struct {
	logger    *slog.Logger
	manager   *Manager
	snapshots SnapshotStore
	validate  *validator.Validate
	reports   singleflight.Group
}

// NewHandler builds a Handler. snapshots may be nil; the snapshot
// endpoints then respond 503.
func NewHandler(logger *slog.Logger, manager *Manager, snapshots SnapshotStore) *Handler {
	return &Handler{
		logger:    logger,
		manager:   manager,
		snapshots: snapshots,
		validate:  validator.New(),
	}
}

// MountRoutes registers the workspace routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.handleList)
	r.Route("/{ws}", func(r chi.Router) {
		r.Post("/transactions", h.handlePost)
		r.Post("/transactions/preview", h.handlePreview)
		r.Get("/documents", h.handleDocuments)
		r.Get("/audit", h.handleAudit)
		r.Get("/accounts/{code}/balance", h.handleBalance)
		r.Post("/periods/{period}/lock", h.handleLock)
		r.Post("/periods/{period}/unlock", h.handleUnlock)
		r.Get("/reports/{type}", h.handleReport)
		r.Post("/snapshot", h.handleSnapshot)
		r.Post("/restore", h.handleRestore)
	})
}

func (h *Handler) workspace(w http.ResponseWriter, r *http.Request) (*Workspace, bool) {
	ws, err := h.manager.Get(chi.URLParam(r, "ws"))
	if err != nil {
		respondError(w, err)
		return nil, false
	}
	return ws, true
}

func actor(r *http.Request) string {
	if a := r.Header.Get("X-Actor"); a != "" {
		return a
	}
	return "anonymous"
}

func (h *Handler) handleList(w http.ResponseWriter, _ *http.Request) {
	httpx.JSON(w, http.StatusOK, map[string]any{"workspaces": h.manager.Names()})
}

func (h *Handler) decodeTransaction(w http.ResponseWriter, r *http.Request) (TransactionRequest, bool) {
	var req TransactionRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		respondError(w, fmt.Errorf("%w: %v", httpx.ErrBadRequest, err))
		return req, false
	}
	if err := h.validate.Struct(req); err != nil {
		var reasons []string
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range verrs {
				reasons = append(reasons, fe.Error())
			}
		} else {
			reasons = append(reasons, err.Error())
		}
		httpx.ProblemReasons(w, http.StatusBadRequest, "Bad Request", reasons)
		return req, false
	}
	return req, true
}

func (h *Handler) handlePost(w http.ResponseWriter, r *http.Request) {
	ws, ok := h.workspace(w, r)
	if !ok {
		return
	}
	req, ok := h.decodeTransaction(w, r)
	if !ok {
		return
	}
	input, err := req.ToInput()
	if err != nil {
		respondError(w, fmt.Errorf("%w: %v", httpx.ErrBadRequest, err))
		return
	}
	res, err := ws.PostTransaction(r.Context(), input, actor(r))
	if err != nil {
		respondError(w, err)
		return
	}
	h.logger.Info("transaction posted",
		slog.String("workspace", ws.Name()),
		slog.String("document", res.Document.DocNumber),
		slog.String("type", req.Type),
	)
	httpx.JSON(w, http.StatusCreated, res)
}

func (h *Handler) handlePreview(w http.ResponseWriter, r *http.Request) {
	ws, ok := h.workspace(w, r)
	if !ok {
		return
	}
	req, ok := h.decodeTransaction(w, r)
	if !ok {
		return
	}
	input, err := req.ToInput()
	if err != nil {
		respondError(w, fmt.Errorf("%w: %v", httpx.ErrBadRequest, err))
		return
	}
	res, err := ws.Preview(input)
	if err != nil {
		respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, res)
}

func (h *Handler) handleDocuments(w http.ResponseWriter, r *http.Request) {
	ws, ok := h.workspace(w, r)
	if !ok {
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"documents": ws.Documents()})
}

func (h *Handler) handleAudit(w http.ResponseWriter, r *http.Request) {
	ws, ok := h.workspace(w, r)
	if !ok {
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"records": ws.AuditRecords()})
}

func (h *Handler) handleBalance(w http.ResponseWriter, r *http.Request) {
	ws, ok := h.workspace(w, r)
	if !ok {
		return
	}
	bal, err := ws.AccountBalance(chi.URLParam(r, "code"))
	if err != nil {
		respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, bal)
}

func (h *Handler) handleLock(w http.ResponseWriter, r *http.Request) {
	ws, ok := h.workspace(w, r)
	if !ok {
		return
	}
	period := chi.URLParam(r, "period")
	ws.LockPeriod(r.Context(), period, actor(r))
	httpx.JSON(w, http.StatusOK, map[string]any{"period": period, "locked": true})
}

func (h *Handler) handleUnlock(w http.ResponseWriter, r *http.Request) {
	ws, ok := h.workspace(w, r)
	if !ok {
		return
	}
	period := chi.URLParam(r, "period")
	ws.UnlockPeriod(r.Context(), period, actor(r))
	httpx.JSON(w, http.StatusOK, map[string]any{"period": period, "locked": false})
}

// handleReport builds one of the three statements. Concurrent identical
// requests collapse into a single build via singleflight; the group key
// includes the workspace, report type, and period.
func (h *Handler) handleReport(w http.ResponseWriter, r *http.Request) {
	ws, ok := h.workspace(w, r)
	if !ok {
		return
	}
	kind := chi.URLParam(r, "type")
	period := r.URL.Query().Get("period")
	if period == "" {
		respondError(w, fmt.Errorf("%w: period query parameter is required", httpx.ErrBadRequest))
		return
	}

	key := ws.Name() + "|" + kind + "|" + period
	result, err, _ := h.reports.Do(key, func() (any, error) {
		switch kind {
		case "trial-balance":
			return ws.TrialBalance(period)
		case "balance-sheet":
			return ws.BalanceSheet(period)
		case "income-statement":
			return ws.IncomeStatement(period)
		default:
			return nil, fmt.Errorf("%w: unknown report type %q", httpx.ErrBadRequest, kind)
		}
	})
	if err != nil {
		respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, result)
}

func (h *Handler) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	ws, ok := h.workspace(w, r)
	if !ok {
		return
	}
	if h.snapshots == nil {
		httpx.Problem(w, http.StatusServiceUnavailable, "Snapshots Disabled", "no snapshot store configured")
		return
	}
	if err := ws.Snapshot(r.Context(), h.snapshots); err != nil {
		h.logger.Error("snapshot failed", slog.String("workspace", ws.Name()), slog.Any("error", err))
		respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"workspace": ws.Name(), "saved": true})
}

func (h *Handler) handleRestore(w http.ResponseWriter, r *http.Request) {
	ws, ok := h.workspace(w, r)
	if !ok {
		return
	}
	if h.snapshots == nil {
		httpx.Problem(w, http.StatusServiceUnavailable, "Snapshots Disabled", "no snapshot store configured")
		return
	}
	if err := ws.Restore(r.Context(), h.snapshots); err != nil {
		h.logger.Error("restore failed", slog.String("workspace", ws.Name()), slog.Any("error", err))
		respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"workspace": ws.Name(), "restored": true})
}
