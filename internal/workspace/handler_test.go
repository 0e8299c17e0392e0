package workspace

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/ledgersim/ledgersim/internal/coa"
	"github.com/ledgersim/ledgersim/internal/platform/kv"
)

func newTestServer(t *testing.T) (*httptest.Server, *Manager) {
	t.Helper()
	manager := NewManager(
		New(NameTraining, coa.ModeDomestic),
		New(NameProduction, coa.ModeERP),
	)
	handler := NewHandler(slog.Default(), manager, kv.NewMemory())
	r := chi.NewRouter()
	r.Route("/workspaces", handler.MountRoutes)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, manager
}

func postJSON(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func TestHandlerPostTransaction(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := postJSON(t, srv.URL+"/workspaces/training/transactions", `{
		"type": "manual_entry",
		"date": "2026-03-01",
		"description": "opening capital",
		"lines": [
			{"account": "101", "debit": 1000000},
			{"account": "331", "credit": 1000000}
		]
	}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var res PostResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	require.Equal(t, "JE0001", res.Document.DocNumber)
	require.Len(t, res.Entry.Lines, 2)
}

func TestHandlerRejectsUnknownType(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := postJSON(t, srv.URL+"/workspaces/training/transactions", `{
		"type": "teleport_funds",
		"date": "2026-03-01"
	}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandlerValidationReasonsOnWire(t *testing.T) {
	srv, _ := newTestServer(t)

	// Missing partner and zero amount produce multiple reasons at once.
	resp := postJSON(t, srv.URL+"/workspaces/production/transactions", `{
		"type": "vendor_invoice",
		"date": "2026-03-01"
	}`)
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var problem struct {
		Title   string   `json:"title"`
		Reasons []string `json:"reasons"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&problem))
	require.Equal(t, "Invalid Transaction", problem.Title)
	require.GreaterOrEqual(t, len(problem.Reasons), 2)
}

func TestHandlerPeriodLockConflict(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := postJSON(t, srv.URL+"/workspaces/training/periods/2026-03/lock", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = postJSON(t, srv.URL+"/workspaces/training/transactions", `{
		"type": "cash_receipt",
		"subtype": "other_income",
		"date": "2026-03-05",
		"amount": 1000
	}`)
	require.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestHandlerUnknownWorkspace(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/workspaces/staging/documents")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHandlerReports(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := postJSON(t, srv.URL+"/workspaces/training/transactions", `{
		"type": "manual_entry",
		"date": "2026-03-01",
		"lines": [
			{"account": "101", "debit": 500000},
			{"account": "331", "credit": 500000}
		]
	}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, err := http.Get(srv.URL + "/workspaces/training/reports/trial-balance?period=2026-03")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var tb struct {
		TotalClosingDebit  float64 `json:"total_closing_debit"`
		TotalClosingCredit float64 `json:"total_closing_credit"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&tb))
	require.InDelta(t, 500000, tb.TotalClosingDebit, 0.001)
	require.InDelta(t, tb.TotalClosingDebit, tb.TotalClosingCredit, 0.001)

	resp, err = http.Get(srv.URL + "/workspaces/training/reports/cash-flow?period=2026-03")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandlerSnapshotRoundTrip(t *testing.T) {
	srv, manager := newTestServer(t)

	resp := postJSON(t, srv.URL+"/workspaces/training/transactions", `{
		"type": "manual_entry",
		"date": "2026-03-01",
		"lines": [
			{"account": "101", "debit": 250000},
			{"account": "331", "credit": 250000}
		]
	}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = postJSON(t, srv.URL+"/workspaces/training/snapshot", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	ws, err := manager.Get(NameTraining)
	require.NoError(t, err)
	require.Len(t, ws.Entries(), 1)

	resp = postJSON(t, srv.URL+"/workspaces/training/restore", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, ws.Entries(), 1)
}
