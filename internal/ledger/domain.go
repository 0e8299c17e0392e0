package ledger

import (
	"errors"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

// BalanceTolerance is the absolute debit/credit mismatch accepted on a
// journal entry, in currency units.
const BalanceTolerance = 0.01

// DocType prefixes document numbers and groups documents by business event.
type DocType string

const (
	DocTypeCashReceipt     DocType = "CR"
	DocTypeCashPayment     DocType = "CP"
	DocTypeStockIn         DocType = "SI"
	DocTypeStockOut        DocType = "SO"
	DocTypeJournal         DocType = "JE"
	DocTypeVendorInvoice   DocType = "VI"
	DocTypeCustomerInvoice DocType = "CI"
	DocTypeVendorPayment   DocType = "VP"
	DocTypeCustomerPayment DocType = "RP"
	DocTypeGoodsMovement   DocType = "GM"
	DocTypeInvoiceVerify   DocType = "IV"
	DocTypeDepreciation    DocType = "DP"
)

// Line is a single debit or credit against an account.
type Line struct {
	Account    string  `json:"account"`
	Debit      float64 `json:"debit"`
	Credit     float64 `json:"credit"`
	CostCenter string  `json:"cost_center,omitempty"`
	PartnerID  string  `json:"partner_id,omitempty"`
}

// JournalEntry is an immutable, committed set of balanced lines.
type JournalEntry struct {
	ID           uuid.UUID `json:"id"`
	DocumentID   string    `json:"document_id"`
	Date         time.Time `json:"date"`
	Description  string    `json:"description"`
	Lines        []Line    `json:"lines"`
	EventType    string    `json:"event_type"`
	SourceModule string    `json:"source_module"`
	PostedBy     string    `json:"posted_by"`
	PostedAt     time.Time `json:"posted_at"`
}

// TotalDebit sums the debit column.
func (e JournalEntry) TotalDebit() float64 {
	var sum float64
	for _, l := range e.Lines {
		sum += l.Debit
	}
	return sum
}

// TotalCredit sums the credit column.
func (e JournalEntry) TotalCredit() float64 {
	var sum float64
	for _, l := range e.Lines {
		sum += l.Credit
	}
	return sum
}

// DocStatus enumerates document lifecycle values. Only POSTED exists in
// this model; corrections require a new document.
type DocStatus string

const DocStatusPosted DocStatus = "POSTED"

// Document is the business-facing record mapping 1:1 to a journal entry.
type Document struct {
	DocNumber      string    `json:"doc_number"`
	DocType        DocType   `json:"doc_type"`
	Date           time.Time `json:"date"`
	Description    string    `json:"description"`
	Amount         float64   `json:"amount"`
	PartnerID      string    `json:"partner_id,omitempty"`
	Status         DocStatus `json:"status"`
	JournalEntryID uuid.UUID `json:"journal_entry_id"`
}

// Candidate is a journal entry in progress, before validation and
// document-number assignment.
type Candidate struct {
	Date         time.Time
	Description  string
	Lines        []Line
	EventType    string
	SourceModule string
	DocType      DocType
	Amount       float64
	PartnerID    string
	PostedBy     string
}

// Balanced reports whether the candidate's columns agree within tolerance.
func (c Candidate) Balanced() bool {
	var debit, credit float64
	for _, l := range c.Lines {
		debit += l.Debit
		credit += l.Credit
	}
	return math.Abs(debit-credit) <= BalanceTolerance
}

// ErrPeriodLocked rejects postings dated inside a locked fiscal period. It
// must reach the caller verbatim so remediation can be offered.
var ErrPeriodLocked = errors.New("ledger: period locked")

// ErrBalanceInvariant marks an unbalanced entry that slipped past a
// template. It is never silently corrected.
var ErrBalanceInvariant = errors.New("ledger: journal lines must balance")

// ErrEntryNotFound indicates an unknown journal entry id.
var ErrEntryNotFound = errors.New("ledger: journal entry not found")

// PostingError collects every structural reason a candidate was rejected,
// so a caller can present all mistakes together.
type PostingError struct {
	Reasons []string
}

func (e *PostingError) Error() string {
	return "ledger: posting rejected: " + strings.Join(e.Reasons, "; ")
}

// Round truncates an amount to whole cents. Templates round derived
// amounts (VAT splits, average costs) before building lines.
func Round(v float64) float64 {
	return math.Round(v*100) / 100
}
