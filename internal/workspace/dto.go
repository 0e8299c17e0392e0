package workspace

import (
	"fmt"
	"time"

	"github.com/ledgersim/ledgersim/internal/ledger"
	"github.com/ledgersim/ledgersim/internal/rules"
)

// dateLayout is the wire format for transaction dates.
const dateLayout = "2006-01-02"

// LineRequest is one manual journal line on the wire.
type LineRequest struct {
	Account    string  `json:"account" validate:"required"`
	Debit      float64 `json:"debit" validate:"gte=0"`
	Credit     float64 `json:"credit" validate:"gte=0"`
	CostCenter string  `json:"cost_center,omitempty"`
	PartnerID  string  `json:"partner_id,omitempty"`
}

// TransactionRequest is the flat wire shape for every transaction type.
// Type selects the template; the template's builder decides which of the
// remaining fields it needs and rejects what is missing.
type TransactionRequest struct {
	Type        string  `json:"type" validate:"required"`
	Subtype     string  `json:"subtype,omitempty"`
	Date        string  `json:"date" validate:"required"`
	Amount      float64 `json:"amount,omitempty" validate:"gte=0"`
	NetAmount   float64 `json:"net_amount,omitempty" validate:"gte=0"`
	VATRate     float64 `json:"vat_rate,omitempty" validate:"gte=0,lte=1"`
	TaxRate     float64 `json:"tax_rate,omitempty" validate:"gte=0,lte=1"`
	PartnerID   string  `json:"partner_id,omitempty"`
	ItemID      string  `json:"item_id,omitempty"`
	Qty         float64 `json:"qty,omitempty" validate:"gte=0"`
	UnitPrice   float64 `json:"unit_price,omitempty" validate:"gte=0"`
	CostCenter  string  `json:"cost_center,omitempty"`
	Account     string  `json:"account,omitempty"`
	Description string  `json:"description,omitempty"`

	Lines []LineRequest `json:"lines,omitempty" validate:"dive"`
}

// ToInput translates the open wire representation into one of the closed
// template input variants. Unknown types fail here, before any template
// logic runs.
func (req TransactionRequest) ToInput() (rules.Input, error) {
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, want YYYY-MM-DD", req.Date)
	}

	switch rules.TransactionType(req.Type) {
	case rules.TxCashReceipt:
		return rules.CashReceiptInput{
			Subtype:     rules.CashReceiptSubtype(req.Subtype),
			Date:        date,
			Amount:      req.Amount,
			VATRate:     req.VATRate,
			PartnerID:   req.PartnerID,
			Description: req.Description,
		}, nil
	case rules.TxCashPayment:
		return rules.CashPaymentInput{
			Subtype:        rules.CashPaymentSubtype(req.Subtype),
			Date:           date,
			Amount:         req.Amount,
			PartnerID:      req.PartnerID,
			ExpenseAccount: req.Account,
			Description:    req.Description,
		}, nil
	case rules.TxStockIn:
		return rules.StockInInput{
			Subtype:     rules.StockInSubtype(req.Subtype),
			Date:        date,
			ItemID:      req.ItemID,
			Qty:         req.Qty,
			UnitPrice:   req.UnitPrice,
			VATRate:     req.VATRate,
			PartnerID:   req.PartnerID,
			Description: req.Description,
		}, nil
	case rules.TxStockOut:
		return rules.StockOutInput{
			Subtype:     rules.StockOutSubtype(req.Subtype),
			Date:        date,
			ItemID:      req.ItemID,
			Qty:         req.Qty,
			Description: req.Description,
		}, nil
	case rules.TxManualEntry:
		lines := make([]ledger.Line, len(req.Lines))
		for i, l := range req.Lines {
			lines[i] = ledger.Line{
				Account:    l.Account,
				Debit:      l.Debit,
				Credit:     l.Credit,
				CostCenter: l.CostCenter,
				PartnerID:  l.PartnerID,
			}
		}
		return rules.ManualEntryInput{Date: date, Description: req.Description, Lines: lines}, nil
	case rules.TxVendorInvoice:
		return rules.VendorInvoiceInput{
			Date:           date,
			PartnerID:      req.PartnerID,
			NetAmount:      req.NetAmount,
			TaxRate:        req.TaxRate,
			ExpenseAccount: req.Account,
			Description:    req.Description,
		}, nil
	case rules.TxCustomerInvoice:
		return rules.CustomerInvoiceInput{
			Date:        date,
			PartnerID:   req.PartnerID,
			NetAmount:   req.NetAmount,
			TaxRate:     req.TaxRate,
			Description: req.Description,
		}, nil
	case rules.TxVendorPayment:
		return rules.VendorPaymentInput{
			Date:        date,
			PartnerID:   req.PartnerID,
			Amount:      req.Amount,
			Description: req.Description,
		}, nil
	case rules.TxCustomerPayment:
		return rules.CustomerPaymentInput{
			Date:        date,
			PartnerID:   req.PartnerID,
			Amount:      req.Amount,
			Description: req.Description,
		}, nil
	case rules.TxGoodsMovement:
		return rules.GoodsMovementInput{
			MovementType: rules.MovementType(req.Subtype),
			Date:         date,
			ItemID:       req.ItemID,
			Qty:          req.Qty,
			UnitPrice:    req.UnitPrice,
			CostCenter:   req.CostCenter,
			Description:  req.Description,
		}, nil
	case rules.TxInvoiceVerification:
		return rules.InvoiceVerificationInput{
			Date:        date,
			PartnerID:   req.PartnerID,
			NetAmount:   req.NetAmount,
			TaxRate:     req.TaxRate,
			Description: req.Description,
		}, nil
	case rules.TxDepreciationRun:
		return rules.DepreciationRunInput{
			Date:        date,
			Amount:      req.Amount,
			Description: req.Description,
		}, nil
	default:
		return nil, fmt.Errorf("unknown transaction type %q", req.Type)
	}
}
