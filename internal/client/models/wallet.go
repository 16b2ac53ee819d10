package models

// Transaction types and statuses as reported by the wallet endpoints.
const (
	TxDeposit    = "deposit"
	TxTransfer   = "transfer"
	TxWithdrawal = "withdrawal"

	TxStatusCompleted = "completed"
	TxStatusPending   = "pending"
	TxStatusFailed    = "failed"
)

// Balance is the wallet balance payload. The backend has historically
// returned the amount either as a number or a string, so the service layer
// normalizes it before it reaches this type.
type Balance struct {
	Amount   float64
	Currency string
}

// Card is a stored payment card, normalized to the client field names.
// The backend uses cardholder/expiry/is_primary; the wallet service maps
// those onto this shape.
type Card struct {
	ID         int64  `json:"id"`
	CardNumber string `json:"card_number"`
	CardHolder string `json:"card_holder"`
	ExpiryDate string `json:"expiry_date"`
	CardType   string `json:"card_type"`
	IsDefault  bool   `json:"is_default"`
}

// Transaction is a single wallet ledger row.
type Transaction struct {
	ID          int64   `json:"id"`
	Type        string  `json:"transaction_type"`
	Amount      float64 `json:"amount"`
	Fee         float64 `json:"fee"`
	NetAmount   float64 `json:"net_amount"`
	Status      string  `json:"status"`
	Description string  `json:"description"`
	CreatedAt   string  `json:"created_at"`
}

// TransactionPage is one page of the paginated transaction listing.
type TransactionPage struct {
	Transactions []Transaction `json:"transactions"`
	Page         int           `json:"page"`
	Pages        int           `json:"pages"`
	Total        int           `json:"total"`
}

// Summary aggregates completed transactions by type. Withdrawal amounts are
// reported as positive totals regardless of their sign in the ledger.
type Summary struct {
	TotalDeposits    float64
	TotalTransfers   float64
	TotalWithdrawals float64
}
