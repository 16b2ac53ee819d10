// Package services contains the application services of the i-Stokvel
// client: wallet, stokvel groups, profile, KYC and admin user management.
// Each service wraps the raw API client, normalizes backend payloads onto
// the client's model types and applies the client-side business rules.
package services

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/Sdizo-sdizo/i-Stokvel/internal/client/api"
	"github.com/Sdizo-sdizo/i-Stokvel/internal/client/models"
)

// WalletService defines the digital-wallet operations available to a
// logged-in member.
type WalletService interface {
	Balance(ctx context.Context) (*models.Balance, error)
	Transactions(ctx context.Context, page, perPage int) (*models.TransactionPage, error)
	Summary(ctx context.Context) (*models.Summary, error)
	Cards(ctx context.Context) ([]models.Card, error)
	AddCard(ctx context.Context, card models.Card, cvv string) error
	UpdateCard(ctx context.Context, card models.Card, cvv string) error
	DeleteCard(ctx context.Context, id int64) error
	Deposit(ctx context.Context, amount float64, cardID int64) (*api.MessageResponse, error)
	Transfer(ctx context.Context, amount float64, recipientAccount, note string) error
	Withdraw(ctx context.Context, amount float64, bankAccountNumber, note string) error
}

type walletService struct {
	client api.WalletAPI
}

// NewWalletService constructs a WalletService bound to the given API client.
func NewWalletService(client api.WalletAPI) WalletService {
	return &walletService{client: client}
}

// Balance fetches the wallet balance. The backend amount field is tolerant
// of both numeric and string encodings; whatever arrives is normalized to a
// plain float with ZAR as the fallback currency.
func (w *walletService) Balance(ctx context.Context) (*models.Balance, error) {
	resp, err := w.client.WalletBalance(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching balance: %w", err)
	}

	currency := resp.Currency
	if currency == "" {
		currency = "ZAR"
	}
	return &models.Balance{Amount: float64(resp.Balance), Currency: currency}, nil
}

func (w *walletService) Transactions(ctx context.Context, page, perPage int) (*models.TransactionPage, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}
	p, err := w.client.Transactions(ctx, page, perPage)
	if err != nil {
		return nil, fmt.Errorf("fetching transactions: %w", err)
	}
	return p, nil
}

// Summary totals completed transactions by type across every page of the
// ledger. Withdrawals are stored with a negative sign on some backends and
// positive on others, so the absolute value is accumulated.
func (w *walletService) Summary(ctx context.Context) (*models.Summary, error) {
	sum := &models.Summary{}

	for page := 1; ; page++ {
		p, err := w.client.Transactions(ctx, page, 100)
		if err != nil {
			return nil, fmt.Errorf("fetching transactions: %w", err)
		}
		for _, tx := range p.Transactions {
			if tx.Status != models.TxStatusCompleted {
				continue
			}
			switch tx.Type {
			case models.TxDeposit:
				sum.TotalDeposits += tx.Amount
			case models.TxTransfer:
				sum.TotalTransfers += tx.Amount
			case models.TxWithdrawal:
				sum.TotalWithdrawals += math.Abs(tx.Amount)
			}
		}
		if page >= p.Pages || len(p.Transactions) == 0 {
			break
		}
	}
	return sum, nil
}

// Cards lists stored cards, mapped from the backend field names
// (cardholder, expiry, is_primary) onto the client's card shape.
func (w *walletService) Cards(ctx context.Context) ([]models.Card, error) {
	payloads, err := w.client.Cards(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching cards: %w", err)
	}

	cards := make([]models.Card, 0, len(payloads))
	for _, p := range payloads {
		cards = append(cards, models.Card{
			ID:         p.ID,
			CardNumber: p.CardNumber,
			CardHolder: p.CardHolder,
			ExpiryDate: p.Expiry,
			CardType:   p.CardType,
			IsDefault:  p.IsPrimary,
		})
	}
	return cards, nil
}

func (w *walletService) AddCard(ctx context.Context, card models.Card, cvv string) error {
	if err := w.client.AddCard(ctx, cardRequest(card, cvv)); err != nil {
		return fmt.Errorf("adding card: %w", err)
	}
	return nil
}

func (w *walletService) UpdateCard(ctx context.Context, card models.Card, cvv string) error {
	if err := w.client.UpdateCard(ctx, card.ID, cardRequest(card, cvv)); err != nil {
		return fmt.Errorf("updating card: %w", err)
	}
	return nil
}

func (w *walletService) DeleteCard(ctx context.Context, id int64) error {
	if err := w.client.DeleteCard(ctx, id); err != nil {
		return fmt.Errorf("deleting card: %w", err)
	}
	return nil
}

func (w *walletService) Deposit(ctx context.Context, amount float64, cardID int64) (*api.MessageResponse, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("deposit amount must be positive")
	}
	resp, err := w.client.Deposit(ctx, amount, cardID)
	if err != nil {
		return nil, fmt.Errorf("depositing: %w", err)
	}
	return resp, nil
}

func (w *walletService) Transfer(ctx context.Context, amount float64, recipientAccount, note string) error {
	if amount <= 0 {
		return fmt.Errorf("transfer amount must be positive")
	}
	err := w.client.Transfer(ctx, api.TransferRequest{
		Amount:                 amount,
		RecipientAccountNumber: recipientAccount,
		Note:                   note,
	})
	if err != nil {
		return fmt.Errorf("transferring: %w", err)
	}
	return nil
}

func (w *walletService) Withdraw(ctx context.Context, amount float64, bankAccountNumber, note string) error {
	if amount <= 0 {
		return fmt.Errorf("withdrawal amount must be positive")
	}
	if err := w.client.Withdraw(ctx, amount, bankAccountNumber, note); err != nil {
		return fmt.Errorf("withdrawing: %w", err)
	}
	return nil
}

func cardRequest(card models.Card, cvv string) api.CardRequest {
	return api.CardRequest{
		CardHolder: card.CardHolder,
		CardNumber: card.CardNumber,
		Expiry:     card.ExpiryDate,
		CVV:        cvv,
		Primary:    card.IsDefault,
	}
}

// MaskCardNumber renders a stored card number for display, keeping only
// the last four digits.
func MaskCardNumber(number string) string {
	digits := strings.ReplaceAll(number, " ", "")
	if len(digits) <= 4 {
		return digits
	}
	return "**** **** **** " + digits[len(digits)-4:]
}
