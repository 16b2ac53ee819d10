package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/Sdizo-sdizo/i-Stokvel/internal/client/models"
	"github.com/Sdizo-sdizo/i-Stokvel/internal/client/services"
)

// Balance prints the wallet balance.
func (a *App) Balance(ctx context.Context) error {
	b, err := a.wallet.Balance(ctx)
	if err != nil {
		fmt.Println("Could not fetch balance:", err)
		return err
	}
	fmt.Printf("Balance: %.2f %s\n", b.Amount, b.Currency)
	return nil
}

// Transactions prints one page of the wallet ledger.
func (a *App) Transactions(ctx context.Context) error {
	page, err := GetID(a.reader, "Page", os.Stdout)
	if err != nil {
		fmt.Println(err)
		return err
	}
	p, err := a.wallet.Transactions(ctx, int(page), 10)
	if err != nil {
		fmt.Println("Could not fetch transactions:", err)
		return err
	}
	for _, tx := range p.Transactions {
		fmt.Printf("%6d  %-10s  %10.2f  %-9s  %s\n", tx.ID, tx.Type, tx.Amount, tx.Status, tx.CreatedAt)
	}
	fmt.Printf("Page %d of %d (%d total)\n", p.Page, p.Pages, p.Total)
	return nil
}

// Summary prints completed-transaction totals by type.
func (a *App) Summary(ctx context.Context) error {
	s, err := a.wallet.Summary(ctx)
	if err != nil {
		fmt.Println("Could not fetch summary:", err)
		return err
	}
	fmt.Printf("Deposits: %.2f  Transfers: %.2f  Withdrawals: %.2f\n",
		s.TotalDeposits, s.TotalTransfers, s.TotalWithdrawals)
	return nil
}

// Cards lists stored cards with masked numbers.
func (a *App) Cards(ctx context.Context) error {
	cards, err := a.wallet.Cards(ctx)
	if err != nil {
		fmt.Println("Could not fetch cards:", err)
		return err
	}
	for _, c := range cards {
		def := ""
		if c.IsDefault {
			def = " (default)"
		}
		fmt.Printf("%4d  %s  %s  %s%s\n", c.ID, services.MaskCardNumber(c.CardNumber), c.CardHolder, c.ExpiryDate, def)
	}
	return nil
}

// AddCard prompts for card details and stores the card.
func (a *App) AddCard(ctx context.Context) error {
	holder, err := getSimpleText(a.reader, "Cardholder name", os.Stdout)
	if err != nil {
		return err
	}
	number, err := getSimpleText(a.reader, "Card number", os.Stdout)
	if err != nil {
		return err
	}
	expiry, err := getSimpleText(a.reader, "Expiry (MM/YY)", os.Stdout)
	if err != nil {
		return err
	}
	cvv, err := getPassword(os.Stdout, "CVV")
	if err != nil {
		return err
	}
	primary, err := getSimpleText(a.reader, "Set as default? (y/n)", os.Stdout)
	if err != nil {
		return err
	}

	card := models.Card{
		CardHolder: holder,
		CardNumber: number,
		ExpiryDate: expiry,
		IsDefault:  primary == "y",
	}
	if err := a.wallet.AddCard(ctx, card, cvv); err != nil {
		fmt.Println("Could not add card:", err)
		return err
	}
	fmt.Println("Card added")
	return nil
}

// DeleteCard removes a stored card by id.
func (a *App) DeleteCard(ctx context.Context) error {
	id, err := GetID(a.reader, "Card id", os.Stdout)
	if err != nil {
		fmt.Println(err)
		return err
	}
	if err := a.wallet.DeleteCard(ctx, id); err != nil {
		fmt.Println("Could not delete card:", err)
		return err
	}
	fmt.Println("Card deleted")
	return nil
}

// Deposit loads money into the wallet from a stored card.
func (a *App) Deposit(ctx context.Context) error {
	amount, err := GetAmount(a.reader, "Amount", os.Stdout)
	if err != nil {
		fmt.Println(err)
		return err
	}
	cardID, err := GetID(a.reader, "Card id", os.Stdout)
	if err != nil {
		fmt.Println(err)
		return err
	}
	resp, err := a.wallet.Deposit(ctx, amount, cardID)
	if err != nil {
		fmt.Println("Deposit failed:", err)
		return err
	}
	fmt.Println(resp.Message)
	return nil
}

// Transfer sends money to another member's account.
func (a *App) Transfer(ctx context.Context) error {
	amount, err := GetAmount(a.reader, "Amount", os.Stdout)
	if err != nil {
		fmt.Println(err)
		return err
	}
	account, err := getSimpleText(a.reader, "Recipient account number", os.Stdout)
	if err != nil {
		return err
	}
	note, err := getSimpleText(a.reader, "Note (optional)", os.Stdout)
	if err != nil {
		return err
	}
	if err := a.wallet.Transfer(ctx, amount, account, note); err != nil {
		fmt.Println("Transfer failed:", err)
		return err
	}
	fmt.Println("Transfer successful")
	return nil
}

// Withdraw moves wallet money to a bank account.
func (a *App) Withdraw(ctx context.Context) error {
	amount, err := GetAmount(a.reader, "Amount", os.Stdout)
	if err != nil {
		fmt.Println(err)
		return err
	}
	account, err := getSimpleText(a.reader, "Bank account number", os.Stdout)
	if err != nil {
		return err
	}
	note, err := getSimpleText(a.reader, "Note (optional)", os.Stdout)
	if err != nil {
		return err
	}
	if err := a.wallet.Withdraw(ctx, amount, account, note); err != nil {
		fmt.Println("Withdrawal failed:", err)
		return err
	}
	fmt.Println("Withdrawal requested")
	return nil
}
