package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it
// with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a
// lightweight stub.
type execIface interface {
	isLoggedIn(ctx context.Context) bool
	isAdmin(ctx context.Context) bool

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	VerifyEmail(ctx context.Context) error
	VerifyPhone(ctx context.Context) error
	ResendEmailCode(ctx context.Context) error
	ResendSMSCode(ctx context.Context) error

	Balance(ctx context.Context) error
	Transactions(ctx context.Context) error
	Summary(ctx context.Context) error
	Cards(ctx context.Context) error
	AddCard(ctx context.Context) error
	DeleteCard(ctx context.Context) error
	Deposit(ctx context.Context) error
	Transfer(ctx context.Context) error
	Withdraw(ctx context.Context) error

	Groups(ctx context.Context) error
	JoinGroup(ctx context.Context) error
	Contribute(ctx context.Context) error
	MyRequests(ctx context.Context) error
	RequestQueue(ctx context.Context) error
	ApproveRequest(ctx context.Context) error
	RejectRequest(ctx context.Context) error
	CreateGroup(ctx context.Context) error
	DeleteGroup(ctx context.Context) error
	GroupMembers(ctx context.Context) error
	Users(ctx context.Context) error

	Profile(ctx context.Context) error
	UpdateProfile(ctx context.Context) error
	ChangePassword(ctx context.Context) error
	SubmitKYC(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the i-Stokvel CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Errors returned by command handlers are ignored here; handlers print
// their own errors. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func(context.Context) string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("istokvel %s > ", statusFn(ctx)))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			printHelp(ctx, a)

		case "register":
			_ = a.Register(ctx)
		case "login":
			_ = a.Login(ctx)
		case "logout":
			_ = a.Logout(ctx)
		case "verify-email":
			_ = a.VerifyEmail(ctx)
		case "verify-phone":
			_ = a.VerifyPhone(ctx)
		case "resend-email":
			_ = a.ResendEmailCode(ctx)
		case "resend-sms":
			_ = a.ResendSMSCode(ctx)

		case "balance":
			_ = a.Balance(ctx)
		case "transactions", "tx":
			_ = a.Transactions(ctx)
		case "summary":
			_ = a.Summary(ctx)
		case "cards":
			_ = a.Cards(ctx)
		case "addcard":
			_ = a.AddCard(ctx)
		case "delcard":
			_ = a.DeleteCard(ctx)
		case "deposit":
			_ = a.Deposit(ctx)
		case "transfer":
			_ = a.Transfer(ctx)
		case "withdraw":
			_ = a.Withdraw(ctx)

		case "groups":
			_ = a.Groups(ctx)
		case "join":
			_ = a.JoinGroup(ctx)
		case "contribute":
			_ = a.Contribute(ctx)
		case "requests":
			_ = a.MyRequests(ctx)
		case "queue":
			_ = a.RequestQueue(ctx)
		case "approve":
			_ = a.ApproveRequest(ctx)
		case "reject":
			_ = a.RejectRequest(ctx)
		case "creategroup":
			_ = a.CreateGroup(ctx)
		case "delgroup":
			_ = a.DeleteGroup(ctx)
		case "members":
			_ = a.GroupMembers(ctx)
		case "users":
			_ = a.Users(ctx)

		case "profile":
			_ = a.Profile(ctx)
		case "update":
			_ = a.UpdateProfile(ctx)
		case "passwd":
			_ = a.ChangePassword(ctx)
		case "kyc":
			_ = a.SubmitKYC(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func printHelp(ctx context.Context, a execIface) {
	if !a.isLoggedIn(ctx) {
		printlnFn("Available commands: register, login, verify-email, verify-phone, resend-email, resend-sms, exit")
		return
	}
	printlnFn("Wallet:  balance, transactions, summary, cards, addcard, delcard, deposit, transfer, withdraw")
	printlnFn("Groups:  groups, join, contribute, requests")
	printlnFn("Account: profile, update, passwd, kyc, logout, exit")
	if a.isAdmin(ctx) {
		printlnFn("Admin:   queue, approve, reject, creategroup, delgroup, members, users")
	}
}
