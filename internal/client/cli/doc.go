// Package cli provides the interactive i-Stokvel command-line client.
//
// It wires configuration, the local session store, the REST API client and
// an interactive REPL. Typical flow: log in (or register and verify), then
// operate on the wallet, stokvel groups and account from the prompt.
//
// Key features:
//   - Register / Login (with 2FA) / Logout
//   - Email and phone verification codes
//   - Wallet: balance, transactions, summary, cards, deposit, transfer,
//     withdraw
//   - Groups: browse, join, contribute; admin approval queue and group
//     management
//   - Account: profile, password change, KYC submission
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
