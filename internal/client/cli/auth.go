package cli

import (
	"context"
	"fmt"
	"os"
)

// getSimpleText and getPassword are indirections used to facilitate
// testing. They point to interactive input helpers and can be swapped in
// tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for the signup details and attempts to create a new
// account. The outcome message comes straight from the session manager.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Full name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Email", os.Stdout)
	if err != nil {
		return err
	}
	phone, err := getSimpleText(a.reader, "Phone number", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout, "Enter password")
	if err != nil {
		return err
	}

	res := a.session.Signup(ctx, name, email, password, phone)
	fmt.Println(res.Message)
	if res.Success {
		fmt.Println("Check your email for the verification code, then run 'verify-email'.")
	}
	return nil
}

// Login prompts for credentials and authenticates. When the backend
// demands a second factor, the SMS code is requested and verified in the
// same flow before retrying.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout, "Enter password")
	if err != nil {
		return err
	}

	res := a.session.Login(ctx, email, password)
	fmt.Println(res.Message)

	if res.TwoFactorRequired {
		phone, err := getSimpleText(a.reader, "Phone number for the SMS code", os.Stdout)
		if err != nil {
			return err
		}
		if resp := a.session.SendSmsVerificationCode(ctx, phone); !resp.Success {
			fmt.Println(resp.Message)
			return nil
		}
		code, err := getSimpleText(a.reader, "SMS code", os.Stdout)
		if err != nil {
			return err
		}
		if resp := a.session.VerifyPhoneCode(ctx, phone, code); !resp.Success {
			fmt.Println(resp.Message)
			return nil
		}
		res = a.session.Login(ctx, email, password)
		fmt.Println(res.Message)
	}
	return nil
}

// Logout ends the session. The redirect lands back on the login screen
// whatever the backend says.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	return nil
}

// VerifyEmail submits an emailed verification code.
func (a *App) VerifyEmail(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Email", os.Stdout)
	if err != nil {
		return err
	}
	code, err := getSimpleText(a.reader, "Verification code", os.Stdout)
	if err != nil {
		return err
	}
	res := a.session.VerifyEmailCode(ctx, email, code)
	fmt.Println(res.Message)
	return nil
}

// VerifyPhone submits an SMS verification code.
func (a *App) VerifyPhone(ctx context.Context) error {
	phone, err := getSimpleText(a.reader, "Phone number", os.Stdout)
	if err != nil {
		return err
	}
	code, err := getSimpleText(a.reader, "SMS code", os.Stdout)
	if err != nil {
		return err
	}
	resp := a.session.VerifyPhoneCode(ctx, phone, code)
	fmt.Println(resp.Message)
	return nil
}

// ResendEmailCode requests a fresh email verification code.
func (a *App) ResendEmailCode(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Email", os.Stdout)
	if err != nil {
		return err
	}
	res := a.session.ResendEmailVerificationCode(ctx, email)
	fmt.Println(res.Message)
	return nil
}

// ResendSMSCode requests a fresh SMS verification code.
func (a *App) ResendSMSCode(ctx context.Context) error {
	phone, err := getSimpleText(a.reader, "Phone number", os.Stdout)
	if err != nil {
		return err
	}
	res := a.session.ResendSmsVerificationCode(ctx, phone)
	fmt.Println(res.Message)
	return nil
}
