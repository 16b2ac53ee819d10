package cli

import (
	"context"
	"fmt"
	"os"
)

// Profile prints the account details.
func (a *App) Profile(ctx context.Context) error {
	p, err := a.profile.Get(ctx)
	if err != nil {
		fmt.Println("Could not fetch profile:", err)
		return err
	}
	fmt.Printf("Name:    %s\nEmail:   %s\nPhone:   %s\nAccount: %s\n", p.Name, p.Email, p.Phone, p.AccountNumber)
	if p.DateOfBirth != "" {
		fmt.Printf("Born:    %s\n", p.DateOfBirth)
	}
	return nil
}

// UpdateProfile edits the editable profile fields. Empty input keeps the
// current value.
func (a *App) UpdateProfile(ctx context.Context) error {
	current, err := a.profile.Get(ctx)
	if err != nil {
		fmt.Println("Could not fetch profile:", err)
		return err
	}

	updated := *current
	fields := []struct {
		prompt string
		dest   *string
	}{
		{"Name", &updated.Name},
		{"Phone", &updated.Phone},
		{"Date of birth (YYYY-MM-DD)", &updated.DateOfBirth},
		{"Gender", &updated.Gender},
		{"Employment status", &updated.EmploymentStatus},
	}
	for _, f := range fields {
		v, err := getSimpleText(a.reader, fmt.Sprintf("%s [%s]", f.prompt, *f.dest), os.Stdout)
		if err != nil {
			return err
		}
		if v != "" {
			*f.dest = v
		}
	}

	if err := a.profile.Update(ctx, updated); err != nil {
		fmt.Println("Could not update profile:", err)
		return err
	}
	fmt.Println("Profile updated")
	return nil
}

// ChangePassword changes the account password.
func (a *App) ChangePassword(ctx context.Context) error {
	current, err := getPassword(os.Stdout, "Current password")
	if err != nil {
		return err
	}
	newPass, err := getPassword(os.Stdout, "New password")
	if err != nil {
		return err
	}
	if err := a.profile.ChangePassword(ctx, current, newPass); err != nil {
		fmt.Println("Could not change password:", err)
		return err
	}
	fmt.Println("Password changed")
	return nil
}

// SubmitKYC fills in and submits the KYC form, prefilled from the profile.
func (a *App) SubmitKYC(ctx context.Context) error {
	sub, err := a.kyc.Prefill(ctx)
	if err != nil {
		fmt.Println("Could not prefill KYC form:", err)
		return err
	}

	sections := []struct {
		prompt string
		dest   *string
	}{
		{"Full name", &sub.Personal.FullName},
		{"Date of birth (YYYY-MM-DD)", &sub.Personal.DateOfBirth},
		{"ID number", &sub.Personal.IDNumber},
		{"Employment status", &sub.Personal.EmploymentStatus},
		{"Employer name", &sub.Personal.EmployerName},
		{"Street address", &sub.Address.StreetAddress},
		{"City", &sub.Address.City},
		{"Province", &sub.Address.Province},
		{"Postal code", &sub.Address.PostalCode},
		{"Country", &sub.Address.Country},
		{"Monthly income", &sub.Income.MonthlyIncome},
		{"Income source", &sub.Income.IncomeSource},
		{"Employment type", &sub.Income.EmploymentType},
		{"Bank name", &sub.Bank.BankName},
		{"Bank account number", &sub.Bank.AccountNumber},
		{"Account type", &sub.Bank.AccountType},
		{"Branch code", &sub.Bank.BranchCode},
	}
	for _, s := range sections {
		v, err := getSimpleText(a.reader, fmt.Sprintf("%s [%s]", s.prompt, *s.dest), os.Stdout)
		if err != nil {
			return err
		}
		if v != "" {
			*s.dest = v
		}
	}

	if err := a.kyc.Submit(ctx, *sub); err != nil {
		fmt.Println("Could not submit KYC:", err)
		return err
	}
	fmt.Println("KYC submitted for review")
	return nil
}
