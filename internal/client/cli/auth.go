package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/Zestathon/payorbit/internal/client/api"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and authenticates. The profile from the
// login response becomes the current user; a rejection is shown as-is and
// leaves the stored session untouched.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout, "Enter password")
	if err != nil {
		return err
	}

	user, err := a.api.Login(ctx, username, string(password))
	if err != nil {
		return err
	}

	fmt.Printf("Welcome, %s!\n", displayName(user.FirstName, user.LastName, user.Username))
	return nil
}

// Register prompts for the registration fields and creates an account. No
// session is established; the user is told to login afterwards.
func (a *App) Register(ctx context.Context) error {
	var req api.RegisterRequest

	prompts := []struct {
		text string
		dst  *string
	}{
		{"Enter username", &req.Username},
		{"Enter email", &req.Email},
		{"Enter organization name", &req.OrganizationName},
		{"Enter first name", &req.FirstName},
		{"Enter last name", &req.LastName},
	}

	for _, p := range prompts {
		v, err := getSimpleText(a.reader, p.text, os.Stdout)
		if err != nil {
			return err
		}
		*p.dst = v
	}

	password, err := getPassword(os.Stdout, "Enter password")
	if err != nil {
		return err
	}
	confirm, err := getPassword(os.Stdout, "Confirm password")
	if err != nil {
		return err
	}
	req.Password = string(password)
	req.ConfirmPassword = string(confirm)

	if err := a.api.Register(ctx, req); err != nil {
		return err
	}

	fmt.Println("Account created. Please login.")
	return nil
}

// Logout ends the session. Local clearing always happens, so logging out
// twice in a row is harmless.
func (a *App) Logout(ctx context.Context) error {
	if err := a.api.Logout(ctx); err != nil {
		return err
	}
	fmt.Println("Logged out.")
	return nil
}

// ForgotPassword starts a password reset for an email address.
func (a *App) ForgotPassword(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	if err := a.api.ForgotPassword(ctx, email); err != nil {
		return err
	}
	fmt.Println("If the account exists, a reset email is on its way.")
	return nil
}

// ResetPassword completes a password reset with the emailed token.
func (a *App) ResetPassword(ctx context.Context) error {
	token, err := getSimpleText(a.reader, "Enter reset token", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout, "Enter new password")
	if err != nil {
		return err
	}
	if err := a.api.ResetPassword(ctx, token, string(password)); err != nil {
		return err
	}
	fmt.Println("Password updated. Please login.")
	return nil
}

// Whoami prints the current user from the credential store; no network.
func (a *App) Whoami() {
	u := a.api.CurrentUser()
	if u == nil {
		fmt.Println("Not logged in.")
		return
	}
	fmt.Printf("%s <%s>", u.Username, u.Email)
	if u.OrganizationName != "" {
		fmt.Printf(" @ %s", u.OrganizationName)
	}
	fmt.Println()
}

func displayName(first, last, username string) string {
	switch {
	case first != "" && last != "":
		return first + " " + last
	case first != "":
		return first
	default:
		return username
	}
}
