package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/truthlens/truthlens/internal/client/forms"
	"github.com/truthlens/truthlens/internal/client/workflows"
	"github.com/truthlens/truthlens/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and signs in through the auth workflow. The
// password byte slice is securely wiped before returning. Validation errors
// and failed authentication are reported to the user, not returned.
func (a *App) Login(ctx context.Context) error {
	a.authFlow.SetMode(forms.KindLogin)

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	a.authFlow.Form().Set(forms.FieldEmail, email)
	a.authFlow.Form().Set(forms.FieldPassword, string(password))

	if err := a.submitAuth(ctx); err != nil {
		return err
	}
	if a.isLoggedIn() {
		fmt.Printf("Welcome back, %s!\n", a.session.Current().Username)
	}
	return nil
}

// Signup prompts for the new account details and registers through the auth
// workflow.
func (a *App) Signup(ctx context.Context) error {
	a.authFlow.SetMode(forms.KindSignup)

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	a.authFlow.Form().Set(forms.FieldEmail, email)
	a.authFlow.Form().Set(forms.FieldUsername, username)
	a.authFlow.Form().Set(forms.FieldPassword, string(password))

	if err := a.submitAuth(ctx); err != nil {
		return err
	}
	if a.isLoggedIn() {
		fmt.Printf("Account created. Welcome, %s!\n", a.session.Current().Username)
	}
	return nil
}

func (a *App) submitAuth(ctx context.Context) error {
	err := a.authFlow.Submit(ctx)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, workflows.ErrInvalidForm):
		printFieldErrors(a.authFlow.Form().FieldErrors())
		return nil
	case errors.Is(err, common.ErrInvalidCredentials):
		fmt.Println("Invalid email or password.")
		return nil
	case errors.Is(err, common.ErrAlreadyExists):
		fmt.Println("An account with this email already exists.")
		return nil
	case errors.Is(err, common.ErrUnavailable):
		fmt.Println("Server unavailable, try again later.")
		return nil
	default:
		log.Printf("Authentication failed: %s", err.Error())
		return nil
	}
}

// Logout clears the session. The navigation guard reacts by leaving any
// protected view.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		return err
	}
	fmt.Println("Signed out.")
	return nil
}

func printFieldErrors(errs forms.Errors) {
	for field, msg := range errs {
		if field == forms.FieldForm {
			fmt.Println(msg)
			continue
		}
		fmt.Printf("%s: %s\n", field, msg)
	}
}
