package cli

import (
	"context"
	"fmt"

	"github.com/wolfread/wolfread-go/internal/api"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// RegisterCmd prompts for account fields and creates an account. A fresh
// account always gets the onboarding prompt.
func (a *App) RegisterCmd(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Pick a username", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}

	if err := a.controller.Register(ctx, api.RegisterRequest{
		Username:        username,
		Email:           email,
		Password:        password,
		PasswordConfirm: password,
	}); err != nil {
		fmt.Fprintf(a.out, "Registration failed: %s\n", a.controller.Session().Err)
		return nil
	}

	fmt.Fprintln(a.out, "Welcome to WolfRead!")
	a.maybeShowOnboarding(ctx)
	return nil
}

// LoginCmd prompts for credentials and signs in.
func (a *App) LoginCmd(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}

	if err := a.controller.Login(ctx, email, password); err != nil {
		fmt.Fprintf(a.out, "Login failed: %s\n", a.controller.Session().Err)
		return nil
	}

	s := a.controller.Session()
	fmt.Fprintf(a.out, "Signed in as %s\n", s.User.Username)
	a.maybeShowOnboarding(ctx)
	return nil
}

func (a *App) LogoutCmd(ctx context.Context) {
	a.controller.Logout(ctx)
	fmt.Fprintln(a.out, "Signed out")
}

// maybeShowOnboarding consumes the one-shot flag; it only ever fires once
// per set.
func (a *App) maybeShowOnboarding(ctx context.Context) {
	if a.controller.ConsumeOnboarding(ctx) {
		fmt.Fprintln(a.out, "Tell us what you like to read: visit Preferences to get better recommendations.")
	}
}
