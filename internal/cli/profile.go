package cli

import (
	"context"
	"fmt"

	"github.com/wolfread/wolfread-go/internal/api"
)

// Whoami prints the current session.
func (a *App) Whoami() {
	s := a.controller.Session()
	if !s.IsAuthenticated {
		fmt.Fprintln(a.out, "Not signed in")
		return
	}
	fmt.Fprintf(a.out, "%s <%s>", s.User.FullName(), s.User.Email)
	if s.User.IsStaff {
		fmt.Fprint(a.out, " [staff]")
	}
	fmt.Fprintln(a.out)
}

// ProfileCmd prompts for new profile fields; empty answers leave a field
// unchanged. Current values are re-read from the server first so the
// prompts reflect changes made from another device.
func (a *App) ProfileCmd(ctx context.Context) error {
	if !a.controller.Session().IsAuthenticated {
		fmt.Fprintln(a.out, "Sign in first")
		return nil
	}

	if err := a.controller.ReloadProfile(ctx); err != nil {
		fmt.Fprintf(a.out, "Could not load profile: %s\n", a.controller.Session().Err)
		return nil
	}
	user := a.controller.Session().User

	first, err := getSimpleText(a.reader, fmt.Sprintf("First name [%s] (empty to keep)", user.FirstName), a.out)
	if err != nil {
		return err
	}
	last, err := getSimpleText(a.reader, fmt.Sprintf("Last name [%s] (empty to keep)", user.LastName), a.out)
	if err != nil {
		return err
	}

	if err := a.controller.UpdateProfile(ctx, api.ProfileUpdate{
		FirstName: first,
		LastName:  last,
	}); err != nil {
		fmt.Fprintf(a.out, "Update failed: %s\n", a.controller.Session().Err)
		return nil
	}

	fmt.Fprintln(a.out, "Profile updated")
	return nil
}

// PasswdCmd changes the password. Success invalidates every token for the
// account, so the user lands signed out.
func (a *App) PasswdCmd(ctx context.Context) error {
	if !a.controller.Session().IsAuthenticated {
		fmt.Fprintln(a.out, "Sign in first")
		return nil
	}

	current, err := getPassword("Current password", a.out)
	if err != nil {
		return err
	}
	next, err := getPassword("New password", a.out)
	if err != nil {
		return err
	}

	msg, err := a.controller.ChangePassword(ctx, current, next)
	if err != nil {
		fmt.Fprintf(a.out, "Password change failed: %s\n", a.controller.Session().Err)
		return nil
	}

	fmt.Fprintf(a.out, "%s\nYou have been signed out everywhere; sign in with the new password.\n", msg)
	return nil
}
