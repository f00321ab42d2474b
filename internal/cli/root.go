package cli

import (
	"context"
	"fmt"
	"strings"
)

func (a *App) getStatus() string {
	s := a.controller.Session()
	switch {
	case s.IsLoading:
		return "(checking...)"
	case s.IsAuthenticated:
		return fmt.Sprintf("(%s)", s.User.Username)
	default:
		return ""
	}
}

// Root runs the command loop until quit or EOF.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to WolfRead (type 'help' for commands)")

	for {
		fmt.Fprintf(a.out, "wolfread %s> ", a.getStatus())

		line, err := a.reader.ReadString('\n')
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "help":
			a.Help()
		case "register":
			if err := a.RegisterCmd(ctx); err != nil {
				fmt.Fprintf(a.out, "error: %v\n", err)
			}
		case "login":
			if err := a.LoginCmd(ctx); err != nil {
				fmt.Fprintf(a.out, "error: %v\n", err)
			}
		case "logout":
			a.LogoutCmd(ctx)
		case "whoami":
			a.Whoami()
		case "profile":
			if err := a.ProfileCmd(ctx); err != nil {
				fmt.Fprintf(a.out, "error: %v\n", err)
			}
		case "passwd":
			if err := a.PasswdCmd(ctx); err != nil {
				fmt.Fprintf(a.out, "error: %v\n", err)
			}
		case "quit", "exit":
			return
		default:
			fmt.Fprintf(a.out, "unknown command %q (type 'help')\n", parts[0])
		}
	}
}

func (a *App) Help() {
	fmt.Fprint(a.out, `Commands:
  register  create a WolfRead account
  login     sign in
  logout    sign out
  whoami    show the current session
  profile   update profile fields
  passwd    change password (signs you out)
  quit      leave
`)
}
