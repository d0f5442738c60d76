package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	if u := a.store.CurrentUser(); u != nil {
		return fmt.Sprintf("(%s) ", u.Username)
	}
	return ""
}

func (a *App) Root(ctx context.Context) {

	fmt.Println("Welcome to PayOrbit CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		if a.invalidated.Swap(false) {
			fmt.Println("Your session has expired. Please login again.")
		}

		fmt.Printf("payorbit %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		var err error

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Println("Available commands: whoami, upload <file>, uploads [page [size]], employees <uploadID> [page [size]], export <employeeID> [excel|pdf], stats, logout, exit")
			} else {
				fmt.Println("Available commands: register, login, forgot-password, reset-password, exit")
			}
		case "register":
			err = a.Register(ctx)
		case "login":
			err = a.Login(ctx)
		case "logout":
			err = a.Logout(ctx)
		case "forgot-password":
			err = a.ForgotPassword(ctx)
		case "reset-password":
			err = a.ResetPassword(ctx)
		case "whoami":
			a.Whoami()
		case "upload":
			err = a.Upload(ctx, args)
		case "uploads":
			err = a.ListUploads(ctx, args)
		case "employees":
			err = a.ListEmployees(ctx, args)
		case "export":
			err = a.Export(ctx, args)
		case "stats":
			err = a.Stats(ctx)
		case "exit", "quit":
			fmt.Println("Bye!")
			return
		default:
			fmt.Println("Unknown command:", cmd)
		}

		if err != nil {
			fmt.Println("Error:", err)
		}
	}
}
