package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/dmitrijs2005/gophdrive/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for name, email and password (twice) and attempts to
// create a new account. Successful registration logs the user in.
//
// Both password byte slices are securely wiped before returning.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	password2, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password2)

	res := a.gateway.Register(ctx, name, email, string(password), string(password2))
	if !res.OK {
		log.Printf("Registration unsuccessful: %s", res.Message)
		for _, e := range res.Errors {
			log.Printf("  - %s", e)
		}
		return nil
	}

	a.user = res.User
	fmt.Println("Success!")
	return nil
}

// Login prompts for credentials and tries to authenticate. On success the
// gateway has already stored the issued credential; the app keeps the user
// for the status line and loads the first dashboard snapshot.
//
// The password is securely wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	res := a.gateway.Login(ctx, email, string(password))
	if !res.OK {
		log.Printf("Login unsuccessful: %s", res.Message)
		return nil
	}

	a.user = res.User
	log.Printf("Login successful")

	if err := a.refresh(ctx); err != nil {
		log.Printf("error: %v", err)
	}
	return nil
}

// Logout ends the server session and drops local state. The credential is
// cleared by the gateway regardless of the server outcome.
func (a *App) Logout(ctx context.Context) error {
	res := a.gateway.Logout(ctx)
	if !res.OK {
		log.Printf("Logout: %s", res.Message)
	}

	a.user = nil
	a.files = nil
	a.folders = nil
	return nil
}

// Whoami revalidates the credential and prints the current account.
func (a *App) Whoami(ctx context.Context) error {
	res := a.gateway.Me(ctx)
	if !res.OK {
		log.Printf("error: %s", res.Message)
		return nil
	}
	fmt.Printf("%s <%s>\n", res.User.Name, res.User.Email)
	return nil
}
