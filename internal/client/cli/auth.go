package cli

import (
	"context"
	"log"
	"os"
)

// Register prompts for credentials and creates an account. The controller
// re-returns failures here (unlike Login), so the command can branch and
// keep the user on the register flow.
func (a *App) Register(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if err := a.auth.Register(ctx, email, string(password)); err != nil {
		log.Printf("Registration failed: %s", a.auth.State().Err)
		return err
	}

	log.Printf("Registered and logged in as %s", email)
	return nil
}

// Login prompts for credentials and authenticates. The controller swallows
// failures into state; the outcome is read back from the projection.
func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	a.auth.Login(ctx, email, string(password))

	if a.auth.State().IsAuthenticated {
		log.Printf("Login successful")
	} else {
		log.Printf("Login unsuccessful")
	}
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.auth.Logout()
	a.docs.ClearCurrent()
	log.Printf("Logged out")
	return nil
}

// Dismiss clears the error banner on both projections.
func (a *App) Dismiss(ctx context.Context) error {
	a.auth.ClearError()
	a.docs.ClearError()
	return nil
}
