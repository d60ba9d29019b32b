package cli

import (
	"context"
	"fmt"

	"github.com/mindtrackhq/mindtrack/internal/identity"
	"github.com/mindtrackhq/mindtrack/internal/logger"
	"github.com/mindtrackhq/mindtrack/internal/models"
)

type AuthLoginCmd struct {
	Email    string `arg:"" help:"Account email."`
	Password string `short:"p" help:"Account password." env:"MINDTRACK_PASSWORD" required:""`
}

func (c *AuthLoginCmd) Run(ctx *Context) error {
	provider, err := ctx.IdentityClient()
	if err != nil {
		return err
	}
	session, err := provider.SignInWithPassword(context.Background(), c.Email, c.Password)
	if err != nil {
		return err
	}

	snapshot := mirrorIdentity(provider, session)
	if err := ctx.Store.SaveProfileSnapshot(snapshot); err != nil {
		logger.Warn("could not save profile snapshot", "error", err)
	}
	fmt.Printf("Signed in as %s\n", displayName(snapshot))
	return nil
}

type AuthSignupCmd struct {
	Email    string `arg:"" help:"Account email."`
	Password string `short:"p" help:"Account password." env:"MINDTRACK_PASSWORD" required:""`
	FullName string `short:"n" help:"Display name."`
}

func (c *AuthSignupCmd) Run(ctx *Context) error {
	provider, err := ctx.IdentityClient()
	if err != nil {
		return err
	}
	session, err := provider.SignUpWithMetadata(context.Background(), c.Email, c.Password, c.FullName)
	if err != nil {
		return err
	}

	profile := models.Profile{ID: session.UserID, Email: session.Email, FullName: c.FullName}
	if err := provider.InsertProfile(context.Background(), profile); err != nil {
		logger.Warn("could not create profile row", "error", err)
	}

	snapshot := mirrorIdentity(provider, session)
	if err := ctx.Store.SaveProfileSnapshot(snapshot); err != nil {
		logger.Warn("could not save profile snapshot", "error", err)
	}
	fmt.Printf("Account created for %s\n", session.Email)
	return nil
}

type AuthLogoutCmd struct{}

func (c *AuthLogoutCmd) Run(ctx *Context) error {
	provider, err := ctx.IdentityClient()
	if err != nil {
		return err
	}
	if err := provider.SignOut(context.Background()); err != nil {
		return err
	}
	if err := ctx.Store.ClearProfileSnapshot(); err != nil {
		logger.Warn("could not clear profile snapshot", "error", err)
	}
	fmt.Println("Signed out.")
	return nil
}

type AuthWhoamiCmd struct{}

func (c *AuthWhoamiCmd) Run(ctx *Context) error {
	// The local snapshot answers without a network round trip
	if snapshot, err := ctx.Store.GetProfileSnapshot(); err == nil && snapshot.ID != "" {
		fmt.Printf("%s <%s>\n", displayName(snapshot), snapshot.Email)
		return nil
	}

	provider, err := ctx.IdentityClient()
	if err != nil {
		return err
	}
	session, err := provider.CurrentSession(context.Background())
	if err != nil {
		return err
	}
	if session == nil {
		fmt.Println("Not signed in.")
		return nil
	}
	snapshot := mirrorIdentity(provider, session)
	fmt.Printf("%s <%s>\n", displayName(snapshot), snapshot.Email)
	return nil
}

type AuthDeleteAccountCmd struct {
	Confirm bool `help:"Confirm permanent account deletion." required:""`
}

func (c *AuthDeleteAccountCmd) Run(ctx *Context) error {
	provider, err := ctx.IdentityClient()
	if err != nil {
		return err
	}
	session, err := provider.CurrentSession(context.Background())
	if err != nil {
		return err
	}
	if session == nil {
		return identity.ErrNotAuthenticated
	}

	if err := provider.DeleteProfile(context.Background(), session.UserID); err != nil {
		logger.Warn("could not delete profile row", "error", err)
	}
	if err := provider.DeleteUser(context.Background(), session.UserID); err != nil {
		return err
	}
	if err := provider.SignOut(context.Background()); err != nil {
		logger.Warn("sign-out after account deletion failed", "error", err)
	}
	if err := ctx.Store.ClearProfileSnapshot(); err != nil {
		logger.Warn("could not clear profile snapshot", "error", err)
	}
	fmt.Println("Account deleted.")
	return nil
}

// mirrorIdentity builds the read-only identity view through the shim's
// name-preference rules.
func mirrorIdentity(provider identity.Provider, session *identity.Session) models.Identity {
	shim := identity.NewShim(provider)
	if err := shim.Attach(context.Background()); err == nil {
		defer shim.Close()
		if mirrored, ok := shim.Identity(); ok {
			return mirrored
		}
	}
	return models.Identity{ID: session.UserID, Email: session.Email, FullName: session.FullName}
}

func displayName(id models.Identity) string {
	if id.FullName != "" {
		return id.FullName
	}
	return id.Email
}
