package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/stubhub/internal/api/handlers"
	"github.com/donaldgifford/stubhub/internal/store"
	"github.com/donaldgifford/stubhub/pkg/stubhub"
)

// Environment variables consulted when the login flags are empty.
const (
	envUsername = "STUBHUB_USERNAME"
	envPassword = "STUBHUB_PASSWORD"
)

func loginCmd() *cobra.Command {
	var creds stubhub.Credentials

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the seller session",
		Long: "Log in with a username and password, or renew the session with a\n" +
			"refresh token. With no credentials the stored refresh token is used.\n" +
			"The password may also come from " + envPassword + ".",
		Example: `  # Password login
  stubhub login --username seller@example.com --password s3cret

  # Renew the stored session
  stubhub login`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			return withApp(ctx, func(a *app) error {
				if creds.Username == "" {
					creds.Username = os.Getenv(envUsername)
				}
				if creds.Password == "" {
					creds.Password = os.Getenv(envPassword)
				}
				if creds.Username == "" && creds.RefreshToken == "" {
					prev, err := a.sessions.LoadSession(ctx, a.accountKey())
					if err != nil && !errors.Is(err, store.ErrNotFound) {
						return err
					}
					creds.RefreshToken = prev.RefreshToken
				}

				ok, err := a.client.Login(ctx, creds)
				if err != nil {
					return err
				}
				if !ok {
					return errors.New("login rejected by StubHub")
				}

				sess := a.client.Session()
				if err := a.sessions.SaveSession(ctx, a.accountKey(), sess); err != nil {
					return fmt.Errorf("saving session: %w", err)
				}

				if jsonOutput() {
					return outputJSON(handlers.Summarize(sess))
				}
				return printSession(sess)
			})
		},
	}
	cmd.Flags().StringVar(&creds.Username, "username", "", "seller account username")
	cmd.Flags().StringVar(&creds.Password, "password", "", "seller account password")
	cmd.Flags().StringVar(&creds.RefreshToken, "refresh-token", "", "refresh token from an earlier login")

	return cmd
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored seller session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			return withApp(ctx, func(a *app) error {
				if err := a.sessions.DeleteSession(ctx, a.accountKey()); err != nil {
					return fmt.Errorf("deleting session: %w", err)
				}
				fmt.Println("Logged out.")
				return nil
			})
		},
	}
}
