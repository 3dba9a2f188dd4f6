package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/partkit/partkit/internal/domain/shared"
)

func newLoginCmd(a *app) *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate with the catalog API",
		RunE: func(cmd *cobra.Command, args []string) error {
			if username == "" {
				username = a.cfg.API.Username
			}
			if password == "" {
				password = a.cfg.API.Password
			}
			if username == "" || password == "" {
				return shared.NewDomainError("MISSING_CREDENTIALS",
					"Set api.username and api.password in config.toml or pass --username/--password")
			}

			svc, err := a.service()
			if err != nil {
				return err
			}
			if err := svc.Login(cmd.Context(), username, password); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Login successful")
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")
	return cmd
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Invalidate the cached API session",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service()
			if err != nil {
				return err
			}
			if err := svc.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}

const credentialsTemplate = `# partkit configuration
[api]
username = "you@example.com"
password = ""
certificate_path = "~/.partkit/certificate.pfx"
certificate_password = ""

[log]
level = "info"
format = "console"
`

func newInitCredentialsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init-credentials",
		Short: "Write a config.toml template to the data directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.cfg.EnsureDataDirs(); err != nil {
				return err
			}

			path := filepath.Join(a.cfg.Path.DataDir, "config.toml")
			if _, err := os.Stat(path); err == nil {
				return shared.NewDomainError("CONFIG_EXISTS",
					fmt.Sprintf("Refusing to overwrite existing %s", path))
			}

			if err := os.WriteFile(path, []byte(credentialsTemplate), 0o600); err != nil {
				return fmt.Errorf("writing %s: %w", path, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote credentials template to %s\n", path)
			return nil
		},
	}
}
