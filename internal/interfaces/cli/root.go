package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/partkit/partkit/internal/application/parts"
	"github.com/partkit/partkit/internal/infrastructure/auth"
	"github.com/partkit/partkit/internal/infrastructure/config"
	"github.com/partkit/partkit/internal/infrastructure/logger"
	"github.com/partkit/partkit/internal/infrastructure/mcmaster"
	"github.com/partkit/partkit/internal/infrastructure/persistence"
)

// app holds lazily constructed collaborators shared by the commands.
type app struct {
	cfg    *config.Config
	logger *zap.Logger
	db     *persistence.Database
	svc    *parts.Service

	output string
}

// setup loads config and builds the logger. Called before every command.
func (a *app) setup() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	a.cfg = cfg

	zapLogger, err := logger.New(cfg.Log.Level, cfg.Log.Format, cfg.Log.Output)
	if err != nil {
		return err
	}
	a.logger = zapLogger
	return nil
}

// service wires the API client, ledger, and naming engine on first use.
func (a *app) service() (*parts.Service, error) {
	if a.svc != nil {
		return a.svc, nil
	}

	if err := a.cfg.EnsureDataDirs(); err != nil {
		return nil, err
	}

	cache := auth.NewTokenCache(a.cfg.Path.TokenCache)
	client, err := mcmaster.New(mcmaster.Config{
		BaseURL:             a.cfg.API.BaseURL,
		Username:            a.cfg.API.Username,
		Password:            a.cfg.API.Password,
		CertificatePath:     a.cfg.API.CertificatePath,
		CertificatePassword: a.cfg.API.CertificatePassword,
		Timeout:             a.cfg.API.Timeout,
	}, cache, a.logger)
	if err != nil {
		return nil, err
	}

	db, err := persistence.NewDatabase(a.cfg.Path.DatabasePath, a.logger)
	if err != nil {
		return nil, err
	}
	a.db = db

	repo := persistence.NewGormSubscriptionRepository(db.DB)
	a.svc = parts.NewService(client, repo, a.logger)
	return a.svc, nil
}

// close releases resources opened by service().
func (a *app) close() {
	if a.db != nil {
		_ = a.db.Close()
	}
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

// NewRootCmd builds the partkit command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "partkit",
		Short: "Catalog part naming toolkit",
		Long: "partkit fetches fastener data from the McMaster-Carr catalog API,\n" +
			"generates deterministic shop names for parts, and tracks the\n" +
			"account's product subscriptions.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.close()
		},
	}

	root.PersistentFlags().StringVarP(&a.output, "output", "o", "human",
		"output format: human or json")

	root.AddCommand(
		newLoginCmd(a),
		newLogoutCmd(a),
		newInitCredentialsCmd(a),
		newInfoCmd(a),
		newPriceCmd(a),
		newChangesCmd(a),
		newNameCmd(a),
		newAnalyzeCmd(a),
		newAddCmd(a),
		newRemoveCmd(a),
		newListCmd(a),
		newSyncCmd(a),
		newImportCmd(a),
		newImageCmd(a),
		newCADCmd(a),
		newDatasheetCmd(a),
		newServeCmd(a),
	)
	return root
}

// Execute runs the CLI and reports the error for main to exit on.
func Execute() error {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(root.ErrOrStderr(), "Error:", err)
		return err
	}
	return nil
}
