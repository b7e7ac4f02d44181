// Package cli implements the lostfound command tree. It is a thin
// presentation collaborator: it renders engine views and forwards actions,
// and never touches the mirror's internals.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/lostfound/internal/config"
	"github.com/dmitrijs2005/lostfound/internal/logging"
	"github.com/dmitrijs2005/lostfound/internal/service"
	"github.com/dmitrijs2005/lostfound/internal/store"
)

// Global flag values.
var (
	flagConfig    string
	flagBackend   string
	flagSQLite    string
	flagDSN       string
	flagAdmins    []string
	flagUserID    string
	flagUserName  string
	flagUserEmail string
)

// Set up by PersistentPreRunE so all subcommands can use them.
var (
	cfg     *config.Config
	backend store.Store
	eng     *service.Engine
	log     logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "lostfound",
	Short: "lostfound tracks a community's lost and found items",
	Long: `Lostfound keeps a local mirror of a community lost & found collection,
synchronized with either a local database or a shared remote store. Members
post items, mark them claimed, report problematic entries, search and filter,
and export or import backups; an administrator can erase everything.`,
	PersistentPreRunE: initEngine,
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeBackend()
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "path to JSON config file")
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "store backend: sqlite or postgres")
	rootCmd.PersistentFlags().StringVar(&flagSQLite, "db", "", "sqlite database file")
	rootCmd.PersistentFlags().StringVar(&flagDSN, "dsn", "", "postgres connection string")
	rootCmd.PersistentFlags().StringSliceVar(&flagAdmins, "admin", nil, "administrator email (repeatable)")
	rootCmd.PersistentFlags().StringVar(&flagUserID, "user-id", "", "current principal id (empty = anonymous)")
	rootCmd.PersistentFlags().StringVar(&flagUserName, "user-name", "", "current principal display name")
	rootCmd.PersistentFlags().StringVar(&flagUserEmail, "user-email", "", "current principal email")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(claimCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(reportsCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(watchCmd)
}

// Execute runs the command tree.
func Execute() error {
	return rootCmd.Execute()
}

// initEngine loads configuration, applies flag overrides and wires the engine
// against the selected backend.
func initEngine(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	loaded, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	cfg = loaded
	applyFlagOverrides(cmd)

	log = logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	backend, err = openStore(cmd.Context(), cfg, log)
	if err != nil {
		return err
	}

	eng = service.New(backend, newGate(cfg), log)
	return nil
}

func applyFlagOverrides(cmd *cobra.Command) {
	if cmd.Flags().Changed("backend") {
		cfg.Backend = flagBackend
	}
	if cmd.Flags().Changed("db") {
		cfg.SQLitePath = flagSQLite
	}
	if cmd.Flags().Changed("dsn") {
		cfg.PostgresDSN = flagDSN
	}
	if cmd.Flags().Changed("admin") {
		cfg.AdminEmails = flagAdmins
	}
	if cmd.Flags().Changed("user-id") {
		cfg.Principal.ID = flagUserID
	}
	if cmd.Flags().Changed("user-name") {
		cfg.Principal.DisplayName = flagUserName
	}
	if cmd.Flags().Changed("user-email") {
		cfg.Principal.Email = flagUserEmail
	}
}

func closeBackend() error {
	if backend != nil {
		return backend.Close()
	}
	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("lostfound v0.1.0")
	},
}
