package main

import (
	"errors"
	"fmt"

	"github.com/Totarae/tinyurl/internal/config"
	"github.com/Totarae/tinyurl/internal/database"
	"github.com/Totarae/tinyurl/internal/storage/sqlite"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var errNoDatabase = errors.New("migrate needs --dsn or --sqlite")

func newMigrateCmd(g *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Миграции схемы базы данных",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Применить все миграции",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := g.config()
			if err != nil {
				return err
			}
			switch cfg.Mode {
			case config.ModePostgres:
				if err := database.MigrateUp(cfg.DatabaseDSN); err != nil {
					return err
				}
			case config.ModeSQLite:
				// схема SQLite создаётся при открытии
				store, err := sqlite.Open(cmd.Context(), cfg.SQLitePath, zap.NewNop())
				if err != nil {
					return err
				}
				if err := store.Close(); err != nil {
					return err
				}
			default:
				return errNoDatabase
			}
			fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Откатить все миграции PostgreSQL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := g.config()
			if err != nil {
				return err
			}
			if cfg.Mode != config.ModePostgres {
				return errors.New("migrate down supports PostgreSQL only")
			}
			if err := database.MigrateDown(cfg.DatabaseDSN); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "migrations rolled back")
			return nil
		},
	})

	return cmd
}
