package main

import (
	"github.com/Totarae/tinyurl/internal/app"
	"github.com/Totarae/tinyurl/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// globalFlags флаги, общие для всех команд.
type globalFlags struct {
	dsn       string
	sqlite    string
	generator string
	redis     string
	logLevel  string
}

// configArgs переводит флаги cobra в аргументы config.NewConfig.
func (g *globalFlags) configArgs() []string {
	var args []string
	add := func(name, value string) {
		if value != "" {
			args = append(args, "-"+name, value)
		}
	}
	add("d", g.dsn)
	add("f", g.sqlite)
	add("generator", g.generator)
	add("redis", g.redis)
	add("log-level", g.logLevel)
	return args
}

func (g *globalFlags) config() (*config.Config, error) {
	return config.NewConfig(g.configArgs())
}

// withApp открывает сервис на время выполнения fn.
func (g *globalFlags) withApp(cmd *cobra.Command, fn func(*app.App) error) error {
	cfg, err := g.config()
	if err != nil {
		return err
	}
	logger, err := app.NewLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	a, err := app.New(cmd.Context(), cfg, logger.With(zap.String("component", "shortenctl")))
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(a)
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}
	root := &cobra.Command{
		Use:           "shortenctl",
		Short:         "Управление короткими ссылками",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&g.dsn, "dsn", "", "PostgreSQL DSN (DATABASE_DSN)")
	pf.StringVar(&g.sqlite, "sqlite", "", "SQLite file or libsql:// URL (SQLITE_PATH)")
	pf.StringVar(&g.generator, "generator", "", "short code generator: hash, counter or tinyurl")
	pf.StringVar(&g.redis, "redis", "", "redis address for the counter generator")
	pf.StringVar(&g.logLevel, "log-level", "warn", "log level")

	root.AddCommand(
		newMigrateCmd(g),
		newCreateCmd(g),
		newListCmd(g),
		newDeleteCmd(g),
		newUsageCmd(g),
		newPingCmd(g),
	)
	return root
}
