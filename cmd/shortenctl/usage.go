package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/Totarae/tinyurl/internal/app"
	"github.com/spf13/cobra"
)

func newUsageCmd(g *globalFlags) *cobra.Command {
	var (
		offset, limit int
		full          bool
	)
	cmd := &cobra.Command{
		Use:   "usage ID",
		Short: "Статистика переходов по ссылке",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseLinkID(args[0])
			if err != nil {
				return err
			}
			return g.withApp(cmd, func(a *app.App) error {
				st, err := a.Services.Usage.Status(cmd.Context(), id, offset, limit, full)
				if err != nil {
					return err
				}
				if !st.Full {
					fmt.Fprintln(cmd.OutOrStdout(), st.Count)
					return nil
				}
				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "ID\tUSED_AT\tCLIENT")
				for _, e := range st.Events {
					fmt.Fprintf(tw, "%d\t%s\t%s:%d\n", e.ID, e.UsedAt.Format(time.RFC3339), e.ClientHost, e.ClientPort)
				}
				return tw.Flush()
			})
		},
	}
	cmd.Flags().BoolVar(&full, "full", false, "print events instead of the count")
	cmd.Flags().IntVar(&offset, "offset", 0, "skip first N events")
	cmd.Flags().IntVar(&limit, "max-size", 10, "window size")
	return cmd
}

func newPingCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Проверить доступность хранилища",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return g.withApp(cmd, func(a *app.App) error {
				h := a.Services.Health.Check(cmd.Context())
				fmt.Fprintln(cmd.OutOrStdout(), h.DBStatus)
				if !h.Healthy() {
					return fmt.Errorf("storage is unhealthy")
				}
				return nil
			})
		},
	}
}
