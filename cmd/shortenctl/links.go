package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/Totarae/tinyurl/internal/app"
	"github.com/Totarae/tinyurl/internal/model"
	"github.com/spf13/cobra"
)

func printLink(cmd *cobra.Command, a *app.App, link *model.ShortLink) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "id: %d\n", link.ID)
	fmt.Fprintf(out, "code: %s\n", link.ShortCode)
	fmt.Fprintf(out, "short_url: %s/%s\n", a.Config.BaseURL, link.ShortCode)
	fmt.Fprintf(out, "original_url: %s\n", link.OriginalURL)
	fmt.Fprintf(out, "deleted: %t\n", link.Deleted)
}

func parseLinkID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid url_id %q", raw)
	}
	return id, nil
}

func newCreateCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "create URL...",
		Short: "Создать короткие ссылки",
		Long: `Сокращает один или несколько URL. Несколько адресов сохраняются атомарно.

Пример:
  shortenctl create --sqlite=tinyurl.db https://go.dev`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return g.withApp(cmd, func(a *app.App) error {
				links, err := a.Services.Links.CreateBatch(cmd.Context(), args)
				if err != nil {
					return err
				}
				for _, link := range links {
					printLink(cmd, a, link)
				}
				return nil
			})
		},
	}
}

func newListCmd(g *globalFlags) *cobra.Command {
	var offset, limit int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Показать ссылки в порядке создания",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return g.withApp(cmd, func(a *app.App) error {
				links, err := a.Services.Links.List(cmd.Context(), offset, limit)
				if err != nil {
					return err
				}
				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "ID\tCODE\tDELETED\tURL")
				for _, l := range links {
					fmt.Fprintf(tw, "%d\t%s\t%t\t%s\n", l.ID, l.ShortCode, l.Deleted, l.OriginalURL)
				}
				return tw.Flush()
			})
		},
	}
	cmd.Flags().IntVar(&offset, "offset", 0, "skip first N links")
	cmd.Flags().IntVar(&limit, "max-size", 100, "page size")
	return cmd
}

func newDeleteCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Пометить ссылку удалённой",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseLinkID(args[0])
			if err != nil {
				return err
			}
			return g.withApp(cmd, func(a *app.App) error {
				link, err := a.Services.Links.Delete(cmd.Context(), id)
				if err != nil {
					return err
				}
				printLink(cmd, a, link)
				return nil
			})
		},
	}
}
