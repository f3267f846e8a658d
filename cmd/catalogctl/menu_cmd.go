package main

import (
	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/catalog-admin-service/internal/adapters/store/sqlite"
	"github.com/jsamuelsen11/catalog-admin-service/internal/app"
	"github.com/jsamuelsen11/catalog-admin-service/internal/domain/catalog"
	"github.com/jsamuelsen11/catalog-admin-service/internal/domain/tree"
)

func newMenuCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Inspect menus",
	}
	cmd.AddCommand(newMenuTreeCmd(flags))
	return cmd
}

func newMenuTreeCmd(flags *globalFlags) *cobra.Command {
	var enabledOnly bool

	cmd := &cobra.Command{
		Use:   "tree <menu-id>",
		Short: "Print a menu as an indented outline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, logger, err := openDB(cmd.Context(), flags)
			if err != nil {
				return err
			}
			defer db.Close()

			svc := app.NewMenuService(
				sqlite.NewStore[catalog.Menu](db),
				sqlite.NewStore[catalog.MenuItem](db),
				app.Deps{Logger: logger},
			)
			roots, err := svc.Tree(cmd.Context(), args[0], enabledOnly)
			if err != nil {
				return err
			}
			return tree.Render(cmd.OutOrStdout(), roots, func(m catalog.MenuItem) string { return m.Label })
		},
	}
	cmd.Flags().BoolVar(&enabledOnly, "enabled", false, "Hide disabled items and their descendants")
	return cmd
}
