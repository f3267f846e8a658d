package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/catalog-admin-service/internal/adapters/store/sqlite"
	"github.com/jsamuelsen11/catalog-admin-service/internal/app"
)

func newReconciliationCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "reconciliation",
		Aliases: []string{"recon"},
		Short:   "Review operations whose rollback was partial",
	}
	cmd.AddCommand(newReconciliationListCmd(flags), newReconciliationResolveCmd(flags))
	return cmd
}

func newReconciliationListCmd(flags *globalFlags) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List pending reconciliation entries, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, logger, err := openDB(cmd.Context(), flags)
			if err != nil {
				return err
			}
			defer db.Close()

			svc := app.NewReconciliationService(sqlite.NewReconciliationLog(db), logger)
			entries, err := svc.List(cmd.Context(), all)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), entries)
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "Include resolved entries")
	return cmd
}

func newReconciliationResolveCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <entry-id>",
		Short: "Mark an entry as handled",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, logger, err := openDB(cmd.Context(), flags)
			if err != nil {
				return err
			}
			defer db.Close()

			svc := app.NewReconciliationService(sqlite.NewReconciliationLog(db), logger)
			if err := svc.Resolve(cmd.Context(), args[0]); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "resolved %s\n", args[0])
			return err
		},
	}
}
