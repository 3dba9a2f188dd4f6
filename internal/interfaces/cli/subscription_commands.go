package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAddCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add <part-number>",
		Short: "Subscribe to a part",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service()
			if err != nil {
				return err
			}
			if err := svc.Subscribe(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Subscribed to %s\n", args[0])
			return nil
		},
	}
}

func newRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <part-number>",
		Short: "Unsubscribe from a part",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service()
			if err != nil {
				return err
			}
			if err := svc.Unsubscribe(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Unsubscribed from %s\n", args[0])
			return nil
		},
	}
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List locally tracked subscriptions",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service()
			if err != nil {
				return err
			}
			subs, err := svc.List(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if a.output == "json" {
				return printJSON(out, subs)
			}
			if len(subs) == 0 {
				fmt.Fprintln(out, "No tracked parts")
				return nil
			}
			for _, sub := range subs {
				line := sub.PartNumber
				if sub.GeneratedName != "" {
					line += "  " + sub.GeneratedName
				}
				if sub.Description != "" {
					line += "  (" + sub.Description + ")"
				}
				fmt.Fprintln(out, line)
			}
			fmt.Fprintf(out, "\n%d tracked part(s)\n", len(subs))
			return nil
		},
	}
}

func newSyncCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Re-fetch every tracked part and refresh its generated name",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service()
			if err != nil {
				return err
			}
			results, err := svc.Sync(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			failed := 0
			for _, r := range results {
				if r.Err != nil {
					failed++
					fmt.Fprintf(out, "%-15s FAILED: %v\n", r.PartNumber, r.Err)
					continue
				}
				fmt.Fprintf(out, "%-15s %s\n", r.PartNumber, r.Name)
			}
			fmt.Fprintf(out, "\nSynced %d part(s), %d failed\n", len(results)-failed, failed)
			return nil
		},
	}
}

func newImportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Subscribe to every part number listed in a file",
		Long: "Reads part numbers one per line. Blank lines and lines starting\n" +
			"with # are skipped.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service()
			if err != nil {
				return err
			}
			stats, err := svc.Import(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(),
				"Imported: %d subscribed, %d already tracked, %d failed\n",
				stats.Subscribed, stats.Skipped, stats.Failed)
			return nil
		},
	}
}
