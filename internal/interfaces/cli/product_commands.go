package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/partkit/partkit/internal/domain/catalog"
	"github.com/partkit/partkit/internal/domain/naming"
)

func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(w, string(data))
	return nil
}

func printRecordHuman(w io.Writer, record *catalog.ProductRecord) {
	fmt.Fprintf(w, "Part Number:  %s\n", record.PartNumber)
	if record.DetailDescription != "" {
		fmt.Fprintf(w, "Description:  %s\n", record.DetailDescription)
	}
	if record.FamilyDescription != "" {
		fmt.Fprintf(w, "Family:       %s\n", record.FamilyDescription)
	}
	if record.ProductCategory != "" {
		fmt.Fprintf(w, "Category:     %s\n", record.ProductCategory)
	}
	if record.ProductStatus != "" {
		fmt.Fprintf(w, "Status:       %s\n", record.ProductStatus)
	}
	if len(record.Specifications) > 0 {
		fmt.Fprintln(w, "Specifications:")
		for _, spec := range record.Specifications {
			fmt.Fprintf(w, "  %-40s %s\n", spec.Attribute+":", spec.FirstValue())
		}
	}
}

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info <part-number>",
		Short: "Show the catalog record for a part",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service()
			if err != nil {
				return err
			}
			record, err := svc.GetInfo(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if a.output == "json" {
				return printJSON(cmd.OutOrStdout(), record)
			}
			printRecordHuman(cmd.OutOrStdout(), record)
			return nil
		},
	}
}

func newPriceCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "price <part-number>",
		Short: "Show price tiers for a part",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service()
			if err != nil {
				return err
			}
			breaks, err := svc.GetPrice(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if a.output == "json" {
				return printJSON(out, breaks)
			}
			if len(breaks) == 0 {
				fmt.Fprintln(out, "No price information available")
				return nil
			}
			for _, b := range breaks {
				fmt.Fprintf(out, "$%s per %s (minimum %g)\n",
					b.Amount.StringFixed(2), b.UnitOfMeasure, b.MinimumQuantity)
			}
			return nil
		},
	}
}

func newChangesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "changes <start-date>",
		Short: "List subscribed parts changed since a date (MM/DD/YYYY)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service()
			if err != nil {
				return err
			}
			changes, err := svc.GetChanges(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if a.output == "json" {
				return printJSON(out, changes)
			}
			if len(changes) == 0 {
				fmt.Fprintln(out, "No changes since", args[0])
				return nil
			}
			for _, ch := range changes {
				fmt.Fprintf(out, "%-15s %-12s %s\n", ch.PartNumber, ch.ChangeType, ch.DateOfChange)
			}
			return nil
		},
	}
}

func newNameCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "name <part-number>",
		Short: "Generate the shop name for a part",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service()
			if err != nil {
				return err
			}
			result, err := svc.NameProduct(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if a.output == "json" {
				return printJSON(cmd.OutOrStdout(), map[string]string{
					"part_number":    result.PartNumber,
					"generated_name": result.Name,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), result.Name)
			return nil
		},
	}
}

func newAnalyzeCmd(a *app) *cobra.Command {
	var showTemplate, showAliases, showAll bool

	cmd := &cobra.Command{
		Use:   "analyze <part-number>",
		Short: "Explain how a part's name is built from its specs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service()
			if err != nil {
				return err
			}
			analysis, err := svc.AnalyzeProduct(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if a.output == "json" {
				out, err := naming.FormatJSON(analysis)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), out)
				return nil
			}

			if showAll {
				showTemplate = true
				showAliases = true
			}
			fmt.Fprint(cmd.OutOrStdout(), naming.FormatHuman(analysis, showTemplate, showAliases))
			return nil
		},
	}

	cmd.Flags().BoolVar(&showTemplate, "show-template", false, "include the template's field list")
	cmd.Flags().BoolVar(&showAliases, "show-aliases", false, "include the template's spec aliases")
	cmd.Flags().BoolVar(&showAll, "all", false, "include all analysis details")
	return cmd
}
