package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func downloadDir(a *app, override string) string {
	if override != "" {
		return override
	}
	return a.cfg.Path.DownloadDir
}

func reportDownloads(cmd *cobra.Command, kind string, written []string) {
	out := cmd.OutOrStdout()
	if len(written) == 0 {
		fmt.Fprintf(out, "No %s available\n", kind)
		return
	}
	for _, path := range written {
		fmt.Fprintln(out, "Downloaded", path)
	}
}

func newImageCmd(a *app) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "image <part-number>",
		Short: "Download product images",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service()
			if err != nil {
				return err
			}
			written, err := svc.DownloadImages(cmd.Context(), args[0], downloadDir(a, dir))
			if err != nil {
				return err
			}
			reportDownloads(cmd, "images", written)
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "", "output directory (default: configured download dir)")
	return cmd
}

func newCADCmd(a *app) *cobra.Command {
	var dir string
	var formats []string

	cmd := &cobra.Command{
		Use:   "cad <part-number>",
		Short: "Download CAD files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service()
			if err != nil {
				return err
			}
			written, err := svc.DownloadCAD(cmd.Context(), args[0], downloadDir(a, dir), formats)
			if err != nil {
				return err
			}
			reportDownloads(cmd, "CAD files", written)
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "", "output directory (default: configured download dir)")
	cmd.Flags().StringSliceVarP(&formats, "format", "f", nil,
		"formats to download (dwg, step, dxf, iges, solidworks, sat, edrw, pdf); default all")
	return cmd
}

func newDatasheetCmd(a *app) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "datasheet <part-number>",
		Short: "Download product datasheets",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service()
			if err != nil {
				return err
			}
			written, err := svc.DownloadDatasheets(cmd.Context(), args[0], downloadDir(a, dir))
			if err != nil {
				return err
			}
			reportDownloads(cmd, "datasheets", written)
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "", "output directory (default: configured download dir)")
	return cmd
}
