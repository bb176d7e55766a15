package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ionut-t/sift/pkg/api"
	"github.com/ionut-t/sift/pkg/utils"
	"github.com/ionut-t/sift/ui/styles"
	"github.com/spf13/cobra"
)

func uploadCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "upload <file>...",
		Short:   "Upload CSV or Excel files and print the extracted table schemas",
		Example: "  sift upload sales.csv regions.xlsx\n  sift upload 'data/*.csv'",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			paths := utils.ParsePaths(strings.Join(args, "\n"))

			res, err := s.client.Upload(cmd.Context(), paths)
			if err != nil {
				s.logger.Error().Err(err).Strs("paths", paths).Msg("upload failed")
				return errors.New(api.Message(err))
			}

			printUpload(cmd.OutOrStdout(), res)

			return nil
		},
	}
}

func printUpload(w io.Writer, res *api.UploadResult) {
	if res.Message != "" {
		fmt.Fprintln(w, styles.Success.Render(res.Message))
	}

	if len(res.Schemas) == 0 {
		fmt.Fprintln(w, styles.Subtext0.Render("No tables were extracted."))
		return
	}

	for _, schema := range res.Schemas {
		fmt.Fprintf(w, "• %s\n", styles.Text.Render(schema))
	}
}
