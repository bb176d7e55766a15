package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/ionut-t/sift/pkg/api"
	"github.com/ionut-t/sift/pkg/chart"
	"github.com/ionut-t/sift/pkg/result"
	"github.com/ionut-t/sift/pkg/workspace"
	"github.com/ionut-t/sift/ui/styles"
	"github.com/spf13/cobra"
)

const allTabs = "all"

type askOptions struct {
	tab         string
	noChart     bool
	json        bool
	chartWidth  int
	chartHeight int
}

func askCmd() *cobra.Command {
	opts := askOptions{}

	cmd := &cobra.Command{
		Use:   "ask <question>",
		Short: "Ask a question about the uploaded files",
		Long: "Ask a question in plain English. The generated code, the result table and a chart " +
			"chosen from the shape of the result are printed to stdout.",
		Example: "  sift ask total sales by region\n  sift ask --tab python 'monthly revenue in 2024'\n  sift ask --json top customers",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.tab != allTabs {
				opts.tab = string(workspace.ParseTab(opts.tab))
			}

			s, err := newSession(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			question := strings.Join(args, " ")

			res, err := s.client.Generate(cmd.Context(), question)
			if err != nil {
				s.logger.Error().Err(err).Str("question", question).Msg("question failed")
				return errors.New(api.Message(err))
			}

			opts.chartHeight = s.config.ChartHeight()

			if opts.json {
				return printJSON(cmd.OutOrStdout(), res)
			}

			printAnswer(cmd.OutOrStdout(), res, opts)

			return nil
		},
	}

	cmd.Flags().StringVar(&opts.tab, "tab", string(workspace.TabSQL), "code to print: sql, python, pyspark or all")
	cmd.Flags().BoolVar(&opts.noChart, "no-chart", false, "do not draw the chart")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print the whole response as JSON")
	cmd.Flags().IntVar(&opts.chartWidth, "width", 80, "chart width in columns")

	return cmd
}

type answerJSON struct {
	Question    string      `json:"question"`
	SQL         string      `json:"sql"`
	Python      string      `json:"python"`
	PySpark     string      `json:"pyspark"`
	Explanation string      `json:"explanation,omitempty"`
	Warning     string      `json:"warning,omitempty"`
	Chart       string      `json:"chart"`
	Result      result.Rows `json:"result"`
}

func printJSON(w io.Writer, res *api.QueryResponse) error {
	rows := res.Result
	if rows == nil {
		rows = result.Rows{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(answerJSON{
		Question:    res.Question,
		SQL:         res.SQL,
		Python:      res.Python,
		PySpark:     res.PySpark,
		Explanation: res.Explanation,
		Warning:     res.Warning,
		Chart:       result.Infer(res.Result).Chart.String(),
		Result:      rows,
	})
}

func printAnswer(w io.Writer, res *api.QueryResponse, opts askOptions) {
	tabs := workspace.Tabs
	if opts.tab != allTabs {
		tabs = []workspace.Tab{workspace.ParseTab(opts.tab)}
	}

	for _, tab := range tabs {
		code := strings.TrimSpace(res.Code(string(tab)))
		if code == "" {
			code = styles.Subtext0.Render("(not generated)")
		}

		fmt.Fprintf(w, "%s\n%s\n\n", styles.PanelTitle.Render(strings.ToUpper(string(tab))), code)
	}

	if res.Explanation != "" {
		fmt.Fprintf(w, "%s\n%s\n\n", styles.PanelTitle.Render("EXPLANATION"), styles.Wrap(opts.chartWidth, res.Explanation))
	}

	if res.Warning != "" {
		fmt.Fprintf(w, "%s\n\n", styles.Warning.Render("⚠ "+res.Warning))
	}

	shape := result.Infer(res.Result)
	if shape.Empty {
		fmt.Fprintln(w, styles.Subtext0.Render("No data"))
		return
	}

	fmt.Fprintln(w, resultTable(res.Result, shape))

	if opts.noChart || !shape.HasChart() {
		return
	}

	chartOpts := chart.DefaultOptions(opts.chartWidth, opts.chartHeight)
	chartOpts.BarStyle = styles.Accent
	chartOpts.LineStyle = styles.Primary
	chartOpts.LabelStyle = styles.Subtext0

	fmt.Fprintf(w, "\n%s\n", chart.Render(shape, res.Result, chartOpts))
}

func resultTable(rows result.Rows, shape result.Shape) string {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styles.Overlay0).
		StyleFunc(styles.CLITableStyle).
		Headers(shape.Columns...).
		Rows(rows.Table(shape.Columns)...).
		String()
}
