package cmd

import (
	"fmt"

	"github.com/ionut-t/sift/internal/version"
	"github.com/ionut-t/sift/ui/styles"
	"github.com/spf13/cobra"
)

const logo = `
     _  __ _
 ___(_)/ _| |_
/ __| | |_| __|
\__ \ |  _| |_
|___/_|_|  \__|
`

func versionTemplate() string {
	versionTpl := styles.Primary.Margin(0, 2).Render(logo) + `
  Version        %s
  Commit         %s
  Release date   %s
`
	return fmt.Sprintf(versionTpl, version.Version(), version.Commit(), version.Date())
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), versionTemplate())
		},
	}
}
