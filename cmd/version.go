package cmd

import (
	"fmt"
	"runtime"

	"randarray/pkg/utils"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			utils.PrintBanner(version)

			tableData := pterm.TableData{
				{"Property", "Value"},
				{"Version", version},
				{"Go Version", runtime.Version()},
				{"OS/Arch", fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)},
				{"Compiler", runtime.Compiler},
			}

			pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
		},
	}
}
