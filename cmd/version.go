package cmd

import (
	"encoding/json"
	"fmt"
	"runtime"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/tubevault/tubevault/color"
	"github.com/tubevault/tubevault/constant"
	"github.com/tubevault/tubevault/style"
)

type buildInfo struct {
	Version  string `json:"version"`
	Revision string `json:"revision"`
	BuiltAt  string `json:"builtAt"`
	BuiltBy  string `json:"builtBy"`
	Go       string `json:"go"`
	Platform string `json:"platform"`
}

func currentBuild() buildInfo {
	return buildInfo{
		Version:  constant.Version,
		Revision: constant.Revision,
		BuiltAt:  constant.BuiltAt,
		BuiltBy:  constant.BuiltBy,
		Go:       runtime.Version(),
		Platform: runtime.GOOS + "/" + runtime.GOARCH,
	}
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolP("short", "s", false, "Print the version number only")
	versionCmd.Flags().BoolP("json", "j", false, "Output as json")
	versionCmd.MarkFlagsMutuallyExclusive("short", "json")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version and build information",
	Run: func(cmd *cobra.Command, args []string) {
		info := currentBuild()

		switch {
		case lo.Must(cmd.Flags().GetBool("short")):
			cmd.Println(info.Version)
		case lo.Must(cmd.Flags().GetBool("json")):
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(info))
		default:
			label := style.Faint
			cmd.Println(style.Fg(color.Purple)(constant.Tubevault) + " " + style.Bold(info.Version))
			for _, row := range [][2]string{
				{"revision", info.Revision},
				{"built at", info.BuiltAt},
				{"built by", info.BuiltBy},
				{"go", info.Go},
				{"platform", info.Platform},
			} {
				cmd.Println(" ", label(fmt.Sprintf("%-10s", row[0])), row[1])
			}
		}
	},
}
