package cmd

import (
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/tubevault/tubevault/color"
	"github.com/tubevault/tubevault/style"
	"github.com/tubevault/tubevault/where"
)

type location struct {
	title string
	flag  string
	short string
	path  func() string
	// listed locations are printed when no flag is given
	listed bool
}

var locations = []location{
	{"Config", "config", "c", where.Config, true},
	{"Storage", "storage", "s", where.Storage, true},
	{"Logs", "logs", "l", where.Logs, true},
	{"Cache", "cache", "", where.Cache, false},
	{"Catalog", "catalog", "", where.Catalog, false},
	{"Watch states", "watch-states", "", where.WatchStates, false},
	{"Quota", "quota", "", where.Quota, false},
}

func init() {
	rootCmd.AddCommand(whereCmd)

	for _, l := range locations {
		whereCmd.Flags().BoolP(l.flag, l.short, false, l.title+" path")
		if !l.listed {
			lo.Must0(whereCmd.Flags().MarkHidden(l.flag))
		}
	}

	whereCmd.MarkFlagsMutuallyExclusive(lo.Map(locations, func(l location, _ int) string {
		return l.flag
	})...)
}

var whereCmd = &cobra.Command{
	Use:   "where",
	Short: "Show where tubevault keeps its files",
	Run: func(cmd *cobra.Command, args []string) {
		if l, ok := lo.Find(locations, func(l location) bool {
			return lo.Must(cmd.Flags().GetBool(l.flag))
		}); ok {
			cmd.Println(l.path())
			return
		}

		header := style.New().Bold(true).Foreground(color.HiPurple).Render
		listed := lo.Filter(locations, func(l location, _ int) bool { return l.listed })

		for i, l := range listed {
			if i > 0 {
				cmd.Println()
			}
			cmd.Println(header(l.title+"?"), style.Fg(color.Yellow)("--"+l.flag))
			cmd.Println(l.path())
		}
	},
}
