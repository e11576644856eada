package cmd

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/tubevault/tubevault/color"
	"github.com/tubevault/tubevault/history"
	"github.com/tubevault/tubevault/icon"
	"github.com/tubevault/tubevault/style"
)

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringP("state", "s", "", "Set this state instead of toggling")
	lo.Must0(watchCmd.RegisterFlagCompletionFunc("state", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return lo.Map(history.States, func(s history.State, _ int) string {
			return string(s)
		}), cobra.ShellCompDirectiveNoFileComp
	}))
}

var watchCmd = &cobra.Command{
	Use:               "watch <id>",
	Short:             "Mark a video as watched, or back as unwatched",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionVideoIDs,
	Run: func(cmd *cobra.Command, args []string) {
		a := newApp(cmd)
		id := args[0]

		if a.Find(id).IsAbsent() {
			warnErr(fmt.Errorf("video %s is not in the saved catalog", id))
		}

		var state history.State
		if s := lo.Must(cmd.Flags().GetString("state")); s != "" {
			parsed, err := history.ParseState(s)
			handleErr(err)

			state = parsed
			handleErr(a.Watch.Set(id, state))
		} else {
			toggled, err := a.Watch.Toggle(id)
			handleErr(err)
			state = toggled
		}

		fmt.Printf(
			"%s %s is now %s\n",
			style.Fg(color.Green)(icon.Get(stateIcons[state])),
			id,
			style.Fg(color.Yellow)(string(state)),
		)
	},
}
