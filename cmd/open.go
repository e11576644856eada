package cmd

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tubevault/tubevault/history"
	"github.com/tubevault/tubevault/icon"
	"github.com/tubevault/tubevault/key"
	"github.com/tubevault/tubevault/open"
	"github.com/tubevault/tubevault/video"
)

func init() {
	rootCmd.AddCommand(openCmd)
	openCmd.Flags().BoolP("embed", "e", false, "Open the autoplaying embedded player instead of the watch page")
}

var openCmd = &cobra.Command{
	Use:               "open <id>",
	Short:             "Open a video in the browser and mark it as started",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionVideoIDs,
	Run: func(cmd *cobra.Command, args []string) {
		a := newApp(cmd)
		id := args[0]

		url := video.WatchURL(id)
		if lo.Must(cmd.Flags().GetBool("embed")) {
			url = video.EmbedURL(id)
		}

		handleErr(open.StartWith(url, viper.GetString(key.OpenBrowser)))

		// a completed video stays completed when rewatched
		if a.Watch.Get(id).OrElse(history.Unwatched) != history.Completed {
			handleErr(a.Watch.Set(id, history.Started))
		}

		fmt.Printf("%s opened %s\n", icon.Get(icon.Success), url)
	},
}
