package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/tubevault/tubevault/app"
	"github.com/tubevault/tubevault/color"
	"github.com/tubevault/tubevault/icon"
	"github.com/tubevault/tubevault/quota"
	"github.com/tubevault/tubevault/style"
)

func init() {
	rootCmd.AddCommand(quotaCmd)
	quotaCmd.Flags().BoolP("json", "j", false, "Print the usage as JSON")
}

var quotaCmd = &cobra.Command{
	Use:   "quota",
	Short: "Show today's YouTube API quota usage",
	Run: func(cmd *cobra.Command, args []string) {
		tracker := quota.New(app.DefaultStores().Quota)
		handleErr(tracker.Load())
		usage := tracker.Usage()

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(usage))
			return
		}

		paint := style.Fg(color.Green)
		switch {
		case usage.Remaining <= 0:
			paint = style.Fg(color.Red)
		case usage.Remaining < usage.Limit/10:
			paint = style.Fg(color.Yellow)
		}

		_, _ = fmt.Fprintf(
			cmd.OutOrStdout(),
			"%s %s of %d used, %s remaining\n%s\n",
			icon.Get(icon.Quota),
			paint(fmt.Sprint(usage.Used)),
			usage.Limit,
			paint(fmt.Sprint(usage.Remaining)),
			style.Faint("since "+usage.LastReset.Format(time.DateTime)),
		)
	},
}
