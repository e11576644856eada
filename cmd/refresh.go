package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/tubevault/tubevault/color"
	"github.com/tubevault/tubevault/icon"
	"github.com/tubevault/tubevault/quota"
	"github.com/tubevault/tubevault/style"
	"github.com/tubevault/tubevault/util"
	"github.com/tubevault/tubevault/video"
)

func init() {
	rootCmd.AddCommand(refreshCmd)
}

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Fetch the catalog from YouTube, ignoring the saved one",
	Run: func(cmd *cobra.Command, args []string) {
		a := newApp(cmd)

		erase := util.PrintErasable(os.Stderr, fmt.Sprintf("%s Refreshing catalog...", icon.Get(icon.Progress)))
		records, err := a.Fetcher.Refresh(cmd.Context())
		erase()

		byOrigin := lo.CountValuesBy(records, func(r *video.Record) video.Origin {
			return r.Origin
		})

		usage := a.Quota.Usage()
		fmt.Printf(
			"%s %s: %d public, %d unlisted, %d private\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			util.Quantify(len(records), "video", "videos"),
			byOrigin[video.OriginPublic],
			byOrigin[video.OriginUnlisted],
			byOrigin[video.OriginPrivate],
		)
		fmt.Printf(
			"%s quota %d/%d used, %d remaining\n",
			icon.Get(icon.Quota),
			usage.Used,
			usage.Limit,
			usage.Remaining,
		)

		if errors.Is(err, quota.ErrExceeded) {
			handleErr(fmt.Errorf("refresh stopped early: %w", err))
		}
		handleErr(err)
	},
}
