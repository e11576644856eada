// Package cmd implements the command-line interface for tubevault.
package cmd

import (
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/tubevault/tubevault/icon"
	"github.com/tubevault/tubevault/internal/cache"
	"github.com/tubevault/tubevault/query"
	"github.com/tubevault/tubevault/util"
	"github.com/tubevault/tubevault/where"
)

// clearTarget is a document or directory owned by tubevault that can be removed.
type clearTarget struct {
	name     string
	argLong  string
	argShort mo.Option[string]
	clear    func() error
}

func removeFile(location func() string) func() error {
	return func() error {
		return util.RemoveIfExists(location())
	}
}

// clearTargets lists everything clear can remove. Credentials and the config file are never touched.
var clearTargets = []clearTarget{
	{"catalog snapshot", "catalog", mo.Some("c"), removeFile(where.Catalog)},
	{"quota usage", "quota", mo.None[string](), removeFile(where.Quota)},
	{"watch states", "watch-states", mo.Some("w"), removeFile(where.WatchStates)},
	{"artwork cache", "artwork", mo.Some("a"), cache.Clear},
	{"queries history", "queries", mo.Some("q"), query.Clear},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, target := range clearTargets {
		help := fmt.Sprintf("clear %s", target.name)
		if target.argShort.IsPresent() {
			clearCmd.Flags().BoolP(target.argLong, target.argShort.MustGet(), false, help)
		} else {
			clearCmd.Flags().Bool(target.argLong, false, help)
		}
	}

	clearCmd.Flags().Bool("all", false, "clear everything above")
	clearCmd.Flags().BoolP("yes", "y", false, "do not ask for confirmation with --all")
}

// clearCmd removes tubevault's own saved data.
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear saved catalog data, selectively",
	Run: func(cmd *cobra.Command, args []string) {
		all := lo.Must(cmd.Flags().GetBool("all"))

		if all && !lo.Must(cmd.Flags().GetBool("yes")) {
			var confirmed bool
			handleErr(survey.AskOne(&survey.Confirm{
				Message: "Clear the catalog, quota usage, watch states, artwork and queries?",
				Default: false,
			}, &confirmed))

			if !confirmed {
				return
			}
		}

		var anyCleared bool
		for _, target := range clearTargets {
			if !all && !lo.Must(cmd.Flags().GetBool(target.argLong)) {
				continue
			}

			anyCleared = true
			e := util.PrintErasable(os.Stdout, fmt.Sprintf("%s Clearing %s...", icon.Get(icon.Progress), target.name))
			err := target.clear()
			e()
			handleErr(err)
			fmt.Printf("%s %s cleared\n", icon.Get(icon.Success), util.Capitalize(target.name))
		}

		if !anyCleared {
			handleErr(cmd.Help())
		}
	},
}
