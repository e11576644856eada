package cmd

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/tubevault/tubevault/color"
	"github.com/tubevault/tubevault/description"
	"github.com/tubevault/tubevault/history"
	"github.com/tubevault/tubevault/icon"
	"github.com/tubevault/tubevault/style"
	"github.com/tubevault/tubevault/util"
	"github.com/tubevault/tubevault/video"
)

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolP("no-artwork", "n", false, "Skip the artwork lookup")
}

var showCmd = &cobra.Command{
	Use:               "show <id>",
	Short:             "Show everything known about a video",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionVideoIDs,
	Run: func(cmd *cobra.Command, args []string) {
		a := newApp(cmd)

		record, ok := a.Find(args[0]).Get()
		if !ok {
			handleErr(fmt.Errorf("video %s is not in the saved catalog", args[0]))
		}

		var (
			out    = cmd.OutOrStdout()
			label  = style.Fg(color.Purple)
			states = a.Watch.All()
			field  = func(name, value string) {
				if value != "" {
					_, _ = fmt.Fprintf(out, "%s %s\n", label(fmt.Sprintf("%-10s", name)), value)
				}
			}
		)

		_, _ = fmt.Fprintf(out, "%s %s\n\n", icon.Get(icon.ForType(record.Type)), style.Title(record.DisplayTitle()))

		field("Title", record.Title)
		field("Type", record.Type)
		field("Director", record.Author)
		field("Actors", strings.Join(record.Actors, ", "))
		field("Platform", record.Platform)
		if record.Episodic() {
			field("Section", video.SectionName(record))
		}
		if record.Episode != nil {
			field("Episode", strings.TrimSpace(fmt.Sprintf("%d %s", *record.Episode, record.EpisodeTitle)))
		}
		field("State", string(a.Watch.Get(record.ID).OrElse(history.Unwatched)))
		field("Private", lo.Ternary(record.IsPrivate, "yes", ""))
		field("Watch", video.WatchURL(record.ID))
		field("Embed", video.EmbedURL(record.ID))

		if artworkClient, ok := a.Artwork.Get(); ok && !lo.Must(cmd.Flags().GetBool("no-artwork")) {
			artwork, err := artworkClient.ArtworkFor(cmd.Context(), record)
			warnErr(err)
			if found, ok := artwork.Get(); ok {
				field("Poster", found.Poster)
				field("Backdrop", found.Backdrop)
			}
		}

		if synopsis := description.Synopsis(record); synopsis != "" {
			_, _ = fmt.Fprintf(out, "\n%s\n", style.Italic(util.Wrap(synopsis, 80)))
		}

		if !record.Episodic() {
			return
		}

		episodes := video.Episodes(a.Saved(), record)
		_, _ = fmt.Fprintf(out, "\n%s\n", style.Bold(util.Quantify(len(episodes), "episode", "episodes")))

		var section string
		for _, episode := range episodes {
			if name := video.SectionName(episode); name != section {
				section = name
				_, _ = fmt.Fprintf(out, "%s\n", style.Faint(section))
			}

			number := "?"
			if episode.Episode != nil {
				number = fmt.Sprint(*episode.Episode)
			}

			title := lo.Ternary(episode.EpisodeTitle != "", episode.EpisodeTitle, episode.Title)
			_, _ = fmt.Fprintf(out, "  %s %3s %s %s\n", stateIcon(states, episode.ID), number, title, style.Faint(episode.ID))
		}
	},
}
