package cmd

import (
	"fmt"
	"io"

	"github.com/samber/lo"
	"github.com/tubevault/tubevault/color"
	"github.com/tubevault/tubevault/history"
	"github.com/tubevault/tubevault/icon"
	"github.com/tubevault/tubevault/style"
	"github.com/tubevault/tubevault/util"
	"github.com/tubevault/tubevault/video"
)

var stateIcons = map[history.State]icon.Icon{
	history.Unwatched: icon.Unwatched,
	history.Started:   icon.Started,
	history.Completed: icon.Completed,
}

func stateIcon(states map[string]history.Entry, id string) string {
	entry, ok := states[id]
	if !ok {
		return icon.Get(icon.Unwatched)
	}
	return icon.Get(stateIcons[entry.State])
}

// printGrid prints the catalog one category at a time, one card per series.
func printGrid(out io.Writer, records []*video.Record, states map[string]history.Entry, only string) {
	if len(records) == 0 {
		_, _ = fmt.Fprintf(out, "%s the catalog is empty\n", icon.Get(icon.Warn))
		return
	}

	categories := lo.Filter(video.Categories(records), func(c string, _ int) bool {
		return c != video.All && (only == "" || only == video.All || c == only)
	})

	for i, category := range categories {
		cards := video.Group(video.ByType(records, category))

		_, _ = fmt.Fprintf(out, "%s %s\n", style.Title(util.Capitalize(category)), style.Faint(util.Quantify(len(cards), "card", "cards")))

		for _, card := range cards {
			line := fmt.Sprintf("%s %s %s", stateIcon(states, card.ID), icon.Get(icon.ForType(card.Type)), card.DisplayTitle())

			if card.Episodic() {
				episodes := video.Episodes(records, card)
				watched := lo.CountBy(episodes, func(e *video.Record) bool {
					return states[e.ID].State == history.Completed
				})
				line += style.Faint(fmt.Sprintf(" %d/%d", watched, len(episodes)))
			}

			if card.IsPrivate {
				line += " " + style.Fg(color.Yellow)(icon.Get(icon.Private))
			}

			_, _ = fmt.Fprintf(out, "  %s %s\n", line, style.Faint(card.ID))
		}

		if i < len(categories)-1 {
			_, _ = fmt.Fprintln(out)
		}
	}
}
