// Package inline prints the catalog non-interactively, as text or JSON.
package inline

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/tubevault/tubevault/history"
	"github.com/tubevault/tubevault/video"
)

// Options select and format the records to print.
type Options struct {
	Out     io.Writer
	Records []*video.Record
	States  map[string]history.Entry

	Query   string
	Type    string
	Person  mo.Option[string]
	Grouped bool
	Json    bool
}

// Item is a record together with its watch state.
type Item struct {
	*video.Record
	State history.State `json:"state"`
}

// Output is the JSON document printed with Options.Json.
type Output struct {
	Query  string  `json:"query"`
	Result []*Item `json:"result"`
}

// Filter applies the query, type, person and grouping options, in that order.
func Filter(options *Options) []*video.Record {
	records := video.Search(options.Records, options.Query)
	records = video.ByType(records, lo.Ternary(options.Type == "", video.All, options.Type))

	if person, ok := options.Person.Get(); ok {
		records = video.ByPerson(records, person)
	}

	if options.Grouped {
		records = video.Group(records)
	}

	return records
}

// Run prints the filtered records.
func Run(options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	items := lo.Map(Filter(options), func(r *video.Record, _ int) *Item {
		return &Item{Record: r, State: stateOf(options.States, r.ID)}
	})

	if options.Json {
		return writeJson(options.Out, items, options)
	}

	for _, item := range items {
		if _, err := fmt.Fprintln(options.Out, line(item)); err != nil {
			return err
		}
	}

	return nil
}

func line(item *Item) string {
	fields := []string{item.ID, item.Type, item.DisplayTitle()}

	if item.Episodic() && item.Episode != nil {
		fields = append(fields, fmt.Sprintf("%s E%d", video.SectionName(item.Record), *item.Episode))
	}

	fields = append(fields, string(item.State))
	return strings.Join(fields, "\t")
}

func stateOf(states map[string]history.Entry, id string) history.State {
	if entry, ok := states[id]; ok {
		return entry.State
	}
	return history.Unwatched
}

func writeJson(out io.Writer, items []*Item, options *Options) error {
	if items == nil {
		items = []*Item{}
	}

	data, err := json.Marshal(&Output{
		Query:  options.Query,
		Result: items,
	})
	if err != nil {
		return err
	}

	_, err = out.Write(data)
	return err
}
