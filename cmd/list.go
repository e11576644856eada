package cmd

import (
	"encoding/json"
	"os"
	"path"
	"reflect"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/tubevault/tubevault/inline"
	"github.com/tubevault/tubevault/log"
	"github.com/tubevault/tubevault/query"
)

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringP("query", "q", "", "Search titles, authors and actors")
	listCmd.Flags().StringP("type", "t", "", "Show only one category")
	listCmd.Flags().StringP("person", "p", "", "Show only videos by or featuring this person")
	listCmd.Flags().BoolP("json", "j", false, "Print the result as JSON")
	listCmd.Flags().BoolP("grouped", "g", false, "Collapse series and courses to a single entry")

	lo.Must0(listCmd.RegisterFlagCompletionFunc("type", completionCategories))
	lo.Must0(listCmd.RegisterFlagCompletionFunc("query", func(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	}))
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the saved catalog without refreshing it",
	Example: "  tubevault list --type series --grouped\n" +
		"  tubevault list -q \"pacino\" --json",
	Run: func(cmd *cobra.Command, args []string) {
		a := newApp(cmd)

		options := &inline.Options{
			Out:     cmd.OutOrStdout(),
			Records: a.Saved(),
			States:  a.Watch.All(),
			Query:   lo.Must(cmd.Flags().GetString("query")),
			Type:    lo.Must(cmd.Flags().GetString("type")),
			Grouped: lo.Must(cmd.Flags().GetBool("grouped")),
			Json:    lo.Must(cmd.Flags().GetBool("json")),
		}

		if person := lo.Must(cmd.Flags().GetString("person")); person != "" {
			options.Person = mo.Some(person)
		}

		if options.Query != "" {
			if err := query.Remember(options.Query, 1); err != nil {
				log.Warnf("remember query: %v", err)
			}
		}

		handleErr(inline.Run(options))
	},
}

func init() {
	listCmd.AddCommand(listSchemaCmd)
}

var listSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of list --json output",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			name := t.Name()
			switch strings.ToLower(name) {
			case "record", "tags", "item", "output":
				return path.Base(t.PkgPath()) + "." + name
			}

			return name
		}

		handleErr(json.NewEncoder(os.Stdout).Encode(reflector.Reflect(&inline.Output{})))
	},
}
