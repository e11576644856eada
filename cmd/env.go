package cmd

import (
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/tubevault/tubevault/color"
	"github.com/tubevault/tubevault/config"
	"github.com/tubevault/tubevault/style"
	"github.com/tubevault/tubevault/where"
	"golang.org/x/exp/slices"
)

// envNames lists every variable tubevault reads, sorted.
func envNames() []string {
	names := lo.Map(config.EnvExposed, func(name string, _ int) string {
		field := config.Default[name]
		return field.Env()
	})
	names = append(names, where.EnvConfigPath)
	slices.Sort(names)
	return names
}

func init() {
	rootCmd.AddCommand(envCmd)
	envCmd.Flags().BoolP("set-only", "s", false, "Only variables that are set")
	envCmd.Flags().BoolP("unset-only", "u", false, "Only variables that are not set")
	envCmd.MarkFlagsMutuallyExclusive("set-only", "unset-only")
}

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "List the environment variables tubevault reads",
	Run: func(cmd *cobra.Command, args []string) {
		setOnly := lo.Must(cmd.Flags().GetBool("set-only"))
		unsetOnly := lo.Must(cmd.Flags().GetBool("unset-only"))
		name := style.New().Bold(true).Foreground(color.Purple).Render

		for _, env := range envNames() {
			value, present := os.LookupEnv(env)
			if (setOnly && !present) || (unsetOnly && present) {
				continue
			}

			if present {
				cmd.Println(name(env) + "=" + style.Fg(color.Green)(value))
			} else {
				cmd.Println(name(env) + "=" + style.Fg(color.Red)("unset"))
			}
		}
	},
}
