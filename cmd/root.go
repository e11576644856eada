// Package cmd implements the command-line interface for tubevault.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tubevault/tubevault/app"
	"github.com/tubevault/tubevault/color"
	"github.com/tubevault/tubevault/constant"
	"github.com/tubevault/tubevault/icon"
	"github.com/tubevault/tubevault/key"
	"github.com/tubevault/tubevault/log"
	"github.com/tubevault/tubevault/quota"
	"github.com/tubevault/tubevault/style"
)

func init() {
	rootCmd.SetOut(os.Stdout)
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")
	rootCmd.Flags().BoolP("reload", "r", false, "Continue the previous session, trusting a fresh saved catalog")
	rootCmd.Flags().StringP("type", "t", "", "Show only one category")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("type", completionCategories))

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))
}

// rootCmd defines the entry point for the tubevault application.
var rootCmd = &cobra.Command{
	Use:   constant.Tubevault,
	Short: "A personal video catalog for your YouTube channel",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - A personal video catalog for your YouTube channel"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		a := newApp(cmd)

		reload := lo.Must(cmd.Flags().GetBool("reload"))
		records, err := a.Catalog(cmd.Context(), reload)
		if len(records) == 0 {
			handleErr(err)
		}
		warnErr(err)

		printGrid(cmd.OutOrStdout(), records, a.Watch.All(), lo.Must(cmd.Flags().GetString("type")))
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		os.Exit(1)
	}
}

// newApp builds the application context and reports quota exhaustion as it happens.
func newApp(cmd *cobra.Command) *app.App {
	a, err := app.FromConfig(cmd.Context())
	handleErr(err)

	a.Quota.Subscribe(func(e quota.Event) {
		if e.Kind == quota.Exceeded {
			_, _ = fmt.Fprintf(
				os.Stderr,
				"%s %s\n",
				style.Fg(color.Yellow)(icon.Get(icon.Quota)),
				fmt.Sprintf("daily API quota exceeded (%d/%d used), try again after midnight", e.Usage.Used, e.Usage.Limit),
			)
		}
	})

	return a
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}

// warnErr reports err without exiting, for failures that still left something to show.
func warnErr(err error) {
	if err != nil {
		log.Warn(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Warn), strings.Trim(err.Error(), " \n"))
	}
}
