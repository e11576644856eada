package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tubevault/tubevault/auth"
	"github.com/tubevault/tubevault/color"
	"github.com/tubevault/tubevault/icon"
	"github.com/tubevault/tubevault/key"
	"github.com/tubevault/tubevault/log"
	"github.com/tubevault/tubevault/style"
)

func init() {
	rootCmd.AddCommand(authCmd)
	authCmd.AddCommand(authLoginCmd, authLogoutCmd, authStatusCmd)
}

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the YouTube access token used to list private videos",
}

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Store an OAuth access token in the system keyring",
	Long: "Store an OAuth access token with the youtube.readonly scope in the system keyring.\n" +
		"Without it only public and unlisted videos are listed.",
	Run: func(cmd *cobra.Command, args []string) {
		var token string
		prompt := &survey.Password{
			Message: "Access token:",
			Help:    "An OAuth 2.0 access token for client " + clientID() + " with the youtube.readonly scope",
		}

		handleErr(survey.AskOne(prompt, &token, survey.WithValidator(survey.Required)))

		handleErr(auth.SetToken(strings.TrimSpace(token)))
		log.Info("youtube token stored")
		fmt.Printf("%s token stored in the keyring\n", style.Fg(color.Green)(icon.Get(icon.Success)))
	},
}

var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the stored access token",
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(auth.DeleteToken())
		log.Info("youtube token removed")
		fmt.Printf("%s token removed\n", style.Fg(color.Green)(icon.Get(icon.Success)))
	},
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Report whether an access token is stored",
	Run: func(cmd *cobra.Command, args []string) {
		switch {
		case auth.HasToken():
			fmt.Printf("%s using the stored access token\n", style.Fg(color.Green)(icon.Get(icon.Success)))
		case viper.GetString(key.YoutubeAPIKey) != "":
			fmt.Printf("%s using the API key, private videos are not listed\n", style.Fg(color.Yellow)(icon.Get(icon.Warn)))
		default:
			handleErr(errors.New("neither an access token nor an API key is configured"))
		}
	},
}

func clientID() string {
	if id := viper.GetString(key.YoutubeOAuthClientID); id != "" {
		return id
	}
	return style.Faint("(" + key.YoutubeOAuthClientID + " is not set)")
}
