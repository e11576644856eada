package config

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/template"

	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/tubevault/tubevault/color"
	"github.com/tubevault/tubevault/constant"
	"github.com/tubevault/tubevault/key"
	"github.com/tubevault/tubevault/style"
)

// Field is a registered setting with its default value.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Env is the environment variable that overrides the field.
func (f *Field) Env() string {
	return strings.ToUpper(constant.Tubevault + "_" + EnvKeyReplacer.Replace(f.Key))
}

// Type names the Go type of the default value.
func (f *Field) Type() string {
	return fmt.Sprintf("%T", f.Value)
}

// Pretty renders the field for `config info`.
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(infoTemplate.Execute(&b, f))
	return b.String()
}

func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{
		"key":         f.Key,
		"env":         f.Env(),
		"type":        f.Type(),
		"value":       viper.Get(f.Key),
		"default":     f.Value,
		"description": f.Description,
	})
}

// Default maps every known key to its field.
var Default = map[string]Field{}

// EnvExposed lists the keys bound to environment variables.
var EnvExposed []string

var fields = []Field{
	{key.YoutubeChannelID, "", "ID of the channel whose videos make up the catalog"},
	{key.YoutubeAPIKey, "", "YouTube Data API key.\nUsed when no OAuth token is stored"},
	{key.YoutubeOAuthClientID, "", "OAuth 2.0 client ID the stored token was issued for"},
	{key.YoutubeUnlistedVideos, []string{}, "IDs of unlisted videos to include in the catalog"},
	{key.YoutubeSearchMaxResults, 50, "Page size of the public channel search.\nOnly the first page is read"},

	{key.TMDBEnable, true, "Look up posters and backdrops on TMDB"},
	{key.TMDBAPIKey, "", "TMDB API key"},

	{key.CatalogUpdateInterval, "1h", "How long a saved catalog is trusted"},
	{key.CatalogForceRefreshOnNewSession, false, "Refresh the catalog on every launch,\nignoring the update interval"},

	{key.NetworkFetchTimeout, "30s", "Upper bound for a single remote call"},

	{key.SearchShowQuerySuggestions, true, "Suggest previous queries when completing --query"},
	{key.IconsVariant, "plain", "Icons variant.\nOne of: emoji, nerd, plain, kaomoji, squares"},

	{key.LogsWrite, false, "Write logs"},
	{key.LogsLevel, "info", "Log level, from least to most verbose:\npanic, fatal, error, warn, info, debug, trace"},
	{key.LogsJson, false, "Write logs as json"},

	{key.CliColored, true, "Colored help output"},
	{key.OpenBrowser, "", "Application used to open videos.\nThe system handler is used when empty"},
}

func init() {
	for _, f := range fields {
		if _, ok := Default[f.Key]; ok {
			panic("config: duplicate key " + f.Key)
		}
		Default[f.Key] = f
		EnvExposed = append(EnvExposed, f.Key)
	}
}

func highlight(v any) string {
	switch v := v.(type) {
	case bool:
		return style.Fg(lo.Ternary(v, color.Green, color.Red))(fmt.Sprint(v))
	case string:
		return style.Fg(color.Yellow)(fmt.Sprintf("%q", v))
	default:
		return fmt.Sprint(v)
	}
}

var infoTemplate = template.Must(template.New("info").Funcs(template.FuncMap{
	"faint": style.Faint,
	"label": style.Fg(color.Blue),
	"name":  style.Fg(color.Purple),
	"hl":    highlight,
	"viper": viper.Get,
}).Parse(`{{ name .Key }} {{ faint .Type }}
{{ faint .Description }}
{{ label "env" }}     {{ .Env }}
{{ label "value" }}   {{ hl (viper .Key) }}
{{ label "default" }} {{ hl .Value }}`))
