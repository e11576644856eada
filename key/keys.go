// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Hosting platform - these keys identify the channel whose videos make up the catalog.
const (
	YoutubeChannelID        = "youtube.channel_id"
	YoutubeAPIKey           = "youtube.api_key"
	YoutubeOAuthClientID    = "youtube.oauth_client_id"
	YoutubeUnlistedVideos   = "youtube.unlisted_videos"
	YoutubeSearchMaxResults = "youtube.search_max_results"
)

// Artwork lookup - these keys configure the movie/TV metadata service.
const (
	TMDBEnable = "tmdb.enable"
	TMDBAPIKey = "tmdb.api_key"
)

// Catalog lifecycle - these keys govern when a persisted snapshot is trusted.
const (
	CatalogUpdateInterval           = "catalog.update_interval"
	CatalogForceRefreshOnNewSession = "catalog.force_refresh_on_new_session"
)

// Network parameters.
const (
	NetworkFetchTimeout = "network.fetch_timeout"
)

// Search Interaction - these keys define the parameters for catalog search.
const (
	SearchShowQuerySuggestions = "search.show_query_suggestions"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment.
const (
	CliColored  = "cli.colored"
	OpenBrowser = "open.browser"
)
