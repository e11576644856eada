package icon

// Icon identifies a symbol in the registry.
type Icon int

const (
	Success Icon = iota
	Fail
	Warn
	Progress
	Movie
	Series
	Course
	MyVideo
	Unwatched
	Started
	Completed
	Private
	Quota
)

var icons = map[Icon]*iconDef{
	Success: {
		emoji:   "🎉",
		nerd:    "",
		plain:   "✓",
		kaomoji: "(ᵔ◡ᵔ)",
		squares: "🟩",
	},
	Fail: {
		emoji:   "💀",
		nerd:    "",
		plain:   "X",
		kaomoji: "(╥﹏╥)",
		squares: "🟥",
	},
	Warn: {
		emoji:   "🚧",
		nerd:    "",
		plain:   "!",
		kaomoji: "(•̀ᴗ•́)",
		squares: "🟨",
	},
	Progress: {
		emoji:   "👇",
		nerd:    "",
		plain:   "~",
		kaomoji: "(๑•̀ㅂ•́)و",
		squares: "🟦",
	},
	Movie: {
		emoji:   "🎬",
		nerd:    "",
		plain:   "M",
		kaomoji: "(⌐■_■)",
		squares: "🟪",
	},
	Series: {
		emoji:   "📺",
		nerd:    "",
		plain:   "S",
		kaomoji: "(◕‿◕)",
		squares: "🟫",
	},
	Course: {
		emoji:   "🎓",
		nerd:    "",
		plain:   "C",
		kaomoji: "(｀・ω・´)",
		squares: "🟧",
	},
	MyVideo: {
		emoji:   "📹",
		nerd:    "",
		plain:   "V",
		kaomoji: "(＾▽＾)",
		squares: "⬜",
	},
	Unwatched: {
		emoji:   "⚪",
		nerd:    "",
		plain:   " ",
		kaomoji: "(・_・)",
		squares: "⬛",
	},
	Started: {
		emoji:   "🟡",
		nerd:    "",
		plain:   "~",
		kaomoji: "(°ロ°)",
		squares: "🟨",
	},
	Completed: {
		emoji:   "✅",
		nerd:    "",
		plain:   "*",
		kaomoji: "(✿◠‿◠)",
		squares: "🟩",
	},
	Private: {
		emoji:   "🔒",
		nerd:    "",
		plain:   "P",
		kaomoji: "(¬‿¬)",
		squares: "🔲",
	},
	Quota: {
		emoji:   "⛽",
		nerd:    "",
		plain:   "Q",
		kaomoji: "(・・;)",
		squares: "🔳",
	},
}

// ForType returns the icon of a catalog type, MyVideo for anything unknown.
func ForType(kind string) Icon {
	switch kind {
	case "movie":
		return Movie
	case "series":
		return Series
	case "cursos":
		return Course
	default:
		return MyVideo
	}
}
