package constant

// GOOS values the launcher distinguishes between.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
	Android = "android"
)
