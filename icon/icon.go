// Package icon renders the symbols used in command output.
//
// The variant comes from icons.variant. Unknown variants fall back to plain so
// output never loses its markers.
package icon

import (
	"github.com/spf13/viper"
	"github.com/tubevault/tubevault/key"
)

const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	kaomoji = "kaomoji"
	squares = "squares"
)

// AvailableVariants lists the accepted icons.variant values.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, kaomoji, squares}
}

// iconDef is one symbol drawn in every variant.
type iconDef struct {
	emoji, nerd, plain, kaomoji, squares string
}

func (d *iconDef) in(variant string) string {
	switch variant {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case kaomoji:
		return d.kaomoji
	case squares:
		return d.squares
	default:
		return d.plain
	}
}

// Get renders i in the configured variant.
func Get(i Icon) string {
	d, ok := icons[i]
	if !ok {
		return ""
	}
	return d.in(viper.GetString(key.IconsVariant))
}
