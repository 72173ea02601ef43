package themes

import "github.com/Iuvenis-Sapiens/rendercv/internal/types"

// builtinDefaults holds the design defaults each built-in theme layers over
// the library defaults. A nil entry means the theme uses the library
// defaults unchanged.
var builtinDefaults = map[string]*types.Design{
	"classic": nil,
	"sb2nov": {
		Color:          "rgb(0,0,0)",
		LinkColor:      "black",
		TextAlignment:  "left-aligned",
		HeaderFontSize: "24 pt",
	},
}
