// Package assets embeds the tray icon frames.
//
// Frames are named "<theme>_<character>_<index>.png" in lower case, e.g.
// "dark_parrot_7.png", with one set per concrete theme (light, dark).
package assets

import "embed"

// Dir is the directory inside FS holding the icon frames.
const Dir = "icons"

//go:embed icons/*.png
var FS embed.FS
