package embedded

import (
	_ "embed"
)

// Stylesheet of the fretboards page. Cell classes match the FretClass and
// Classification text forms ("zero", "twelves", "root-note", ...).
//
//go:embed data/fretboard.css
var FretboardCSS string
