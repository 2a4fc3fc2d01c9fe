// SPDX-License-Identifier: MIT

package grid

import "fmt"

// State is the category of a single cell.
type State uint8

const (
	Floor State = iota
	Wall
	Start
	Finish
	Sheet
	FormA
	FormB
	FormC
	FormD
	FormE
	FormF
	FormG
	FormH
	FormI
	FormJ
	FormK
	FormL
	FormM
	FormN
	FormO
	FormP
	FormQ
	FormR
	FormS
	FormT
	FormU
	FormV
	FormW
	FormX
	FormY
	FormZ
)

// MaxPlayers is the highest owner id a cell may carry.
const MaxPlayers = 8

// IsForm reports whether s is one of FormA..FormZ.
func (s State) IsForm() bool {
	return s >= FormA && s <= FormZ
}

// Owned reports whether cells in state s carry a player owner.
func (s State) Owned() bool {
	return s == Start || s == Finish || s.IsForm()
}

// Letter returns the form letter ('A'..'Z') or 0 when s is not a form.
func (s State) Letter() rune {
	if !s.IsForm() {
		return 0
	}
	return 'A' + rune(s-FormA)
}

// FormState maps a letter 'A'..'Z' to its form state.
// The boolean is false for any other rune.
func FormState(letter rune) (State, bool) {
	if letter < 'A' || letter > 'Z' {
		return Floor, false
	}
	return FormA + State(letter-'A'), true
}

func (s State) String() string {
	switch {
	case s == Floor:
		return "Floor"
	case s == Wall:
		return "Wall"
	case s == Start:
		return "Start"
	case s == Finish:
		return "Finish"
	case s == Sheet:
		return "Sheet"
	case s.IsForm():
		return "Form_" + string(s.Letter())
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Glyph returns the single-character type glyph of s in the row layout.
// FormS uses '$' because 'S' already denotes a sheet.
func (s State) Glyph() rune {
	switch {
	case s == Wall:
		return '#'
	case s == Start:
		return '@'
	case s == Finish:
		return '!'
	case s == Sheet:
		return 'S'
	case s == FormS:
		return '$'
	case s.IsForm():
		return s.Letter()
	default:
		return ' '
	}
}

// ParseGlyph is the inverse of Glyph. Unknown glyphs decode to Floor.
func ParseGlyph(r rune) State {
	switch r {
	case '#':
		return Wall
	case '@':
		return Start
	case '!':
		return Finish
	case 'S':
		return Sheet
	case '$':
		return FormS
	}
	if st, ok := FormState(r); ok {
		return st
	}
	return Floor
}
