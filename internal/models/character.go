package models

import (
	"fmt"
	"strings"
)

// Character is the animal animated in the tray.
type Character int

// Characters in menu order. The first one is the default.
const (
	CharacterCat Character = iota
	CharacterParrot
	CharacterHorse
	CharacterPuppy
	CharacterDino
	CharacterRabbit
)

var characterNames = [...]string{"Cat", "Parrot", "Horse", "Puppy", "Dino", "Rabbit"}

// Frame counts are fixed per character and must match the embedded icons.
var characterFrames = [...]int{5, 10, 14, 5, 7, 5}

// Characters returns every character in menu order.
func Characters() []Character {
	out := make([]Character, len(characterNames))
	for i := range characterNames {
		out[i] = Character(i)
	}
	return out
}

// Valid reports whether c is a known character.
func (c Character) Valid() bool {
	return c >= 0 && int(c) < len(characterNames)
}

// String returns the display name, e.g. "Cat".
func (c Character) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Character(%d)", int(c))
	}
	return characterNames[c]
}

// FrameCount returns the number of animation frames for the character.
func (c Character) FrameCount() int {
	if !c.Valid() {
		return 0
	}
	return characterFrames[c]
}

// ParseCharacter parses a character name case-insensitively.
func ParseCharacter(s string) (Character, error) {
	s = strings.TrimSpace(s)
	for i, name := range characterNames {
		if strings.EqualFold(name, s) {
			return Character(i), nil
		}
	}
	return CharacterCat, fmt.Errorf("unknown runner %q", s)
}
