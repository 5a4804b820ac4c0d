package ui

import (
	"fmt"
	"strings"

	"pocketpet/internal/pet"
)

// bounceOffsets approximates the device's sine bounce with the frame
// counter: the face drifts down and back every four frames.
var bounceOffsets = []int{0, 1, 2, 1}

// Face renders the pet as a few lines of text. Eyes close during
// sleep and fix on the owner when present; the mouth follows mood.
func Face(st pet.State, frame int) string {
	eye := "●"
	if st.Sleeping {
		eye = "─"
	} else if st.OwnerPresent {
		eye = "◉"
	}

	var mouth string
	switch st.Mood {
	case pet.MoodHappy:
		mouth = "◡◡◡"
	case pet.MoodSad, pet.MoodHungry:
		mouth = "⌒⌒⌒"
	default:
		mouth = "───"
	}

	lines := []string{
		" ╭─────────╮",
		fmt.Sprintf(" │  %s   %s  │", eye, eye),
		" │ ▒     ▒ │",
		fmt.Sprintf(" │   %s   │", mouth),
		" ╰─────────╯",
	}

	// Pad above and below so the total height is constant and only the
	// face moves.
	bounce := bounceOffsets[frame%len(bounceOffsets)]
	maxBounce := 2
	top := strings.Repeat("\n", bounce)
	bottom := strings.Repeat("\n", maxBounce-bounce)
	return top + strings.Join(lines, "\n") + bottom
}
