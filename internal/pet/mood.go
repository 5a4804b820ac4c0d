package pet

// Mood is derived from the live stats and never set directly. The
// cached copy on State exists for renderers; anything that needs the
// truth recomputes with DeriveMood.
type Mood int

const (
	MoodHappy Mood = iota
	MoodContent
	MoodHungry
	MoodSad
	MoodSleeping
)

// String returns the display label used on the device's mood line.
func (m Mood) String() string {
	switch m {
	case MoodHappy:
		return "Happy!"
	case MoodContent:
		return "Content"
	case MoodHungry:
		return "Hungry..."
	case MoodSad:
		return "Sad"
	case MoodSleeping:
		return "Zzz..."
	}
	return "?"
}

// DeriveMood applies the priority-ordered mood rules. First match
// wins: sleep outranks everything, hunger outranks sadness.
func DeriveMood(sleeping bool, hunger, happiness int) Mood {
	switch {
	case sleeping:
		return MoodSleeping
	case hunger > HungryThreshold:
		return MoodHungry
	case happiness < SadThreshold:
		return MoodSad
	case happiness > HappyThreshold && hunger < HappyHungerCutoff:
		return MoodHappy
	default:
		return MoodContent
	}
}
