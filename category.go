package emojitab

// Category names must match the EmojiCategory enumeration in the
// firmware's Emoji.h, which is why the set is closed.
var categoryNames = []string{
	"FACES",
	"GESTURES",
	"PEOPLE",
	"HEARTS",
	"ANIMALS",
	"FOOD",
	"ACTIVITIES",
	"TRAVEL",
	"OBJECTS",
	"SYMBOLS",
	"FLAGS",
}

func validCategory(name string) bool {
	for _, c := range categoryNames {
		if c == name {
			return true
		}
	}
	return false
}
