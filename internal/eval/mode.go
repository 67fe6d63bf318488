package eval

import "fmt"

// Mode selects how an agent's answer is judged. Conceptual answers are taken
// at face value; tool-use answers are checked hop by hop against live links.
type Mode string

const (
	ModeConceptual Mode = "conceptual"
	ModeToolUse    Mode = "tool_use"
)

func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeConceptual, ModeToolUse:
		return Mode(s), nil
	}
	return "", fmt.Errorf("unknown mode %q (expected %q or %q)", s, ModeConceptual, ModeToolUse)
}

func (m Mode) String() string {
	return string(m)
}
