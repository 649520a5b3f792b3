package cursor

import (
	"fmt"
	"strings"
)

// Motion names one of the directional cursor movements.
type Motion uint8

const (
	MotionUp Motion = iota
	MotionDown
	MotionLeft
	MotionRight
	MotionLineStart
	MotionLineEnd
)

var motionNames = [...]string{
	MotionUp:        "up",
	MotionDown:      "down",
	MotionLeft:      "left",
	MotionRight:     "right",
	MotionLineStart: "home",
	MotionLineEnd:   "end",
}

// String returns the motion's name.
func (m Motion) String() string {
	if int(m) < len(motionNames) {
		return motionNames[m]
	}
	return fmt.Sprintf("Motion(%d)", m)
}

// ParseMotion parses a motion name, ignoring case and surrounding space.
// Accepted aliases:
//
//	up     k
//	down   j
//	left   h
//	right  l
//	home   start, 0
//	end    eol, $
func ParseMotion(s string) (Motion, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "k":
		return MotionUp, nil
	case "down", "j":
		return MotionDown, nil
	case "left", "h":
		return MotionLeft, nil
	case "right", "l":
		return MotionRight, nil
	case "home", "start", "0":
		return MotionLineStart, nil
	case "end", "eol", "$":
		return MotionLineEnd, nil
	default:
		return 0, fmt.Errorf("unknown motion %q", s)
	}
}

// Apply performs the motion and reports whether the position changed.
func (c *Cursor) Apply(m Motion) bool {
	before := c.position

	switch m {
	case MotionUp:
		c.MoveUp()
	case MotionDown:
		c.MoveDown()
	case MotionLeft:
		c.MoveLeft()
	case MotionRight:
		c.MoveRight()
	case MotionLineStart:
		c.MoveToStartOfLine()
	case MotionLineEnd:
		c.MoveToEndOfLine()
	}

	return c.position != before
}
