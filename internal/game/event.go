package game

import (
	"fmt"
	"strings"
	"unicode"
)

// Event is a semantic input command. Binding physical keys to events is
// up to the keyboard source.
type Event uint8

const (
	None Event = iota
	MoveUp
	MoveDown
	MoveLeft
	MoveRight
	Reveal
	ToggleFlag
	Quit
	LAST_EVENT
)

var eventNames = [...]string{
	None:       "none",
	MoveUp:     "up",
	MoveDown:   "down",
	MoveLeft:   "left",
	MoveRight:  "right",
	Reveal:     "reveal",
	ToggleFlag: "flag",
	Quit:       "quit",
}

func (e Event) String() string {
	if e < LAST_EVENT {
		return eventNames[e]
	}
	return fmt.Sprintf("Event(%d)", uint8(e))
}

var ErrBadEvent error

func init() {
	var allowed []string
	for e := None + 1; e < LAST_EVENT; e++ {
		allowed = append(allowed, "'"+e.String()+"'")
	}
	ErrBadEvent = fmt.Errorf("event must be one of %s", strings.Join(allowed, ", "))
}

func ParseEvent(s string) (Event, error) {
	for e := None + 1; e < LAST_EVENT; e++ {
		if strings.EqualFold(s, e.String()) {
			return e, nil
		}
	}
	return None, ErrBadEvent
}

// ParseEvents reads a script of event names separated by commas or
// whitespace, e.g. "right, right, down, reveal".
func ParseEvents(script string) ([]Event, error) {
	fields := strings.FieldsFunc(script, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	events := make([]Event, 0, len(fields))
	for i, f := range fields {
		e, err := ParseEvent(f)
		if err != nil {
			return nil, fmt.Errorf("event #%d %q: %w", i+1, f, err)
		}
		events = append(events, e)
	}
	return events, nil
}
