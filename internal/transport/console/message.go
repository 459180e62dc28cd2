package console

import (
	"strconv"
	"strings"
)

const (
	actionStart = "start"
	actionMove  = "move"
	actionBoard = "board"
	actionHelp  = "help"
	actionQuit  = "quit"
	actionExit  = "exit"
)

// Message is one command line split into an action and its arguments.
type Message struct {
	Action string
	Args   []string
}

// parseMessage - turns an input line into a Message.
// A line that starts with a number is shorthand for "move".
func parseMessage(line string) (*Message, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, false
	}

	if _, err := strconv.Atoi(fields[0]); err == nil {
		return &Message{Action: actionMove, Args: fields}, true
	}

	return &Message{
		Action: strings.ToLower(fields[0]),
		Args:   fields[1:],
	}, true
}
