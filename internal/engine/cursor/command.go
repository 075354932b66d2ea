package cursor

// Command is a navigation command.
type Command uint8

const (
	CommandNone Command = iota
	CommandUp
	CommandDown
	CommandLeft
	CommandRight
	CommandPageUp
	CommandPageDown
	CommandHome
	CommandEnd
	CommandQuit
)

// String returns the command name.
func (c Command) String() string {
	switch c {
	case CommandNone:
		return "none"
	case CommandUp:
		return "up"
	case CommandDown:
		return "down"
	case CommandLeft:
		return "left"
	case CommandRight:
		return "right"
	case CommandPageUp:
		return "page-up"
	case CommandPageDown:
		return "page-down"
	case CommandHome:
		return "home"
	case CommandEnd:
		return "end"
	case CommandQuit:
		return "quit"
	default:
		return "unknown"
	}
}
