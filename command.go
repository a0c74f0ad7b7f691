package microgui

// CommandKind identifies what a Command draws.
type CommandKind uint8

const (
	CommandRect CommandKind = iota + 1
	CommandText
	CommandIcon
)

func (k CommandKind) String() string {
	switch k {
	case CommandRect:
		return "rect"
	case CommandText:
		return "text"
	case CommandIcon:
		return "icon"
	default:
		return "unknown"
	}
}

// Command is one entry of a container's command list. Every command
// carries the clip rect that was active when it was recorded.
type Command struct {
	Kind  CommandKind
	Rect  Rect   // Filled rect, or the cell an icon is centered in
	Pos   Vec2   // Text origin (top-left)
	Clip  Rect   // Active clip rect
	Color uint32 // Packed RGBA
	Text  string
	Icon  IconID
}

// ClipResult tells how a rect relates to the active clip rect.
type ClipResult uint8

const (
	ClipNone ClipResult = iota // Fully visible
	ClipPart                   // Partially visible
	ClipAll                    // Not visible
)
