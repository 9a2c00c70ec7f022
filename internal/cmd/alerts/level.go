package alerts

import "fmt"

// Level is the severity of an alert. Lower values are more severe.
type Level int

// Alert levels.
const (
	LevelError Level = iota
	LevelWarning
	LevelInfo
	LevelSuccess
)

var levelNames = [...]struct{ name, icon string }{
	LevelError:   {"error", "✗"},
	LevelWarning: {"warning", "!"},
	LevelInfo:    {"info", "-"},
	LevelSuccess: {"success", "✓"},
}

func (l Level) String() string {
	if l < 0 || int(l) >= len(levelNames) {
		return fmt.Sprintf("unknown(%d)", l)
	}
	return levelNames[l].name
}

// Icon is the symbol printed in front of alerts of this level.
func (l Level) Icon() string {
	if l < 0 || int(l) >= len(levelNames) {
		return "-"
	}
	return levelNames[l].icon
}
