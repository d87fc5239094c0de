package domain

// ToolLocation is the resolved filesystem path of an external tool, or
// the absence of one. It is computed once at startup and never mutated.
type ToolLocation struct {
	path string
}

// NewToolLocation creates a location for a resolved tool.
func NewToolLocation(path string) ToolLocation {
	return ToolLocation{path: path}
}

// Found reports whether the tool was resolved.
func (l ToolLocation) Found() bool {
	return l.path != ""
}

// Path returns the resolved path, or "" when the tool was not found.
func (l ToolLocation) Path() string {
	return l.path
}

// Toolchain holds the resolved locations of the Jack compiler jar and
// the Jill jar converter. A missing tool is represented by an unresolved
// ToolLocation; deciding whether that is fatal is left to the caller
// that needs the tool.
type Toolchain struct {
	Jack ToolLocation
	Jill ToolLocation
}
