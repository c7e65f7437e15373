package device

// TV is the television variant of Device.
// A new TV starts powered off with volume 0.
type TV struct {
	on     bool
	volume int
}

// NewTV creates a TV that is powered off with volume 0.
func NewTV() *TV {
	return &TV{}
}

// IsEnabled reports whether the TV is powered on.
func (t *TV) IsEnabled() bool {
	return t.on
}

// Enable powers the TV on.
func (t *TV) Enable() {
	t.on = true
}

// Disable powers the TV off.
func (t *TV) Disable() {
	t.on = false
}

// Volume returns the current volume level.
func (t *TV) Volume() int {
	return t.volume
}

// SetVolume stores level verbatim.
func (t *TV) SetVolume(level int) {
	t.volume = level
}

// Kind returns the kind label used by rosters and trace events.
func (t *TV) Kind() string {
	return KindTV
}

// Compile-time interface satisfaction check.
var _ Device = (*TV)(nil)
