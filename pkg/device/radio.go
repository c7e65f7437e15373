package device

// Radio is the radio variant of Device. It behaves identically to TV; the
// two exist to show that remotes work against the Device contract rather
// than any concrete type.
type Radio struct {
	on     bool
	volume int
}

// NewRadio creates a Radio that is powered off with volume 0.
func NewRadio() *Radio {
	return &Radio{}
}

// IsEnabled reports whether the radio is powered on.
func (r *Radio) IsEnabled() bool {
	return r.on
}

// Enable powers the radio on.
func (r *Radio) Enable() {
	r.on = true
}

// Disable powers the radio off.
func (r *Radio) Disable() {
	r.on = false
}

// Volume returns the current volume level.
func (r *Radio) Volume() int {
	return r.volume
}

// SetVolume stores level verbatim.
func (r *Radio) SetVolume(level int) {
	r.volume = level
}

// Kind returns the kind label used by rosters and trace events.
func (r *Radio) Kind() string {
	return KindRadio
}

// Compile-time interface satisfaction check.
var _ Device = (*Radio)(nil)
