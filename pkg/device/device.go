package device

// Kind labels for the built-in device variants.
const (
	KindTV    = "tv"
	KindRadio = "radio"
)

// Device is the capability surface that every controllable device exposes.
// Remotes operate exclusively through this interface, which keeps the device
// variants interchangeable behind it.
//
// All operations are total: they accept any input, cannot fail, and mutate
// in-memory state only. SetVolume stores the given level verbatim; no bounds
// are enforced anywhere, so the volume may go negative or arbitrarily high.
// Callers that want limits must impose them.
type Device interface {
	// IsEnabled reports whether the device is powered on.
	IsEnabled() bool

	// Enable powers the device on. Idempotent.
	Enable()

	// Disable powers the device off. Idempotent.
	Disable()

	// Volume returns the current volume level.
	Volume() int

	// SetVolume sets the volume to level verbatim, without clamping.
	SetVolume(level int)
}
