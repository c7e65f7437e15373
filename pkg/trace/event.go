package trace

import "time"

// Event represents a single remote operation together with the device state
// observed after the operation completed.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the operation completed (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// SessionID uniquely identifies the remote instance (UUID).
	SessionID string `cbor:"2,keyasint"`

	// Remote indicates which remote kind issued the operation.
	Remote RemoteKind `cbor:"3,keyasint"`

	// Op is the operation that was performed.
	Op Op `cbor:"4,keyasint"`

	// Device is the device kind label, if the device reports one.
	Device string `cbor:"5,keyasint,omitempty"`

	// PowerOn is the device power state after the operation.
	PowerOn bool `cbor:"6,keyasint"`

	// Volume is the device volume after the operation.
	Volume int `cbor:"7,keyasint"`
}

// RemoteKind indicates which remote abstraction issued an operation.
type RemoteKind uint8

const (
	// RemoteBasic indicates the base remote (power and volume steps).
	RemoteBasic RemoteKind = 0
	// RemoteAdvanced indicates the advanced remote (adds mute).
	RemoteAdvanced RemoteKind = 1
)

// String returns the remote kind name.
func (k RemoteKind) String() string {
	switch k {
	case RemoteBasic:
		return "BASIC"
	case RemoteAdvanced:
		return "ADVANCED"
	default:
		return "UNKNOWN"
	}
}

// Op identifies a remote operation.
type Op uint8

const (
	// OpTogglePower flips the device power state.
	OpTogglePower Op = 0
	// OpVolumeUp raises the volume by one step.
	OpVolumeUp Op = 1
	// OpVolumeDown lowers the volume by one step.
	OpVolumeDown Op = 2
	// OpMute sets the volume to zero.
	OpMute Op = 3
)

// String returns the operation name.
func (o Op) String() string {
	switch o {
	case OpTogglePower:
		return "TOGGLE_POWER"
	case OpVolumeUp:
		return "VOLUME_UP"
	case OpVolumeDown:
		return "VOLUME_DOWN"
	case OpMute:
		return "MUTE"
	default:
		return "UNKNOWN"
	}
}
