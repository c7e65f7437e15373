package remote

import (
	"time"

	"github.com/google/uuid"

	"github.com/avbridge/avbridge-go/pkg/device"
	"github.com/avbridge/avbridge-go/pkg/trace"
)

// VolumeStep is the amount VolumeUp and VolumeDown change the volume by.
const VolumeStep = 10

// Remote drives a single device through the device.Device capability set.
// The device reference is fixed at construction and never replaced.
//
// Remote performs no validation or clamping of its own. Operations are
// read-modify-write sequences over the device's reported state, and the
// device stores whatever level results.
type Remote struct {
	dev device.Device

	// sessionID identifies this remote instance in trace events (UUID).
	sessionID string

	// kind is reported in trace events.
	kind trace.RemoteKind

	// logger receives one event per operation. Nil disables tracing.
	logger trace.Logger
}

// New creates a Remote controlling the given device.
// The device must not be nil; New panics otherwise.
func New(dev device.Device) *Remote {
	if dev == nil {
		panic("remote: device must not be nil")
	}
	return &Remote{
		dev:       dev,
		sessionID: uuid.New().String(),
		kind:      trace.RemoteBasic,
	}
}

// Device returns the device this remote controls.
func (r *Remote) Device() device.Device {
	return r.dev
}

// SessionID returns the UUID identifying this remote instance.
func (r *Remote) SessionID() string {
	return r.sessionID
}

// SetTraceLogger configures operation tracing. Pass nil to disable.
// Tracing never alters operation behavior.
func (r *Remote) SetTraceLogger(logger trace.Logger) {
	r.logger = logger
}

// TogglePower flips the device power state: enabled devices are disabled,
// disabled devices are enabled.
func (r *Remote) TogglePower() {
	if r.dev.IsEnabled() {
		r.dev.Disable()
	} else {
		r.dev.Enable()
	}
	r.emit(trace.OpTogglePower)
}

// VolumeUp raises the volume by VolumeStep.
// The result is not clamped; the device stores it verbatim.
func (r *Remote) VolumeUp() {
	r.dev.SetVolume(r.dev.Volume() + VolumeStep)
	r.emit(trace.OpVolumeUp)
}

// VolumeDown lowers the volume by VolumeStep.
// The result is not clamped and may go negative.
func (r *Remote) VolumeDown() {
	r.dev.SetVolume(r.dev.Volume() - VolumeStep)
	r.emit(trace.OpVolumeDown)
}

// emit records the operation and the device state observed after it.
func (r *Remote) emit(op trace.Op) {
	if r.logger == nil {
		return
	}
	r.logger.Log(trace.Event{
		Timestamp: time.Now(),
		SessionID: r.sessionID,
		Remote:    r.kind,
		Op:        op,
		Device:    deviceLabel(r.dev),
		PowerOn:   r.dev.IsEnabled(),
		Volume:    r.dev.Volume(),
	})
}

// deviceLabel returns the device kind label when the device reports one.
func deviceLabel(dev device.Device) string {
	if k, ok := dev.(interface{ Kind() string }); ok {
		return k.Kind()
	}
	return "device"
}
