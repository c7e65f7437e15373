package remote

import (
	"github.com/avbridge/avbridge-go/pkg/device"
	"github.com/avbridge/avbridge-go/pkg/trace"
)

// AdvancedRemote extends Remote with muting.
// All base operations behave exactly as on Remote.
type AdvancedRemote struct {
	*Remote
}

// NewAdvanced creates an AdvancedRemote controlling the given device.
// The device must not be nil; NewAdvanced panics otherwise.
func NewAdvanced(dev device.Device) *AdvancedRemote {
	r := New(dev)
	r.kind = trace.RemoteAdvanced
	return &AdvancedRemote{Remote: r}
}

// Mute sets the volume to zero regardless of the current level or power state.
func (a *AdvancedRemote) Mute() {
	a.dev.SetVolume(0)
	a.emit(trace.OpMute)
}
