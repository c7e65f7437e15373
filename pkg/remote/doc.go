// Package remote provides control abstractions over the device capability set.
//
// A Remote holds a device.Device and builds user-facing operations (power
// toggling, volume stepping) from the device's primitive capabilities. The
// control side and the device side vary independently: a new remote works
// with every device implementation, and a new device works with every
// remote.
//
// # Remotes
//
// The base Remote covers power and volume stepping:
//
//	rc := remote.New(device.NewTV())
//	rc.TogglePower() // enables the TV
//	rc.VolumeUp()    // 0 -> 10
//
// AdvancedRemote embeds *Remote and adds Mute:
//
//	ar := remote.NewAdvanced(device.NewRadio())
//	ar.TogglePower()
//	ar.VolumeUp()
//	ar.Mute() // volume back to 0
//
// Volume arithmetic is never clamped. Stepping below zero stores a negative
// level; the device keeps whatever it is given.
//
// # Tracing
//
// Remotes optionally emit one trace.Event per operation describing the
// operation and the device state observed after it:
//
//	rc.SetTraceLogger(trace.NewSlogAdapter(slog.Default()))
//
// Tracing never alters operation behavior.
package remote
