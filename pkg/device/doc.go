// Package device defines the device capability contract and its built-in
// variants.
//
// # Capability Contract
//
// A Device exposes five operations: power state (IsEnabled, Enable, Disable)
// and volume (Volume, SetVolume). Every operation is total: there are no
// error returns and no rejected inputs. In particular SetVolume performs no
// clamping: a device happily stores -30 or 400. The contract deliberately
// stays this small so that the remote abstractions in pkg/remote can vary
// independently of the device variants.
//
// # Variants
//
// TV and Radio are the two built-in implementations. They are behaviorally
// identical; both start powered off at volume 0. Each also carries a
// concrete-only Kind method returning its kind label ("tv", "radio") for
// rosters and trace events. Kind is not part of the Device interface;
// callers that need a label assert for it:
//
//	if k, ok := dev.(interface{ Kind() string }); ok {
//	    label = k.Kind()
//	}
//
// Devices carry no synchronization. The control model is single-threaded:
// one remote drives one device.
package device
