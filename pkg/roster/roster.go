// Package roster provides YAML parsing for device roster files. A roster
// declares the devices a control surface exposes, each with a kind, a
// unique name, and an initial state.
package roster

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/avbridge/avbridge-go/pkg/device"
)

// Roster errors.
var (
	ErrUnsupportedVersion = errors.New("unsupported roster version")
	ErrUnknownKind        = errors.New("unknown device kind")
	ErrDuplicateName      = errors.New("duplicate device name")
)

// Roster represents a device roster loaded from YAML.
type Roster struct {
	Version int         `yaml:"version"`
	Devices []DeviceDef `yaml:"devices"`
}

// DeviceDef represents a single device declaration.
type DeviceDef struct {
	// Name uniquely identifies the device within the roster.
	Name string `yaml:"name"`

	// Kind selects the device implementation ("tv", "radio").
	Kind string `yaml:"kind"`

	// Volume is the initial volume level, applied verbatim.
	Volume int `yaml:"volume"`

	// Enabled is the initial power state.
	Enabled bool `yaml:"enabled"`
}

// Entry pairs a roster name with its constructed device.
type Entry struct {
	Name   string
	Device device.Device
}

// Parse parses a roster from YAML bytes.
func Parse(data []byte) (*Roster, error) {
	var r Roster
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parsing roster: %w", err)
	}
	if err := r.validate(); err != nil {
		return nil, err
	}
	return &r, nil
}

// Load loads and parses a roster from a file.
func Load(path string) (*Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return Parse(data)
}

// validate checks the version, name uniqueness, and device kinds.
func (r *Roster) validate() error {
	if r.Version != 1 {
		return fmt.Errorf("%w: %d", ErrUnsupportedVersion, r.Version)
	}

	seen := make(map[string]bool, len(r.Devices))
	for _, def := range r.Devices {
		if def.Name == "" {
			return fmt.Errorf("device definition missing name")
		}
		if seen[def.Name] {
			return fmt.Errorf("%w: %q", ErrDuplicateName, def.Name)
		}
		seen[def.Name] = true

		switch def.Kind {
		case device.KindTV, device.KindRadio:
		default:
			return fmt.Errorf("%w: %q (device %q)", ErrUnknownKind, def.Kind, def.Name)
		}
	}
	return nil
}

// Build constructs the device for this definition and applies the declared
// initial state. The volume is stored verbatim.
func (d DeviceDef) Build() (device.Device, error) {
	var dev device.Device
	switch d.Kind {
	case device.KindTV:
		dev = device.NewTV()
	case device.KindRadio:
		dev = device.NewRadio()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, d.Kind)
	}

	dev.SetVolume(d.Volume)
	if d.Enabled {
		dev.Enable()
	}
	return dev, nil
}

// Build constructs all declared devices in declaration order.
func (r *Roster) Build() ([]Entry, error) {
	entries := make([]Entry, 0, len(r.Devices))
	for _, def := range r.Devices {
		dev, err := def.Build()
		if err != nil {
			return nil, fmt.Errorf("building device %q: %w", def.Name, err)
		}
		entries = append(entries, Entry{Name: def.Name, Device: dev})
	}
	return entries, nil
}
