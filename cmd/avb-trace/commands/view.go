// Package commands implements the avb-trace CLI commands.
package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/avbridge/avbridge-go/pkg/trace"
)

// ViewFilter specifies criteria for filtering events in the view command.
type ViewFilter struct {
	Remote *trace.RemoteKind
	Op     *trace.Op
	Device string
}

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event trace.Event) {
	// Header line: timestamp [sess:id] REMOTE OPERATION
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")
	sess := shortenSessionID(event.SessionID)

	fmt.Fprintf(w, "%s [sess:%s] %-8s %s\n", ts, sess, event.Remote.String(), event.Op.String())

	if event.Device != "" {
		fmt.Fprintf(w, "  Device: %s\n", event.Device)
	}
	fmt.Fprintf(w, "  Power: %s  Volume: %d\n", powerLabel(event.PowerOn), event.Volume)

	fmt.Fprintln(w) // Blank line between events
}

// shortenSessionID returns the first 8 characters of the session ID.
func shortenSessionID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

// powerLabel renders a power state for display.
func powerLabel(on bool) string {
	if on {
		return "on"
	}
	return "off"
}

// filterEvents returns events matching the filter criteria.
func filterEvents(events []trace.Event, filter ViewFilter) []trace.Event {
	var result []trace.Event
	for _, e := range events {
		if filter.Remote != nil && e.Remote != *filter.Remote {
			continue
		}
		if filter.Op != nil && e.Op != *filter.Op {
			continue
		}
		if filter.Device != "" && e.Device != filter.Device {
			continue
		}
		result = append(result, e)
	}
	return result
}

// ParseRemoteFlag parses a remote kind string from command-line flag (case-insensitive).
func ParseRemoteFlag(s string) (trace.RemoteKind, error) {
	return parseRemote(s)
}

// parseRemote parses a remote kind string (case-insensitive).
func parseRemote(s string) (trace.RemoteKind, error) {
	switch strings.ToLower(s) {
	case "basic":
		return trace.RemoteBasic, nil
	case "advanced":
		return trace.RemoteAdvanced, nil
	default:
		return 0, fmt.Errorf("invalid remote kind: %s (must be basic or advanced)", s)
	}
}

// ParseOpFlag parses an operation string from command-line flag (case-insensitive).
func ParseOpFlag(s string) (trace.Op, error) {
	return parseOp(s)
}

// parseOp parses an operation string (case-insensitive).
func parseOp(s string) (trace.Op, error) {
	switch strings.ToLower(s) {
	case "toggle-power":
		return trace.OpTogglePower, nil
	case "volume-up":
		return trace.OpVolumeUp, nil
	case "volume-down":
		return trace.OpVolumeDown, nil
	case "mute":
		return trace.OpMute, nil
	default:
		return 0, fmt.Errorf("invalid op: %s (must be toggle-power, volume-up, volume-down, or mute)", s)
	}
}

// RunView executes the view command.
func RunView(path string, filter ViewFilter, output io.Writer) error {
	reader, err := trace.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open trace file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		// Apply filter
		if filter.Remote != nil && event.Remote != *filter.Remote {
			continue
		}
		if filter.Op != nil && event.Op != *filter.Op {
			continue
		}
		if filter.Device != "" && event.Device != filter.Device {
			continue
		}

		formatEvent(output, event)
	}

	return nil
}
