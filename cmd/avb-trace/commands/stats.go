package commands

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/avbridge/avbridge-go/pkg/trace"
)

// Stats holds aggregate statistics about a trace file.
type Stats struct {
	TotalEvents    int
	EventsByOp     map[trace.Op]int
	EventsByRemote map[trace.RemoteKind]int
	EventsByDevice map[string]int
	Sessions       map[string]*SessionStats
	TimeRange      struct {
		Start time.Time
		End   time.Time
	}
}

// SessionStats holds statistics for a single remote session.
type SessionStats struct {
	FirstSeen   time.Time
	LastSeen    time.Time
	Events      int
	Device      string
	Remote      trace.RemoteKind
	LastPowerOn bool
	LastVolume  int
}

// RunStats analyzes the trace file and prints statistics.
func RunStats(path string, w io.Writer) error {
	reader, err := trace.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open trace file: %w", err)
	}
	defer reader.Close()

	stats := &Stats{
		EventsByOp:     make(map[trace.Op]int),
		EventsByRemote: make(map[trace.RemoteKind]int),
		EventsByDevice: make(map[string]int),
		Sessions:       make(map[string]*SessionStats),
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		stats.TotalEvents++
		stats.EventsByOp[event.Op]++
		stats.EventsByRemote[event.Remote]++
		if event.Device != "" {
			stats.EventsByDevice[event.Device]++
		}

		// Track time range
		if stats.TimeRange.Start.IsZero() || event.Timestamp.Before(stats.TimeRange.Start) {
			stats.TimeRange.Start = event.Timestamp
		}
		if event.Timestamp.After(stats.TimeRange.End) {
			stats.TimeRange.End = event.Timestamp
		}

		// Track session stats
		sess, ok := stats.Sessions[event.SessionID]
		if !ok {
			sess = &SessionStats{
				FirstSeen: event.Timestamp,
				LastSeen:  event.Timestamp,
				Remote:    event.Remote,
			}
			stats.Sessions[event.SessionID] = sess
		}
		sess.Events++
		if event.Timestamp.After(sess.LastSeen) {
			sess.LastSeen = event.Timestamp
		}
		if event.Device != "" && sess.Device == "" {
			sess.Device = event.Device
		}

		// Events are appended in write order, so the last one carries the final state
		sess.LastPowerOn = event.PowerOn
		sess.LastVolume = event.Volume
	}

	printStats(w, stats)
	return nil
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintln(w, "=== Remote Trace Statistics ===")
	fmt.Fprintln(w)

	// Time range
	if stats.TotalEvents > 0 {
		fmt.Fprintf(w, "Time Range: %s to %s\n",
			stats.TimeRange.Start.Format(time.RFC3339),
			stats.TimeRange.End.Format(time.RFC3339))
		fmt.Fprintf(w, "Duration:   %s\n", stats.TimeRange.End.Sub(stats.TimeRange.Start).Round(time.Second))
		fmt.Fprintln(w)
	}

	// Total events
	fmt.Fprintf(w, "Total Events: %d\n", stats.TotalEvents)
	fmt.Fprintln(w)

	// Events by operation
	fmt.Fprintln(w, "Events by Operation:")
	for _, op := range []trace.Op{trace.OpTogglePower, trace.OpVolumeUp, trace.OpVolumeDown, trace.OpMute} {
		if count := stats.EventsByOp[op]; count > 0 {
			fmt.Fprintf(w, "  %-14s %d\n", op.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	// Events by remote kind
	fmt.Fprintln(w, "Events by Remote:")
	for _, kind := range []trace.RemoteKind{trace.RemoteBasic, trace.RemoteAdvanced} {
		if count := stats.EventsByRemote[kind]; count > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", kind.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	// Events by device label (only events that carry one)
	if len(stats.EventsByDevice) > 0 {
		fmt.Fprintln(w, "Events by Device:")
		devices := make([]string, 0, len(stats.EventsByDevice))
		for dev := range stats.EventsByDevice {
			devices = append(devices, dev)
		}
		sort.Strings(devices)
		for _, dev := range devices {
			fmt.Fprintf(w, "  %-12s %d\n", dev+":", stats.EventsByDevice[dev])
		}
		fmt.Fprintln(w)
	}

	// Sessions
	fmt.Fprintf(w, "Sessions: %d\n", len(stats.Sessions))
	if len(stats.Sessions) > 0 {
		// Sort by first seen time
		type sessInfo struct {
			id    string
			stats *SessionStats
		}
		sessions := make([]sessInfo, 0, len(stats.Sessions))
		for id, ss := range stats.Sessions {
			sessions = append(sessions, sessInfo{id, ss})
		}
		sort.Slice(sessions, func(i, j int) bool {
			return sessions[i].stats.FirstSeen.Before(sessions[j].stats.FirstSeen)
		})

		fmt.Fprintln(w, "")
		for _, s := range sessions {
			duration := s.stats.LastSeen.Sub(s.stats.FirstSeen).Round(time.Millisecond)
			shortID := s.id
			if len(shortID) > 8 {
				shortID = shortID[:8]
			}
			fmt.Fprintf(w, "  [%s] %s, %d events, duration %s\n", shortID, s.stats.Remote.String(), s.stats.Events, duration)
			if s.stats.Device != "" {
				fmt.Fprintf(w, "           Device: %s\n", s.stats.Device)
			}
			fmt.Fprintf(w, "           Final: power=%s volume=%d\n", powerLabel(s.stats.LastPowerOn), s.stats.LastVolume)
		}
	}
}
