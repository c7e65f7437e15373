package commands

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/avbridge/avbridge-go/pkg/trace"
)

func TestStatsCountsByOp(t *testing.T) {
	ts := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	events := []trace.Event{
		{Timestamp: ts, SessionID: "sess-1", Op: trace.OpTogglePower, PowerOn: true},
		{Timestamp: ts, SessionID: "sess-1", Op: trace.OpVolumeUp, PowerOn: true, Volume: 10},
		{Timestamp: ts, SessionID: "sess-1", Op: trace.OpVolumeUp, PowerOn: true, Volume: 20},
		{Timestamp: ts, SessionID: "sess-1", Op: trace.OpMute, PowerOn: true},
	}

	path := createTestTraceFile(t, events)

	var buf bytes.Buffer
	err := RunStats(path, &buf)
	if err != nil {
		t.Fatalf("RunStats failed: %v", err)
	}

	output := buf.String()

	// Check op counts
	if !strings.Contains(output, "TOGGLE_POWER:") {
		t.Error("expected TOGGLE_POWER op in output")
	}
	if !strings.Contains(output, "VOLUME_UP:") {
		t.Error("expected VOLUME_UP op in output")
	}
	if !strings.Contains(output, "MUTE:") {
		t.Error("expected MUTE op in output")
	}
}

func TestStatsCountsByRemote(t *testing.T) {
	ts := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	events := []trace.Event{
		{Timestamp: ts, SessionID: "sess-1", Remote: trace.RemoteBasic, Op: trace.OpTogglePower, PowerOn: true},
		{Timestamp: ts, SessionID: "sess-2", Remote: trace.RemoteAdvanced, Op: trace.OpMute, PowerOn: true},
	}

	path := createTestTraceFile(t, events)

	var buf bytes.Buffer
	err := RunStats(path, &buf)
	if err != nil {
		t.Fatalf("RunStats failed: %v", err)
	}

	output := buf.String()

	if !strings.Contains(output, "BASIC:") {
		t.Error("expected BASIC remote in output")
	}
	if !strings.Contains(output, "ADVANCED:") {
		t.Error("expected ADVANCED remote in output")
	}
}

func TestStatsCountsByDevice(t *testing.T) {
	ts := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	events := []trace.Event{
		{Timestamp: ts, SessionID: "sess-1", Op: trace.OpTogglePower, Device: "tv", PowerOn: true},
		{Timestamp: ts, SessionID: "sess-1", Op: trace.OpVolumeUp, Device: "tv", PowerOn: true, Volume: 10},
		{Timestamp: ts, SessionID: "sess-2", Op: trace.OpTogglePower, Device: "radio", PowerOn: true},
	}

	path := createTestTraceFile(t, events)

	var buf bytes.Buffer
	err := RunStats(path, &buf)
	if err != nil {
		t.Fatalf("RunStats failed: %v", err)
	}

	output := buf.String()

	if !strings.Contains(output, "Events by Device:") {
		t.Error("expected device section in output")
	}
	if !strings.Contains(output, "tv:") {
		t.Error("expected tv device in output")
	}
	if !strings.Contains(output, "radio:") {
		t.Error("expected radio device in output")
	}
}

func TestStatsCountsSessions(t *testing.T) {
	ts := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	events := []trace.Event{
		{Timestamp: ts, SessionID: "sess-aaaa-bbbb", Remote: trace.RemoteAdvanced, Op: trace.OpTogglePower, Device: "tv", PowerOn: true},
		{Timestamp: ts.Add(time.Second), SessionID: "sess-aaaa-bbbb", Remote: trace.RemoteAdvanced, Op: trace.OpVolumeUp, Device: "tv", PowerOn: true, Volume: 10},
		{Timestamp: ts, SessionID: "sess-cccc-dddd", Remote: trace.RemoteBasic, Op: trace.OpTogglePower, Device: "radio", PowerOn: true},
	}

	path := createTestTraceFile(t, events)

	var buf bytes.Buffer
	err := RunStats(path, &buf)
	if err != nil {
		t.Fatalf("RunStats failed: %v", err)
	}

	output := buf.String()

	// Check session count
	if !strings.Contains(output, "Sessions: 2") {
		t.Errorf("expected 2 sessions in output, got:\n%s", output)
	}

	// Check session details
	if !strings.Contains(output, "[sess-aaa") {
		t.Error("expected sess-aaaa session details")
	}
	if !strings.Contains(output, "Final: power=on volume=10") {
		t.Errorf("expected final state for sess-aaaa, got:\n%s", output)
	}
}

func TestStatsTotalEvents(t *testing.T) {
	ts := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	events := []trace.Event{
		{Timestamp: ts, SessionID: "sess-1", Op: trace.OpVolumeUp, PowerOn: true, Volume: 10},
		{Timestamp: ts, SessionID: "sess-1", Op: trace.OpVolumeUp, PowerOn: true, Volume: 20},
		{Timestamp: ts, SessionID: "sess-1", Op: trace.OpVolumeUp, PowerOn: true, Volume: 30},
	}

	path := createTestTraceFile(t, events)

	var buf bytes.Buffer
	err := RunStats(path, &buf)
	if err != nil {
		t.Fatalf("RunStats failed: %v", err)
	}

	output := buf.String()

	if !strings.Contains(output, "Total Events: 3") {
		t.Errorf("expected 3 total events in output, got:\n%s", output)
	}
}

func TestStatsTimeRange(t *testing.T) {
	start := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 14, 11, 0, 0, 0, time.UTC)
	events := []trace.Event{
		{Timestamp: start, SessionID: "sess-1", Op: trace.OpTogglePower, PowerOn: true},
		{Timestamp: end, SessionID: "sess-1", Op: trace.OpTogglePower},
	}

	path := createTestTraceFile(t, events)

	var buf bytes.Buffer
	err := RunStats(path, &buf)
	if err != nil {
		t.Fatalf("RunStats failed: %v", err)
	}

	output := buf.String()

	if !strings.Contains(output, "Duration:") {
		t.Error("expected Duration in output")
	}
	if !strings.Contains(output, "1h0m0s") {
		t.Errorf("expected 1h0m0s duration in output, got:\n%s", output)
	}
}
