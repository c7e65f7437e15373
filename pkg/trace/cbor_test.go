package trace

import (
	"testing"
	"time"
)

func TestEventCBORRoundTrip(t *testing.T) {
	ts := time.Date(2026, 3, 14, 10, 15, 32, 123456789, time.UTC)
	original := Event{
		Timestamp: ts,
		SessionID: "abc12345-def6-7890-abcd-ef1234567890",
		Remote:    RemoteAdvanced,
		Op:        OpVolumeUp,
		Device:    "tv",
		PowerOn:   true,
		Volume:    20,
	}

	data, err := EncodeEvent(original)
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}

	decoded, err := DecodeEvent(data)
	if err != nil {
		t.Fatalf("DecodeEvent failed: %v", err)
	}

	// Compare fields
	if !decoded.Timestamp.Equal(original.Timestamp) {
		t.Errorf("Timestamp: got %v, want %v", decoded.Timestamp, original.Timestamp)
	}
	if decoded.SessionID != original.SessionID {
		t.Errorf("SessionID: got %q, want %q", decoded.SessionID, original.SessionID)
	}
	if decoded.Remote != original.Remote {
		t.Errorf("Remote: got %v, want %v", decoded.Remote, original.Remote)
	}
	if decoded.Op != original.Op {
		t.Errorf("Op: got %v, want %v", decoded.Op, original.Op)
	}
	if decoded.Device != original.Device {
		t.Errorf("Device: got %q, want %q", decoded.Device, original.Device)
	}
	if decoded.PowerOn != original.PowerOn {
		t.Errorf("PowerOn: got %v, want %v", decoded.PowerOn, original.PowerOn)
	}
	if decoded.Volume != original.Volume {
		t.Errorf("Volume: got %d, want %d", decoded.Volume, original.Volume)
	}
}

func TestEventCBORRoundTripNegativeVolume(t *testing.T) {
	// Volume is stored verbatim and may be negative
	original := Event{
		Timestamp: time.Now(),
		SessionID: "sess-1",
		Remote:    RemoteBasic,
		Op:        OpVolumeDown,
		Device:    "radio",
		PowerOn:   false,
		Volume:    -30,
	}

	data, err := EncodeEvent(original)
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}

	decoded, err := DecodeEvent(data)
	if err != nil {
		t.Fatalf("DecodeEvent failed: %v", err)
	}

	if decoded.Volume != -30 {
		t.Errorf("Volume: got %d, want -30", decoded.Volume)
	}
	if decoded.PowerOn {
		t.Error("PowerOn: got true, want false")
	}
}

func TestEventCBOROmitsEmptyDevice(t *testing.T) {
	event := Event{
		Timestamp: time.Now(),
		SessionID: "sess-1",
		Remote:    RemoteBasic,
		Op:        OpTogglePower,
		PowerOn:   true,
		Volume:    0,
	}

	data, err := EncodeEvent(event)
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}

	var rawMap map[uint64]any
	if err := traceDecMode.Unmarshal(data, &rawMap); err != nil {
		t.Fatalf("failed to decode as map: %v", err)
	}

	if _, ok := rawMap[5]; ok {
		t.Error("empty Device was encoded, expected key 5 to be omitted")
	}
}

func TestEventCBORUsesIntegerKeys(t *testing.T) {
	event := Event{
		Timestamp: time.Now(),
		SessionID: "sess-1",
		Remote:    RemoteBasic,
		Op:        OpTogglePower,
		PowerOn:   true,
		Volume:    10,
	}

	data, err := EncodeEvent(event)
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}

	// Decode to generic map and verify keys are integers
	var rawMap map[uint64]any
	if err := traceDecMode.Unmarshal(data, &rawMap); err != nil {
		t.Fatalf("failed to decode as map: %v", err)
	}

	// Should have integer keys 1, 2, 3, 4, 6, 7 (5 is the optional device label)
	expectedKeys := []uint64{1, 2, 3, 4, 6, 7}
	for _, key := range expectedKeys {
		if _, ok := rawMap[key]; !ok {
			t.Errorf("expected integer key %d not found in encoded data", key)
		}
	}

	// Verify no string keys
	var stringMap map[string]any
	if err := traceDecMode.Unmarshal(data, &stringMap); err == nil && len(stringMap) > 0 {
		t.Error("encoded data contains string keys, expected integer keys only")
	}
}
