package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"debug", DebugLevel, false},
		{"INFO", InfoLevel, false},
		{"", InfoLevel, false},
		{"warning", WarnLevel, false},
		{"error", ErrorLevel, false},
		{"trace", InfoLevel, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseLevel(%q)=%v,%v", tt.in, got, err)
		}
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat("JSON"); err != nil || f != JSONFormat {
		t.Fatalf("ParseFormat(JSON)=%v,%v", f, err)
	}
	if f, err := ParseFormat("text"); err != nil || f != TextFormat {
		t.Fatalf("ParseFormat(text)=%v,%v", f, err)
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Fatal("expected error for xml")
	}
}

func TestJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, InfoLevel, JSONFormat).WithFields(Fields{"command": "scan"})
	log.Debug("hidden")
	log.Warn("transition below calibration limit", Fields{"ft": 0.001})
	log.Error(errors.New("boom"), "failed")
	if err := log.Sync(); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines: %q", len(lines), buf.String())
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatal(err)
	}
	if entry["level"] != "warn" || entry["command"] != "scan" || entry["ft"] != 0.001 {
		t.Fatalf("entry=%v", entry)
	}
	if err := json.Unmarshal([]byte(lines[1]), &entry); err != nil {
		t.Fatal(err)
	}
	if entry["error"] != "boom" {
		t.Fatalf("entry=%v", entry)
	}
}

func TestTextLogger(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, DebugLevel, TextFormat)
	log.Debug("segmentized", Fields{"segments": 58})
	if out := buf.String(); !strings.Contains(out, "DEBUG") || !strings.Contains(out, "segmentized") {
		t.Fatalf("output=%q", out)
	}
}

func TestNop(t *testing.T) {
	log := Nop()
	log.Info("nothing")
	log.WithFields(Fields{"a": 1}).Error(errors.New("x"), "nothing")
}

func TestLevelString(t *testing.T) {
	if WarnLevel.String() != "WARN" || Level(42).String() != "UNKNOWN" {
		t.Fatal("unexpected level names")
	}
}
