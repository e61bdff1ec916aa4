package filedeps_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	filedeps "github.com/pfragkiad/filedeps"
)

func TestSlogSink_ReportsCodeAndDetails(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))
	sink := filedeps.NewSlogSink(logger)

	sink.Report(filedeps.SeverityError, filedeps.NewError("FileValidator.Exception", "it broke", "inner cause"))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output is not JSON: %v (%q)", err, buf.String())
	}
	if entry["code"] != "FileValidator.Exception" {
		t.Fatalf("code attr = %v", entry["code"])
	}
	if entry["msg"] != "it broke" {
		t.Fatalf("msg = %v", entry["msg"])
	}
	if entry["detail"] != "inner cause" {
		t.Fatalf("detail attr = %v", entry["detail"])
	}
	if entry["level"] != "ERROR" {
		t.Fatalf("level = %v, want ERROR", entry["level"])
	}
}

func TestSlogSink_SeverityMapping(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))
	sink := filedeps.NewSlogSink(logger)

	sink.Report(filedeps.SeverityCritical, filedeps.NewError("X.E", "bad"))
	if !bytes.Contains(buf.Bytes(), []byte("ERROR+4")) {
		t.Fatalf("critical severity should log above error, got %q", buf.String())
	}

	buf.Reset()
	sink.Report(filedeps.SeverityWarning, filedeps.NewError("X.E", "meh"))
	if !bytes.Contains(buf.Bytes(), []byte("WARN")) {
		t.Fatalf("warning severity should log at warn, got %q", buf.String())
	}
}

func TestSeverity_String(t *testing.T) {
	if filedeps.SeverityWarning.String() != "warning" ||
		filedeps.SeverityError.String() != "error" ||
		filedeps.SeverityCritical.String() != "critical" {
		t.Fatalf("unexpected severity names")
	}
}
