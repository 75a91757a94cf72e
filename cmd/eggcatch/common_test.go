package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewLoggerClosesLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "eggcatch.log")

	logger, closeFn, err := newLogger("play", path, false)
	if err != nil {
		t.Fatalf("newLogger: %v", err)
	}
	logger.Info("round ended", "score", 25)

	if err := closeFn(); err != nil {
		t.Fatalf("first close: %v", err)
	}
	if err := closeFn(); !errors.Is(err, os.ErrClosed) {
		t.Errorf("second close = %v, want os.ErrClosed", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "round ended") {
		t.Errorf("log file = %q, want the logged message", data)
	}
}

func TestNewLoggerWithoutFile(t *testing.T) {
	for _, command := range []string{"play", "serve"} {
		logger, closeFn, err := newLogger(command, "", false)
		if err != nil {
			t.Fatalf("newLogger(%s): %v", command, err)
		}
		if logger == nil {
			t.Fatalf("newLogger(%s) returned a nil logger", command)
		}
		if err := closeFn(); err != nil {
			t.Errorf("close without a file = %v, want nil", err)
		}
	}
}

func TestModeFromArgs(t *testing.T) {
	tests := []struct {
		args    []string
		want    string
		wantErr bool
	}{
		{nil, "eggcatch", false},
		{[]string{"classic"}, "eggcatch", false},
		{[]string{"marathon"}, "eggcatch_marathon", false},
		{[]string{"eggcatch_marathon"}, "eggcatch_marathon", false},
		{[]string{"sprint"}, "", true},
	}
	for _, tt := range tests {
		mode, err := modeFromArgs(tt.args)
		if (err != nil) != tt.wantErr {
			t.Errorf("modeFromArgs(%v) error = %v", tt.args, err)
			continue
		}
		if !tt.wantErr && gameID(mode) != tt.want {
			t.Errorf("gameID(modeFromArgs(%v)) = %q, want %q", tt.args, gameID(mode), tt.want)
		}
	}
}
