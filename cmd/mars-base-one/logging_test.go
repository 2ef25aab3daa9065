package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// inTempDir runs the test from a scratch directory so logs/ never lands in the package
func inTempDir(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Cleanup(func() { log.SetOutput(os.Stderr) })
}

func TestSetupLoggingDiscardsWithoutDebug(t *testing.T) {
	inTempDir(t)

	if f := setupLogging(false); f != nil {
		f.Close()
		t.Fatal("got a log file with debug off")
	}
	if log.Writer() != io.Discard {
		t.Errorf("writer = %v, want io.Discard", log.Writer())
	}
	if _, err := os.Stat(logDir); !os.IsNotExist(err) {
		t.Error("log dir created with debug off")
	}
}

func TestSetupLoggingWritesFile(t *testing.T) {
	inTempDir(t)

	f := setupLogging(true)
	if f == nil {
		t.Fatal("no log file with debug on")
	}
	defer f.Close()

	if w := log.Writer(); w == os.Stdout || w == os.Stderr {
		t.Fatal("logger writes to a terminal stream")
	}

	log.Printf("lander spawned")
	data, err := os.ReadFile(filepath.Join(logDir, logFileName))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	for _, want := range []string{"mars-base-one started", "lander spawned"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("log missing %q", want)
		}
	}
}

func TestSetupLoggingRotatesOversized(t *testing.T) {
	inTempDir(t)

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(logDir, logFileName)
	if err := os.WriteFile(path, make([]byte, maxLogSize+1), 0o644); err != nil {
		t.Fatal(err)
	}

	f := setupLogging(true)
	if f == nil {
		t.Fatal("no log file after rotation")
	}
	defer f.Close()

	entries, err := os.ReadDir(logDir)
	if err != nil {
		t.Fatal(err)
	}
	rotated := 0
	for _, e := range entries {
		if e.Name() != logFileName && strings.HasPrefix(e.Name(), "mars-base-one-") {
			rotated++
		}
	}
	if rotated != 1 {
		t.Errorf("rotated files = %d, want 1", rotated)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() > maxLogSize {
		t.Errorf("fresh log size = %d, want <= %d", info.Size(), maxLogSize)
	}
}
