package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestResolveLogFilePathFallsBackToLogsDir(t *testing.T) {
	tmpDir := t.TempDir()
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("get wd failed: %v", err)
	}
	t.Cleanup(func() {
		_ = os.Chdir(oldWD)
	})
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("chdir failed: %v", err)
	}

	// Empty options land in ./logs/app.log and the directory exists
	// afterwards.
	got, err := resolveLogFilePath(Options{})
	if err != nil {
		t.Fatalf("resolve log path failed: %v", err)
	}
	if filepath.Base(got) != defaultLogFilename {
		t.Fatalf("filename want %s got %s", defaultLogFilename, filepath.Base(got))
	}
	if filepath.Base(filepath.Dir(got)) != defaultLogDirName {
		t.Fatalf("dir want %s got %s", defaultLogDirName, filepath.Base(filepath.Dir(got)))
	}
	if _, err := os.Stat(filepath.Dir(got)); err != nil {
		t.Fatalf("log dir should exist after resolve: %v", err)
	}
}

func TestReleaseModeWritesStructuredLines(t *testing.T) {
	tmpDir := t.TempDir()
	log := New("release", Options{
		Dir:      tmpDir,
		Filename: "api.log",
	})
	log.Sugar().Infow("order_placed", "order_id", 7)
	_ = log.Sync()

	content, err := os.ReadFile(filepath.Join(tmpDir, "api.log"))
	if err != nil {
		t.Fatalf("read log file failed: %v", err)
	}
	line := string(content)
	if !strings.Contains(line, "order_placed") || !strings.Contains(line, "order_id") {
		t.Fatalf("expected structured fields in log line, got: %s", line)
	}
}

func TestDebugModeStaysOnStdout(t *testing.T) {
	tmpDir := t.TempDir()
	log := New("debug", Options{
		Dir:      tmpDir,
		Filename: "debug.log",
	})
	log.Info("console-only")
	_ = log.Sync()

	if _, err := os.Stat(filepath.Join(tmpDir, "debug.log")); !os.IsNotExist(err) {
		t.Fatalf("debug mode must not create a log file")
	}
}

func TestInitInstallsGlobal(t *testing.T) {
	prev := L
	t.Cleanup(func() { L = prev })

	got := Init("debug", Options{})
	if got == nil || L != got {
		t.Fatalf("Init should install the returned logger as L")
	}
	if S() == nil || StdLogger() == nil {
		t.Fatalf("sugared and stdlib views must be usable after Init")
	}
}
