package testutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCaptureOutput(t *testing.T) {
	output := CaptureOutput(t, func() error {
		fmt.Println("hello from the test")
		return nil
	})
	if !strings.Contains(output, "hello from the test") {
		t.Errorf("expected captured output, got %q", output)
	}
}

func TestCaptureOutputRestoresStdout(t *testing.T) {
	before := os.Stdout
	_ = CaptureOutput(t, func() error {
		return errors.New("command failed")
	})
	if os.Stdout != before {
		t.Error("stdout was not restored")
	}
}

func TestCaptureOutputEmpty(t *testing.T) {
	output := CaptureOutput(t, func() error { return nil })
	if output != "" {
		t.Errorf("expected empty output, got %q", output)
	}
}

func TestTempDir(t *testing.T) {
	var created string
	t.Run("create", func(t *testing.T) {
		created = TempDir(t)
		info, err := os.Stat(created)
		if err != nil {
			t.Fatalf("temp dir not created: %v", err)
		}
		if !info.IsDir() {
			t.Fatal("expected a directory")
		}
		if err := os.WriteFile(filepath.Join(created, "file.txt"), []byte("x"), 0o600); err != nil {
			t.Fatalf("temp dir not writable: %v", err)
		}
	})

	if _, err := os.Stat(created); !os.IsNotExist(err) {
		t.Errorf("temp dir %s should be removed after the subtest", created)
	}
}
