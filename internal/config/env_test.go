package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestGetEnvFallback(t *testing.T) {
	t.Setenv("SHOOT_TEST_SET", "value")
	if got := GetEnv("SHOOT_TEST_SET", "fallback"); got != "value" {
		t.Fatalf("GetEnv set = %q, want %q", got, "value")
	}
	if got := GetEnv("SHOOT_TEST_UNSET_XYZ", "fallback"); got != "fallback" {
		t.Fatalf("GetEnv unset = %q, want %q", got, "fallback")
	}
}

func TestTypedGetters(t *testing.T) {
	t.Setenv("SHOOT_TEST_INT", "42")
	t.Setenv("SHOOT_TEST_DUR", "250ms")
	t.Setenv("SHOOT_TEST_BAD", "nope")

	if n, err := GetEnvInt("SHOOT_TEST_INT", 1); err != nil || n != 42 {
		t.Fatalf("GetEnvInt = %d, %v; want 42, nil", n, err)
	}
	if d, err := GetEnvDuration("SHOOT_TEST_DUR", time.Second); err != nil || d != 250*time.Millisecond {
		t.Fatalf("GetEnvDuration = %v, %v; want 250ms, nil", d, err)
	}

	n, err := GetEnvInt("SHOOT_TEST_BAD", 7)
	if !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("GetEnvInt bad err = %v, want ErrInvalidValue", err)
	}
	if n != 7 {
		t.Fatalf("GetEnvInt bad = %d, want fallback 7", n)
	}
	if d, err := GetEnvDuration("SHOOT_TEST_BAD", time.Minute); !errors.Is(err, ErrInvalidValue) || d != time.Minute {
		t.Fatalf("GetEnvDuration bad = %v, %v; want fallback 1m, ErrInvalidValue", d, err)
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("SHOOT_TEST_DOTENV=from-file\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SHOOT_TEST_DOTENV", "")
	os.Unsetenv("SHOOT_TEST_DOTENV")

	if err := LoadDotEnv(filepath.Join(dir, "missing.env"), path); err != nil {
		t.Fatalf("LoadDotEnv: %v", err)
	}
	if got := os.Getenv("SHOOT_TEST_DOTENV"); got != "from-file" {
		t.Fatalf("SHOOT_TEST_DOTENV = %q, want %q", got, "from-file")
	}
}

func TestLoadSettingsSeed(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("SHOOT_SEED", "")
	t.Setenv("GAME_RAND_SEED", "99")
	t.Setenv("SHOOT_LOG_LEVEL", "debug")
	t.Setenv("SSH_IDLE_TIMEOUT", "30s")

	s, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if s.Seed != 99 {
		t.Fatalf("Seed = %d, want 99", s.Seed)
	}
	if s.LogLevel != "debug" {
		t.Fatalf("LogLevel = %q, want debug", s.LogLevel)
	}
	if s.SSHIdleTimeout != 30*time.Second {
		t.Fatalf("SSHIdleTimeout = %v, want 30s", s.SSHIdleTimeout)
	}
}
