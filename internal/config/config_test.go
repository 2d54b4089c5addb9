package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestDefaults(t *testing.T) {
	var cfg, err = Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Threads != 0 || cfg.Parallel || cfg.Server.Addr != ":8080" ||
		cfg.Arena.Games != 1000 || cfg.Arena.Concurrency != runtime.NumCPU() {
		t.Errorf("%+v", cfg)
	}
}

func TestFileAndEnv(t *testing.T) {
	var path = filepath.Join(t.TempDir(), "counterxo.yaml")
	var content = "threads: 4\nparallel: true\nserver:\n  addr: \":9090\"\narena:\n  games: 20\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("COUNTERXO_ARENA_GAMES", "30")
	var cfg, err = Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Threads != 4 || !cfg.Parallel || cfg.Server.Addr != ":9090" {
		t.Errorf("%+v", cfg)
	}
	if cfg.Arena.Games != 30 {
		t.Error("env must override file", cfg.Arena.Games)
	}
}

func TestInvalid(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file must fail")
	}
	t.Setenv("COUNTERXO_THREADS", "-1")
	if _, err := Load(""); err == nil {
		t.Error("negative threads must fail")
	}
}
