package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("unexpected default port %q", cfg.Port)
	}
	if cfg.KVStoreType != "memory" {
		t.Fatalf("unexpected default store %q", cfg.KVStoreType)
	}
	if cfg.Env != "dev" {
		t.Fatalf("unexpected default env %q", cfg.Env)
	}
}

func TestNormalizeStoreType(t *testing.T) {
	cases := map[string]string{
		"file":     "file",
		"Redis":    "redis",
		"PG":       "postgres",
		"postgres": "postgres",
		"":         "memory",
		"bogus":    "memory",
	}
	for in, want := range cases {
		if got := normalizeStoreType(in); got != want {
			t.Errorf("normalizeStoreType(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNormalizeEnv(t *testing.T) {
	cases := map[string]string{
		"prod":       "production",
		"Production": "production",
		"staging":    "staging",
		"local":      "local",
		"whatever":   "dev",
	}
	for in, want := range cases {
		if got := normalizeEnv(in); got != want {
			t.Errorf("normalizeEnv(%q) = %q, want %q", in, got, want)
		}
	}
}
