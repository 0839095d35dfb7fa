package core

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigFromBytes(t *testing.T) {
	config, err := NewConfigFromBytes([]byte(`
decoder:
  strict_padding: true
history: 3
checks:
  - name: positive
    expr: value > 0
`))
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	if !config.Decoder.StrictPadding || config.History != 3 || len(config.Checks) != 1 {
		t.Fatalf("unexpected config: %+v", config)
	}
	if err := config.Setup(); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if config.Checks[0].evaluator == nil {
		t.Fatalf("check not compiled")
	}
}

func TestConfigDefaults(t *testing.T) {
	config, err := NewConfigFromBytes([]byte(`decoder: {}`))
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	if config.History != 10 || config.Decoder.StrictPadding {
		t.Fatalf("unexpected defaults: %+v", config)
	}

	config.History = -1
	if err := config.Setup(); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if config.History != 1 {
		t.Fatalf("history = %d", config.History)
	}
}

func TestConfigSetupErrors(t *testing.T) {
	cases := map[string]string{
		"bad expression":  "checks:\n  - name: broken\n    expr: value ==\n",
		"missing name":    "checks:\n  - expr: value > 0\n",
		"unknown framing": "framing:\n  type: no-such-rule\n",
	}
	for name, text := range cases {
		t.Run(name, func(t *testing.T) {
			config, err := NewConfigFromBytes([]byte(text))
			if err != nil {
				t.Fatalf("config: %v", err)
			}
			if err := config.Setup(); err == nil {
				t.Fatalf("expected a setup error")
			}
		})
	}

	if _, err := NewConfigFromBytes([]byte("history: [")); err == nil {
		t.Fatalf("expected a yaml error")
	}
}

func TestConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vbits.yaml")
	if err := os.WriteFile(path, []byte("history: 5\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	config, err := NewConfigFromFile(path)
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	if config.History != 5 {
		t.Fatalf("history = %d", config.History)
	}
	if _, err := NewConfigFromFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected an open error")
	}
}
