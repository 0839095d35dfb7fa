package core

import (
	"errors"
	"testing"
)

func TestAnalyze(t *testing.T) {
	cases := []struct {
		hex      string
		value    uint64
		versions uint64
		packets  int
		depth    int
		bits     int
		padding  int
	}{
		{"D2FE28", 2021, 6, 1, 1, 24, 3},
		{"8A004A801A8002F478", 15, 16, 4, 4, 72, 3},
		{"620080001611562C8802118E34", 46, 12, 7, 3, 104, 2},
		{"C0015000016115A2E0802F182340", 46, 23, 7, 3, 112, 6},
		{"A0016C880162017C3686B18A3D4780", 54, 31, 8, 4, 120, 7},
		{"9C0141080250320F1802104A08", 1, 20, 7, 3, 104, 2},
	}
	for _, c := range cases {
		r := Analyze(c.hex, nil)
		if r.Err != nil {
			t.Fatalf("%s: %v", c.hex, r.Err)
		}
		if r.Value != c.value || r.Versions != c.versions {
			t.Fatalf("%s: value=%d versions=%d", c.hex, r.Value, r.Versions)
		}
		if r.Stats.Packets != c.packets || r.Stats.MaxDepth != c.depth {
			t.Fatalf("%s: stats %+v", c.hex, r.Stats)
		}
		if r.Bits != c.bits || r.Padding != c.padding {
			t.Fatalf("%s: bits=%d padding=%d", c.hex, r.Bits, r.Padding)
		}
		if r.ID == "" || !r.OK() {
			t.Fatalf("%s: id=%q ok=%v", c.hex, r.ID, r.OK())
		}
	}
}

func TestAnalyzeFailures(t *testing.T) {
	r := Analyze("D2G", nil)
	if !errors.Is(r.Err, ErrInvalidHexChar) || r.Packet != nil || r.OK() || r.Error == "" {
		t.Fatalf("invalid hex: %+v", r)
	}

	r = Analyze("D2FE", nil)
	if !errors.Is(r.Err, ErrTruncatedInput) || r.Packet != nil {
		t.Fatalf("truncated: %+v", r)
	}

	// sum with an empty length window
	r = Analyze("200000", nil)
	if !errors.Is(r.Err, ErrArity) || r.Packet == nil || r.Versions != 1 {
		t.Fatalf("arity: %+v", r)
	}
}

func TestAnalyzeChecks(t *testing.T) {
	config, err := NewConfigFromBytes([]byte(`
checks:
  - name: value
    expr: value == 15
  - name: versions
    expr: versions > 20
  - name: root
    expr: op == 'min' && version == 4
  - name: missing
    expr: report.missing == 1
`))
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	if err := config.Setup(); err != nil {
		t.Fatalf("setup: %v", err)
	}

	r := Analyze("8A004A801A8002F478", config)
	if r.Err != nil {
		t.Fatalf("analyze: %v", r.Err)
	}
	if len(r.Checks) != 4 {
		t.Fatalf("checks = %d", len(r.Checks))
	}
	want := []bool{true, false, true, false}
	for i, c := range r.Checks {
		if c.Passed != want[i] {
			t.Fatalf("check %s: passed=%v error=%q", c.Name, c.Passed, c.Error)
		}
	}
	if r.Checks[3].Error == "" {
		t.Fatalf("expected an evaluation error for a missing key")
	}
	if r.OK() {
		t.Fatalf("report with failed checks is OK")
	}
}
