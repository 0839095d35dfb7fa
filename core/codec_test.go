package core_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vuuvv/vbits/core"
	"github.com/vuuvv/vbits/framing"
)

const transmissions = `# example transmissions
D2FE28

  8A004A801A8002F478  
ZZ
9C0141080250320F1802104A08`

func newCodec(t *testing.T, config string) *core.Codec {
	t.Helper()
	framing.Register()
	codec, err := core.NewCodecFromBytes([]byte(config))
	if err != nil {
		t.Fatalf("codec: %v", err)
	}
	return codec
}

func TestCodecScan(t *testing.T) {
	codec := newCodec(t, "history: 10\n")

	var results []*core.ScanResult
	err := codec.Stream(strings.NewReader(transmissions)).Scan(func(result *core.ScanResult) error {
		results = append(results, result)
		return nil
	})
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(results) != 4 {
		t.Fatalf("results = %d", len(results))
	}

	lines := []int{2, 4, 5, 6}
	for i, r := range results {
		if r.Line != lines[i] {
			t.Fatalf("result %d: line %d, want %d", i, r.Line, lines[i])
		}
		if r.End.Before(r.Start) {
			t.Fatalf("result %d: end before start", i)
		}
	}
	if results[0].Report.Value != 2021 || results[1].Report.Versions != 16 || results[3].Report.Value != 1 {
		t.Fatalf("unexpected reports: %+v %+v %+v", results[0].Report, results[1].Report, results[3].Report)
	}
	if !errors.Is(results[2].Report.Err, core.ErrInvalidHexChar) {
		t.Fatalf("expected ErrInvalidHexChar, got %v", results[2].Report.Err)
	}
}

func TestCodecDefaultFraming(t *testing.T) {
	framing.Register()
	var results []*core.ScanResult
	err := core.NewCodec().Stream(strings.NewReader("# header\nD2FE28\n\n")).Scan(func(result *core.ScanResult) error {
		results = append(results, result)
		return nil
	})
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(results) != 1 || results[0].Line != 2 || results[0].Report.Err != nil || results[0].Report.Value != 2021 {
		t.Fatalf("unexpected results: %+v", results)
	}
}

func TestCodecCommentPrefix(t *testing.T) {
	codec := newCodec(t, "framing:\n  type: line\n  framing_rule:\n    comment_prefix: \";\"\n")

	count := 0
	err := codec.Stream(strings.NewReader("; note\nD2FE28\n# not a comment here\n")).Scan(func(result *core.ScanResult) error {
		count++
		return nil
	})
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if count != 2 {
		t.Fatalf("count = %d", count)
	}
}

func TestCodecHistory(t *testing.T) {
	codec := newCodec(t, "history: 2\n")
	err := codec.Stream(strings.NewReader(transmissions)).Scan(func(result *core.ScanResult) error {
		return nil
	})
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	histories := codec.Histories()
	if len(histories) != 2 || histories[0].Line != 5 || histories[1].Line != 6 {
		t.Fatalf("unexpected history: %+v", histories)
	}
}

func TestCodecHandlerFailures(t *testing.T) {
	codec := newCodec(t, "")
	err := codec.Stream(strings.NewReader(transmissions)).Scan(func(result *core.ScanResult) error {
		switch result.Line {
		case 2:
			panic("handler exploded")
		case 4:
			return errors.New("handler failed")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	histories := codec.Histories()
	if len(histories) != 4 {
		t.Fatalf("histories = %d", len(histories))
	}
	if histories[0].HandleError == nil || !strings.Contains(histories[0].HandleError.Error(), "handler exploded") {
		t.Fatalf("panic not captured: %v", histories[0].HandleError)
	}
	if histories[1].HandleError == nil || histories[3].HandleError != nil {
		t.Fatalf("unexpected handler errors: %v %v", histories[1].HandleError, histories[3].HandleError)
	}
}

func TestCodecScanFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(path, []byte("C200B40A82\r\n04005AC33890\r\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	codec := newCodec(t, "")
	var values []uint64
	err := codec.ScanFile(path, func(result *core.ScanResult) error {
		values = append(values, result.Report.Value)
		return nil
	})
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(values) != 2 || values[0] != 3 || values[1] != 54 {
		t.Fatalf("values = %v", values)
	}

	if err := codec.ScanFile(filepath.Join(t.TempDir(), "missing"), nil); err == nil {
		t.Fatalf("expected an open error")
	}
	if err := core.NewCodec().Scan(nil); err == nil {
		t.Fatalf("expected an error without a stream")
	}
}

func TestCodecLineTooLong(t *testing.T) {
	codec := newCodec(t, "framing:\n  framing_rule:\n    max_len: 8\n")
	err := codec.Stream(strings.NewReader("D2FE28\n8A004A801A8002F478\n")).Scan(func(result *core.ScanResult) error {
		return nil
	})
	if err == nil {
		t.Fatalf("expected a max length error")
	}
}
