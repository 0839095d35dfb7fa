package core

import (
	"github.com/google/uuid"
)

type CheckResult struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
	Error  string `json:"error,omitempty"`
}

// Report is the outcome of one decode -> evaluate -> sum cycle over a transmission.
type Report struct {
	ID       string         `json:"id"`
	Input    string         `json:"input"`
	Bits     int            `json:"bits"`
	Packet   *Packet        `json:"-"`
	Value    uint64         `json:"value"`
	Versions uint64         `json:"versions"`
	Stats    TreeStats      `json:"stats"`
	Padding  int            `json:"padding"`
	Err      error          `json:"-"`
	Error    string         `json:"error,omitempty"`
	Checks   []*CheckResult `json:"checks,omitempty"`
}

// Analyze decodes one transmission line and evaluates it. A nil config means defaults.
// A decode failure leaves Packet nil; nothing is evaluated from a partial tree.
func Analyze(line string, config *Config) *Report {
	if config == nil {
		config = DefaultConfig()
	}
	report := &Report{ID: uuid.NewString(), Input: line}

	bits, err := ParseInput(line)
	if err != nil {
		return report.fail(err)
	}
	report.Bits = bits.Len()

	packet, rest, err := NewDecoder(config.Decoder).DecodeWithContext(NewContext(config.Decoder), bits)
	if err != nil {
		return report.fail(err)
	}
	report.Packet = packet
	report.Padding = rest.Len()
	report.Versions = SumVersions(packet)
	report.Stats = Stats(packet)

	report.Value, err = Evaluate(packet)
	if err != nil {
		return report.fail(err)
	}

	for _, check := range config.Checks {
		report.Checks = append(report.Checks, report.runCheck(check))
	}
	return report
}

func (r *Report) fail(err error) *Report {
	r.Err = err
	r.Error = err.Error()
	return r
}

// OK reports whether the transmission decoded, evaluated and passed every check.
func (r *Report) OK() bool {
	if r.Err != nil {
		return false
	}
	for _, c := range r.Checks {
		if !c.Passed {
			return false
		}
	}
	return true
}

// Vars exposes the report to check expressions.
func (r *Report) Vars() map[string]any {
	op := "literal"
	if r.Packet != nil {
		if o, ok := r.Packet.Operator(); ok {
			op = o.Op.String()
		}
	}
	var version int64
	if r.Packet != nil {
		version = int64(r.Packet.Version)
	}
	return map[string]any{
		"value":    ToNumber(r.Value),
		"versions": ToNumber(r.Versions),
		"packets":  int64(r.Stats.Packets),
		"depth":    int64(r.Stats.MaxDepth),
		"bits":     int64(r.Bits),
		"padding":  int64(r.Padding),
		"version":  version,
		"op":       op,
	}
}

func (r *Report) runCheck(check *Check) *CheckResult {
	res := &CheckResult{Name: check.Name}
	evaluator := check.evaluator
	if evaluator == nil {
		var err error
		if evaluator, err = CompileExpression(check.Expr); err != nil {
			res.Error = err.Error()
			return res
		}
	}
	passed, err := evaluator.ExecuteBool(r.Vars())
	if err != nil {
		res.Error = err.Error()
		return res
	}
	res.Passed = passed
	return res
}
