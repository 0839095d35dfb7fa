package framing

import (
	"bytes"
	"fmt"

	"github.com/vuuvv/errors"
	"github.com/vuuvv/vbits/core"
)

const Line = "line"

const defaultMaxLen = 64 * 1024

// LineRule yields one transmission per delimited line. Surrounding whitespace is
// trimmed; blank lines and comment lines come through as empty tokens.
type LineRule struct {
	EndDelimiter  string `yaml:"end_delimiter"`
	CommentPrefix string `yaml:"comment_prefix"`
	MaxLen        int    `yaml:"max_len"`
}

func (this *LineRule) Setup() error {
	if this.EndDelimiter == "" {
		this.EndDelimiter = "\n"
	}
	if this.CommentPrefix == "" {
		this.CommentPrefix = "#"
	}
	if this.MaxLen == 0 {
		this.MaxLen = defaultMaxLen
	}
	if this.MaxLen < 0 {
		return errors.Errorf("LineRule.Setup: max_len should not be negative: %d", this.MaxLen)
	}
	return nil
}

func (this *LineRule) Split(data []byte, atEOF bool) *core.FramingRuleMatchResult {
	endDelimiter := []byte(this.EndDelimiter)
	idx := bytes.Index(data, endDelimiter)

	if idx >= 0 {
		if idx > this.MaxLen {
			return core.ErrorFramingRuleMatchResult(fmt.Errorf("line exceeds max length %d", this.MaxLen))
		}
		return core.NewFramingRuleMatchResult(idx+len(endDelimiter), this.token(data[:idx]))
	}

	if len(data) > this.MaxLen {
		return core.ErrorFramingRuleMatchResult(fmt.Errorf("line exceeds max length %d", this.MaxLen))
	}

	if atEOF {
		return core.NewFramingRuleMatchResult(len(data), this.token(data))
	}

	return core.WaitFramingRuleMatchResult()
}

func (this *LineRule) token(line []byte) []byte {
	line = bytes.TrimSpace(line)
	if len(line) == 0 || bytes.HasPrefix(line, []byte(this.CommentPrefix)) {
		return []byte{} // non-nil so the scanner still reports the line
	}
	return line
}

func registerLine() {
	core.RegisterFramingRuleDecoderFactory[LineRule](Line)
}
