package core

import (
	"bufio"

	"github.com/vuuvv/errors"
	"gopkg.in/yaml.v3"
)

type FramingRuleMatchResult struct {
	Advance int
	Token   []byte
	Error   error
}

func NewFramingRuleMatchResult(advance int, token []byte) *FramingRuleMatchResult {
	return &FramingRuleMatchResult{
		Advance: advance,
		Token:   token,
	}
}

// WaitFramingRuleMatchResult asks the scanner for more data.
func WaitFramingRuleMatchResult() *FramingRuleMatchResult {
	return &FramingRuleMatchResult{}
}

func ErrorFramingRuleMatchResult(err error) *FramingRuleMatchResult {
	return &FramingRuleMatchResult{Error: err}
}

// FramingRule cuts a byte stream into transmissions, one token per transmission.
type FramingRule interface {
	Split(data []byte, atEOF bool) *FramingRuleMatchResult
	Setup() error
}

var FramingRuleDecoders = make(map[string]FramingRuleDecodeFunc)

type FramingRuleDecodeFunc func(yamlNode *yaml.Node) (FramingRule, error)

func RegisterFramingRuleDecoderFactory[T any](name string) {
	fn := func(yamlNode *yaml.Node) (FramingRule, error) {
		var rule T
		if yamlNode != nil && !yamlNode.IsZero() {
			err := yamlNode.Decode(&rule)
			if err != nil {
				return nil, errors.WithStack(err)
			}
		}
		if ret, ok := CastTo[FramingRule](&rule); ok {
			return ret, ret.Setup()
		}
		return nil, errors.Errorf("Framing rule type [%s] not match: %T", name, rule)
	}
	FramingRuleDecoders[name] = fn
}

func FramingRuleDecode(name string, yamlNode *yaml.Node) (FramingRule, error) {
	if fn, ok := FramingRuleDecoders[name]; ok {
		return fn(yamlNode)
	}
	return nil, errors.Errorf("Framing Decoder not found %s", name)
}

// SplitFunc adapts a rule to bufio.Scanner.
func SplitFunc(rule FramingRule) bufio.SplitFunc {
	return func(data []byte, atEOF bool) (advance int, token []byte, err error) {
		if len(data) == 0 {
			return 0, nil, nil
		}
		res := rule.Split(data, atEOF)
		if res == nil {
			return 0, nil, nil
		}
		return res.Advance, res.Token, res.Error
	}
}
