package core

import (
	"os"

	"github.com/vuuvv/errors"
	"gopkg.in/yaml.v3"
)

const DefaultFramingType = "line"

type Check struct {
	Name      string `yaml:"name"`
	Expr      string `yaml:"expr"`
	evaluator *CelEvaluator
}

type FramingConfig struct {
	Type        string    `yaml:"type"`
	FramingRule yaml.Node `yaml:"framing_rule"`
}

type Config struct {
	Decoder           DecoderConfig `yaml:"decoder"`
	Framing           FramingConfig `yaml:"framing"`
	History           int           `yaml:"history"`
	Checks            []*Check      `yaml:"checks"`
	ParsedFramingRule FramingRule   `yaml:"-"`
}

func DefaultConfig() *Config {
	return &Config{History: 10}
}

func NewConfigFromBytes(configBytes []byte) (*Config, error) {
	config := DefaultConfig()
	err := yaml.Unmarshal(configBytes, config)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return config, nil
}

func NewConfigFromFile(configFile string) (*Config, error) {
	f, err := os.Open(configFile)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer func() {
		_ = f.Close()
	}()
	config := DefaultConfig()
	err = yaml.NewDecoder(f).Decode(config)
	if err != nil {
		return nil, errors.Wrapf(err, "decode config %s", configFile)
	}
	return config, nil
}

// Setup compiles the checks. The framing rule is only resolved when one is
// registered under the configured type, otherwise the codec falls back to plain lines.
func (this *Config) Setup() error {
	if this.History <= 0 {
		this.History = 1
	}
	for i, check := range this.Checks {
		if check.Name == "" {
			return errors.Errorf("check #%d has no name", i)
		}
		evaluator, err := CompileExpression(check.Expr)
		if err != nil {
			return errors.Wrapf(err, "check '%s' compile failed", check.Name)
		}
		check.evaluator = evaluator
	}

	typ := this.Framing.Type
	if typ == "" {
		typ = DefaultFramingType
	}
	if _, ok := FramingRuleDecoders[typ]; !ok {
		if this.Framing.Type != "" {
			return errors.Errorf("framing type '%s' not registered", this.Framing.Type)
		}
		return nil
	}
	rule, err := FramingRuleDecode(typ, &this.Framing.FramingRule)
	if err != nil {
		return errors.WithStack(err)
	}
	this.ParsedFramingRule = rule
	return nil
}
