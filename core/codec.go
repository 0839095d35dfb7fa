package core

import (
	"bufio"
	"io"
	"os"
	"time"

	"github.com/vuuvv/errors"
	"github.com/vuuvv/vbits/log"
	"github.com/vuuvv/vbits/utils"
	"go.uber.org/zap"
)

type ScanResult struct {
	Line        int       `json:"line"`
	Report      *Report   `json:"report,omitempty"`
	HandleError error     `json:"-"`
	Start       time.Time `json:"start,omitempty"`
	End         time.Time `json:"end,omitempty"`
}

type ScanResultHandler func(result *ScanResult) error

// Codec reads transmissions from a stream and analyzes them one at a time.
type Codec struct {
	config  *Config
	stream  io.Reader
	history *utils.LockFreeCircularBuffer[ScanResult]
}

func NewCodec() *Codec {
	codec := &Codec{config: DefaultConfig()}
	codec.history = utils.NewLockFreeCircularBuffer[ScanResult](codec.config.History)
	return codec
}

func NewCodecFromBytes(configBytes []byte) (*Codec, error) {
	config, err := NewConfigFromBytes(configBytes)
	if err != nil {
		return nil, err
	}
	err = config.Setup()
	if err != nil {
		return nil, err
	}
	return NewCodec().Config(config), nil
}

func NewCodecFromFile(configFile string) (*Codec, error) {
	config, err := NewConfigFromFile(configFile)
	if err != nil {
		return nil, err
	}
	err = config.Setup()
	if err != nil {
		return nil, err
	}
	return NewCodec().Config(config), nil
}

func (this *Codec) Config(config *Config) *Codec {
	this.config = config
	this.history = utils.NewLockFreeCircularBuffer[ScanResult](config.History)
	return this
}

func (this *Codec) Stream(stream io.Reader) *Codec {
	this.stream = stream
	return this
}

// ScanFile reads transmissions from a file, "-" means stdin.
func (this *Codec) ScanFile(path string, fn ScanResultHandler) error {
	if path == "-" {
		return this.Stream(os.Stdin).Scan(fn)
	}
	f, err := os.Open(path)
	if err != nil {
		return errors.WithStack(err)
	}
	defer func() {
		_ = f.Close()
	}()
	return this.Stream(f).Scan(fn)
}

// Histories returns the most recent results, oldest first.
func (this *Codec) Histories() []*ScanResult {
	return this.history.GetAll()
}

// Analyze runs a single transmission through the configured decoder and checks.
func (this *Codec) Analyze(line string) *Report {
	return Analyze(line, this.config)
}

func (this *Codec) Scan(fn ScanResultHandler) error {
	if this.stream == nil {
		return errors.New("no stream to scan")
	}
	scanner := bufio.NewScanner(this.stream)
	scanner.Split(this.Splitter())

	line := 0
	for scanner.Scan() {
		line++
		token := scanner.Text()
		if token == "" {
			continue
		}
		result := &ScanResult{Line: line, Start: time.Now()}
		result.Report = this.Analyze(token)
		if result.Report.Err != nil {
			log.Warn(result.Report.Err, zap.Int("line", line), zap.String("id", result.Report.ID))
		} else {
			log.Debug("transmission decoded",
				zap.Int("line", line),
				zap.String("id", result.Report.ID),
				zap.Uint64("value", result.Report.Value),
				zap.Uint64("versions", result.Report.Versions),
			)
		}
		this.EmitResult(result, fn)
	}

	if err := scanner.Err(); err != nil {
		return errors.WithStack(err)
	}
	return nil
}

func (this *Codec) EmitResult(result *ScanResult, fn ScanResultHandler) {
	this.history.Add(result)
	defer func() {
		result.End = time.Now()
	}()
	defer utils.Catch(func(reason any) {
		result.HandleError = errors.New(ToString(reason))
	})
	// result is shared with the history, later changes are visible there
	err := fn(result)
	if err != nil {
		result.HandleError = err
	}
}

// Splitter uses the configured framing rule, then the registered default rule,
// then plain lines.
func (this *Codec) Splitter() bufio.SplitFunc {
	if this.config.ParsedFramingRule != nil {
		return SplitFunc(this.config.ParsedFramingRule)
	}
	if _, ok := FramingRuleDecoders[DefaultFramingType]; ok {
		rule, err := FramingRuleDecode(DefaultFramingType, nil)
		if err == nil {
			return SplitFunc(rule)
		}
		log.Warn(err, zap.String("framing", DefaultFramingType))
	}
	return bufio.ScanLines
}
