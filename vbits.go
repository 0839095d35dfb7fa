package vbits

import (
	"github.com/vuuvv/vbits/core"
	"github.com/vuuvv/vbits/framing"
	"github.com/vuuvv/vbits/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Bits = core.Bits
type Packet = core.Packet
type Literal = core.Literal
type Operator = core.Operator
type Operation = core.Operation

type Config = core.Config
type Report = core.Report
type Codec = core.Codec
type ScanResult = core.ScanResult

var NewBits = core.NewBits
var HexToBits = core.HexToBits
var ParseInput = core.ParseInput

var Decode = core.Decode
var DecodePacket = core.DecodePacket
var Evaluate = core.Evaluate
var SumVersions = core.SumVersions
var Encode = core.Encode
var Dump = core.Dump

var Analyze = core.Analyze
var NewConfigFromFile = core.NewConfigFromFile
var NewCodec = core.NewCodec
var NewCodecFromBytes = core.NewCodecFromBytes
var NewCodecFromFile = core.NewCodecFromFile

// Setup installs a development logger unless a global one is already configured
// and registers the framing rules.
func Setup() {
	var logger *zap.Logger
	var err error
	if !zap.L().Core().Enabled(zapcore.PanicLevel) {
		logger, err = zap.NewDevelopment()
		if err != nil {
			panic(err)
		}
	} else {
		logger = zap.L()
	}
	log.SetLogger(logger)
	log.SetDefaultLogger(logger)

	framing.Register()
}

// AnalyzeHex analyzes one transmission with the default configuration.
func AnalyzeHex(hex string) *Report {
	return core.Analyze(hex, nil)
}
