package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vuuvv/errors"
	"github.com/vuuvv/vbits/core"
	"github.com/vuuvv/vbits/log"
	"go.uber.org/zap"
)

var (
	hexInput   string
	showTree   bool
	jsonOutput bool
)

var decodeCmd = &cobra.Command{
	Use:   "decode [file]",
	Short: "Decode transmissions, one per line (stdin when no file is given)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDecode,
}

func init() {
	decodeCmd.Flags().StringVar(&hexInput, "hex", "", "decode a single transmission given on the command line")
	decodeCmd.Flags().BoolVar(&showTree, "tree", false, "print the decoded packet tree")
	decodeCmd.Flags().BoolVar(&jsonOutput, "json", false, "print reports as JSON lines")
}

func runDecode(cmd *cobra.Command, args []string) error {
	config, err := loadConfig()
	if err != nil {
		return err
	}
	codec := core.NewCodec().Config(config)
	out := cmd.OutOrStdout()

	if hexInput != "" {
		report := codec.Analyze(hexInput)
		if err := printReport(out, 0, report); err != nil {
			return err
		}
		if !report.OK() {
			return errors.Errorf("transmission failed: %s", failure(report))
		}
		return nil
	}

	path := "-"
	if len(args) > 0 {
		path = args[0]
	}
	failed := 0
	err = codec.ScanFile(path, func(result *core.ScanResult) error {
		if !result.Report.OK() {
			failed++
		}
		return printReport(out, result.Line, result.Report)
	})
	if err != nil {
		return err
	}
	for _, h := range codec.Histories() {
		if h.HandleError != nil {
			log.Warn(h.HandleError, zap.Int("line", h.Line))
		}
	}
	if failed > 0 {
		return errors.Errorf("%d transmission(s) failed", failed)
	}
	return nil
}

func printReport(out io.Writer, line int, report *core.Report) error {
	if jsonOutput {
		return json.NewEncoder(out).Encode(struct {
			Line int `json:"line,omitempty"`
			*core.Report
		}{line, report})
	}

	var sb strings.Builder
	if line > 0 {
		fmt.Fprintf(&sb, "line %d: ", line)
	}
	if report.Err != nil && report.Packet == nil {
		fmt.Fprintf(&sb, "error: %s\n", report.Error)
		_, err := io.WriteString(out, sb.String())
		return err
	}
	if report.Err != nil {
		fmt.Fprintf(&sb, "versions=%d error: %s", report.Versions, report.Error)
	} else {
		fmt.Fprintf(&sb, "value=%d versions=%d", report.Value, report.Versions)
	}
	fmt.Fprintf(&sb, " packets=%d depth=%d padding=%d\n", report.Stats.Packets, report.Stats.MaxDepth, report.Padding)
	for _, c := range report.Checks {
		status := "ok"
		if !c.Passed {
			status = "FAILED"
		}
		if c.Error != "" {
			status = "error: " + c.Error
		}
		fmt.Fprintf(&sb, "  check %s: %s\n", c.Name, status)
	}
	if showTree {
		for _, l := range strings.Split(strings.TrimRight(core.Dump(report.Packet), "\n"), "\n") {
			sb.WriteString("  ")
			sb.WriteString(l)
			sb.WriteByte('\n')
		}
	}
	_, err := io.WriteString(out, sb.String())
	return err
}

func failure(report *core.Report) string {
	if report.Err != nil {
		return report.Error
	}
	var names []string
	for _, c := range report.Checks {
		if !c.Passed {
			names = append(names, c.Name)
		}
	}
	return "checks failed: " + strings.Join(names, ", ")
}
