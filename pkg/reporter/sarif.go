package reporter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"

	"github.com/yaklabco/prose/pkg/runner"
)

const (
	sarifVersion   = "2.1.0"
	sarifSchemaURI = "https://raw.githubusercontent.com/oasis-tcs/sarif-spec/master/Schemata/sarif-schema-2.1.0.json"
	sarifToolName  = "prose"
	sarifToolURI   = "https://github.com/yaklabco/prose"
)

// SARIFOutput represents the root SARIF document.
type SARIFOutput struct {
	Schema  string     `json:"$schema"`
	Version string     `json:"version"`
	Runs    []SARIFRun `json:"runs"`
}

// SARIFRun represents a single analysis run.
type SARIFRun struct {
	Tool        SARIFTool         `json:"tool"`
	Results     []SARIFResult     `json:"results"`
	Invocations []SARIFInvocation `json:"invocations,omitempty"`
}

// SARIFTool describes the analysis tool.
type SARIFTool struct {
	Driver SARIFDriver `json:"driver"`
}

// SARIFDriver contains tool metadata and rules.
type SARIFDriver struct {
	Name           string      `json:"name"`
	Version        string      `json:"version"`
	InformationURI string      `json:"informationUri"`
	Rules          []SARIFRule `json:"rules"`
}

// SARIFRule describes one grammar rule that failed somewhere in the run.
type SARIFRule struct {
	ID               string      `json:"id"`
	ShortDescription SARIFText   `json:"shortDescription"`
	DefaultConfig    SARIFConfig `json:"defaultConfiguration"`
}

// SARIFText holds a plain-text message.
type SARIFText struct {
	Text string `json:"text"`
}

// SARIFConfig contains rule configuration.
type SARIFConfig struct {
	Level string `json:"level"`
}

// SARIFResult is a single parse failure.
type SARIFResult struct {
	RuleID    string          `json:"ruleId"`
	RuleIndex int             `json:"ruleIndex"`
	Level     string          `json:"level"`
	Message   SARIFText       `json:"message"`
	Locations []SARIFLocation `json:"locations"`
}

// SARIFLocation describes a source location.
type SARIFLocation struct {
	PhysicalLocation SARIFPhysicalLocation `json:"physicalLocation"`
}

// SARIFPhysicalLocation contains file path and region.
type SARIFPhysicalLocation struct {
	ArtifactLocation SARIFArtifactLocation `json:"artifactLocation"`
	Region           *SARIFRegion          `json:"region,omitempty"`
}

// SARIFArtifactLocation contains the file URI.
type SARIFArtifactLocation struct {
	URI string `json:"uri"`
}

// SARIFRegion points at the failure.
type SARIFRegion struct {
	StartLine   int        `json:"startLine"`
	StartColumn int        `json:"startColumn"`
	Snippet     *SARIFText `json:"snippet,omitempty"`
}

// SARIFInvocation records files that could not be processed at all.
type SARIFInvocation struct {
	ExecutionSuccessful bool                `json:"executionSuccessful"`
	Notifications       []SARIFNotification `json:"toolExecutionNotifications,omitempty"`
}

// SARIFNotification is an I/O or render error for one file.
type SARIFNotification struct {
	Level     string          `json:"level"`
	Message   SARIFText       `json:"message"`
	Locations []SARIFLocation `json:"locations,omitempty"`
}

// SARIFReporter formats parse failures as SARIF 2.1.0.
type SARIFReporter struct {
	opts Options
	out  io.Writer
}

// NewSARIFReporter creates a new SARIF reporter.
func NewSARIFReporter(opts Options) *SARIFReporter {
	return &SARIFReporter{opts: opts, out: opts.Writer}
}

// Report implements Reporter.
func (r *SARIFReporter) Report(_ context.Context, result *runner.Result) (int, error) {
	output := r.buildOutput(result)

	encoder := json.NewEncoder(r.out)
	encoder.SetEscapeHTML(false)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode SARIF: %w", err)
	}

	run := output.Runs[0]
	reported := len(run.Results)
	if len(run.Invocations) > 0 {
		reported += len(run.Invocations[0].Notifications)
	}
	return reported, nil
}

func (r *SARIFReporter) buildOutput(result *runner.Result) *SARIFOutput {
	version := r.opts.ToolVersion
	if version == "" {
		version = "dev"
	}

	run := SARIFRun{
		Tool: SARIFTool{Driver: SARIFDriver{
			Name:           sarifToolName,
			Version:        version,
			InformationURI: sarifToolURI,
			Rules:          make([]SARIFRule, 0),
		}},
		Results: make([]SARIFResult, 0),
	}
	output := &SARIFOutput{Schema: sarifSchemaURI, Version: sarifVersion}

	if result == nil {
		output.Runs = []SARIFRun{run}
		return output
	}

	ruleIndex := make(map[string]int)
	var notifications []SARIFNotification

	for _, file := range result.Files {
		uri := filepath.ToSlash(DisplayPath(r.opts.WorkingDir, file.Path))

		switch {
		case file.ParseError != nil:
			id := string(file.ParseError.Rule)
			idx, seen := ruleIndex[id]
			if !seen {
				idx = len(run.Tool.Driver.Rules)
				ruleIndex[id] = idx
				run.Tool.Driver.Rules = append(run.Tool.Driver.Rules, SARIFRule{
					ID:               id,
					ShortDescription: SARIFText{Text: id},
					DefaultConfig:    SARIFConfig{Level: "error"},
				})
			}

			region := SARIFRegion{
				StartLine:   file.ParseError.Line,
				StartColumn: file.ParseError.Column,
			}
			if r.opts.ShowContext && file.SourceLine != "" {
				region.Snippet = &SARIFText{Text: file.SourceLine}
			}

			run.Results = append(run.Results, SARIFResult{
				RuleID:    id,
				RuleIndex: idx,
				Level:     "error",
				Message:   SARIFText{Text: file.ParseError.Error()},
				Locations: []SARIFLocation{{PhysicalLocation: SARIFPhysicalLocation{
					ArtifactLocation: SARIFArtifactLocation{URI: uri},
					Region:           &region,
				}}},
			})
		case file.Error != nil:
			notifications = append(notifications, SARIFNotification{
				Level:   "error",
				Message: SARIFText{Text: file.Error.Error()},
				Locations: []SARIFLocation{{PhysicalLocation: SARIFPhysicalLocation{
					ArtifactLocation: SARIFArtifactLocation{URI: uri},
				}}},
			})
		}
	}

	if len(notifications) > 0 {
		run.Invocations = []SARIFInvocation{{Notifications: notifications}}
	}

	output.Runs = []SARIFRun{run}
	return output
}
