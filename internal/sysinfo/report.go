package sysinfo

import (
	"time"

	"github.com/CristiGvl/corecheck/internal/osinfo"
	"github.com/CristiGvl/corecheck/internal/platform"
	"github.com/CristiGvl/corecheck/internal/processor"
)

// Report is a point-in-time snapshot of the host
type Report struct {
	Timestamp      time.Time           `json:"timestamp" yaml:"timestamp"`
	Processor      *processor.Identity `json:"processor,omitempty" yaml:"processor,omitempty"`
	ProcessorError *ErrorInfo          `json:"processor_error,omitempty" yaml:"processor_error,omitempty"`
	Clock          ClockReport         `json:"clock" yaml:"clock"`
	OS             osinfo.Identity     `json:"os" yaml:"os"`
	Platform       platform.Info       `json:"platform" yaml:"platform"`
}

// ClockReport holds the max clock reading and the derived base clock.
// BaseMHz is an estimate from Multiplier, never a measured value.
type ClockReport struct {
	MaxMHz     *uint32    `json:"max_mhz,omitempty" yaml:"max_mhz,omitempty"`
	BaseMHz    *float64   `json:"base_mhz,omitempty" yaml:"base_mhz,omitempty"`
	Multiplier int        `json:"multiplier" yaml:"multiplier"`
	Estimated  bool       `json:"estimated" yaml:"estimated"`
	Error      *ErrorInfo `json:"error,omitempty" yaml:"error,omitempty"`
}

// ErrorInfo describes a failed query
type ErrorInfo struct {
	Kind    string `json:"kind" yaml:"kind"`
	Message string `json:"message" yaml:"message"`
}
