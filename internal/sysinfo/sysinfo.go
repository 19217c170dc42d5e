package sysinfo

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/CristiGvl/corecheck/internal/clock"
	"github.com/CristiGvl/corecheck/internal/hwerr"
	"github.com/CristiGvl/corecheck/internal/osinfo"
	"github.com/CristiGvl/corecheck/internal/platform"
	"github.com/CristiGvl/corecheck/internal/processor"
)

// Service answers processor, clock and OS queries for the local host
type Service struct {
	processorReader processor.Reader
	clockReader     clock.Reader
	osReader        osinfo.Reader
	multiplier      int
}

// New creates a Service backed by the platform readers
func New(multiplier int) *Service {
	return NewWithReaders(processor.NewReader(), clock.NewReader(), osinfo.NewReader(), multiplier)
}

// NewWithReaders creates a Service with the given readers
func NewWithReaders(p processor.Reader, c clock.Reader, o osinfo.Reader, multiplier int) *Service {
	return &Service{
		processorReader: p,
		clockReader:     c,
		osReader:        o,
		multiplier:      multiplier,
	}
}

// Multiplier returns the multiplier used for base clock estimates
func (s *Service) Multiplier() int {
	return s.multiplier
}

// ProcessorIdentity returns brand, signature, architecture and counts
func (s *Service) ProcessorIdentity(ctx context.Context) (*processor.Identity, error) {
	id, err := s.processorReader.GetIdentity(ctx)
	if err != nil {
		logFailure("processor", err)
		return nil, err
	}
	return id, nil
}

// MaxClockMHz returns the rated maximum clock
func (s *Service) MaxClockMHz(ctx context.Context) (uint32, error) {
	mhz, err := s.clockReader.MaxMHz(ctx)
	if err != nil {
		logFailure("max clock", err)
		return 0, err
	}
	return mhz, nil
}

// BaseClockMHz estimates the base clock from max and multiplier
func (s *Service) BaseClockMHz(maxMHz, multiplier int) (float64, error) {
	return processor.BaseClock(maxMHz, multiplier)
}

// OSIdentity returns the OS version, or its labelled unknown state
func (s *Service) OSIdentity(ctx context.Context) osinfo.Identity {
	id := s.osReader.Identify(ctx)
	if !id.Known {
		log.WithField("query", "os").Debug("OS version unknown")
	}
	return id
}

// Report aggregates every query into one snapshot. Individual failures are
// recorded in the report rather than aborting it.
func (s *Service) Report(ctx context.Context) *Report {
	r := &Report{
		Timestamp: time.Now(),
		Platform:  platform.Describe(),
		Clock:     ClockReport{Multiplier: s.multiplier},
	}

	if id, err := s.ProcessorIdentity(ctx); err != nil {
		r.ProcessorError = errorInfo(err)
	} else {
		r.Processor = id
	}

	if mhz, err := s.MaxClockMHz(ctx); err != nil {
		r.Clock.Error = errorInfo(err)
	} else {
		r.Clock.MaxMHz = &mhz
		base, err := s.BaseClockMHz(int(mhz), s.multiplier)
		if err != nil {
			r.Clock.Error = errorInfo(err)
		} else {
			r.Clock.BaseMHz = &base
			r.Clock.Estimated = true
		}
	}

	r.OS = s.OSIdentity(ctx)
	return r
}

func errorInfo(err error) *ErrorInfo {
	return &ErrorInfo{Kind: hwerr.KindOf(err), Message: err.Error()}
}

func logFailure(query string, err error) {
	log.WithFields(log.Fields{
		"query": query,
		"kind":  hwerr.KindOf(err),
	}).WithError(err).Debug("query failed")
}
