package api

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/CristiGvl/corecheck/internal/hwerr"
)

const queryTimeout = 10 * time.Second

// statusFor maps a query error to an HTTP status
func statusFor(err error) int {
	switch {
	case errors.Is(err, hwerr.ErrUnsupportedCapability):
		return fiber.StatusNotImplemented
	case errors.Is(err, hwerr.ErrQueryUnavailable):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}

func fail(c *fiber.Ctx, status int, err error) error {
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
		"kind":  hwerr.KindOf(err),
	})
}

// Processor endpoint
func (s *Server) getProcessor(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	info, err := s.service.ProcessorIdentity(ctx)
	if err != nil {
		return fail(c, statusFor(err), err)
	}

	return c.JSON(info)
}

// Max clock endpoint, with the base clock estimated from the configured multiplier
func (s *Server) getClock(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	mhz, err := s.service.MaxClockMHz(ctx)
	if err != nil {
		return fail(c, statusFor(err), err)
	}

	resp := fiber.Map{
		"max_mhz":    mhz,
		"multiplier": s.service.Multiplier(),
	}
	if base, err := s.service.BaseClockMHz(int(mhz), s.service.Multiplier()); err == nil {
		resp["base_mhz"] = base
		resp["estimated"] = true
	}

	return c.JSON(resp)
}

// Base clock calculator endpoint
func (s *Server) getBaseClock(c *fiber.Ctx) error {
	maxParam := c.Query("max")
	if maxParam == "" {
		return fail(c, fiber.StatusBadRequest, errors.New("missing max parameter"))
	}
	maxMHz, err := strconv.Atoi(maxParam)
	if err != nil || maxMHz < 0 {
		return fail(c, fiber.StatusBadRequest, fmt.Errorf("invalid max %q", maxParam))
	}

	multiplier := s.service.Multiplier()
	if m := c.Query("multiplier"); m != "" {
		multiplier, err = strconv.Atoi(m)
		if err != nil {
			return fail(c, fiber.StatusBadRequest, fmt.Errorf("invalid multiplier %q", m))
		}
	}

	base, err := s.service.BaseClockMHz(maxMHz, multiplier)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, err)
	}

	return c.JSON(fiber.Map{
		"max_mhz":    maxMHz,
		"multiplier": multiplier,
		"base_mhz":   base,
		"estimated":  true,
	})
}

// OS endpoint
func (s *Server) getOS(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	return c.JSON(s.service.OSIdentity(ctx))
}

// Full report endpoint
func (s *Server) getReport(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	return c.JSON(s.service.Report(ctx))
}
