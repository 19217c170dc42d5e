package processor

import (
	"context"
	"errors"

	"github.com/CristiGvl/corecheck/internal/hwerr"
	"github.com/shirou/gopsutil/v3/cpu"
)

// logicalCount returns the number of processors the OS reports
func logicalCount(ctx context.Context) (int, error) {
	n, err := cpu.CountsWithContext(ctx, true)
	if err != nil {
		return 0, hwerr.Unavailable("processor count", err)
	}
	if n <= 0 {
		return 0, hwerr.Unavailable("processor count", errors.New("OS reported no processors"))
	}
	return n, nil
}
