package hal_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/gogpu/gpu/hal"
)

func TestErrZeroArea(t *testing.T) {
	if hal.ErrZeroArea == nil {
		t.Fatal("ErrZeroArea should not be nil")
	}
	msg := hal.ErrZeroArea.Error()
	if !strings.Contains(msg, "width") && !strings.Contains(msg, "height") {
		t.Errorf("ErrZeroArea message should mention dimensions: %s", msg)
	}
}

func TestSentinelErrorsAreComparable(t *testing.T) {
	sentinels := []error{
		hal.ErrBackendNotFound,
		hal.ErrAllocationFailed,
		hal.ErrCompilationFailed,
		hal.ErrUnsupportedFormat,
		hal.ErrUnsupportedComposition,
		hal.ErrUnsupportedPresentMode,
		hal.ErrInvalidUsage,
		hal.ErrIncompatibleShaderFormat,
		hal.ErrDeviceLost,
		hal.ErrZeroArea,
	}
	for _, want := range sentinels {
		wrapped := fmt.Errorf("creating resource: %w", want)
		if !errors.Is(wrapped, want) {
			t.Errorf("errors.Is did not find %v in wrapped error", want)
		}
	}
}

func TestSentinelErrorsAreDistinct(t *testing.T) {
	if errors.Is(hal.ErrBackendNotFound, hal.ErrDeviceLost) {
		t.Error("distinct sentinel errors should not satisfy errors.Is against each other")
	}
}
