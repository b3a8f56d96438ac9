package core

import (
	"strings"
	"testing"
)

func TestLeakTrackerRecordsWhileEnabled(t *testing.T) {
	SetDebugMode(true)
	defer SetDebugMode(false)
	ResetLeakTracker()

	trackResource(1, "Buffer")
	trackResource(2, "Buffer")
	trackResource(3, "Texture")

	report := ReportLeaks()
	if report == nil {
		t.Fatal("ReportLeaks = nil with three live resources")
	}
	if report.Count != 3 {
		t.Errorf("Count = %d, want 3", report.Count)
	}
	if report.Types["Buffer"] != 2 || report.Types["Texture"] != 1 {
		t.Errorf("Types = %v, want Buffer=2 Texture=1", report.Types)
	}
	if !strings.Contains(report.String(), "Buffer=2") {
		t.Errorf("String() = %q, want it to name Buffer=2", report.String())
	}

	untrackResource(1)
	untrackResource(2)
	untrackResource(3)
	if ReportLeaks() != nil {
		t.Error("ReportLeaks must be nil once everything is released")
	}
}

func TestLeakTrackerIgnoresWhenDisabled(t *testing.T) {
	SetDebugMode(false)
	ResetLeakTracker()

	trackResource(7, "Sampler")
	SetDebugMode(true)
	defer SetDebugMode(false)
	if ReportLeaks() != nil {
		t.Error("resources tracked while disabled must not appear in the report")
	}
}

func TestResetLeakTrackerForgetsEverything(t *testing.T) {
	SetDebugMode(true)
	defer SetDebugMode(false)

	trackResource(9, "Fence")
	ResetLeakTracker()
	if ReportLeaks() != nil {
		t.Error("ReportLeaks after reset must be nil")
	}
}
