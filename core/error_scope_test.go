package core

import "testing"

func TestErrorScopeCapturesFirstMatchingError(t *testing.T) {
	m := NewErrorScopeManager()
	m.PushErrorScope(ErrorFilterValidation)

	if !m.ReportError(ErrorFilterValidation, "first") {
		t.Fatal("matching error must be captured")
	}
	if !m.ReportError(ErrorFilterValidation, "second") {
		t.Fatal("later matching errors are still claimed by the scope")
	}

	captured, err := m.PopErrorScope()
	if err != nil {
		t.Fatalf("PopErrorScope: %v", err)
	}
	if captured == nil || captured.Message != "first" {
		t.Errorf("captured = %v, want the first reported error", captured)
	}
}

func TestErrorScopeFilterMismatchLeavesErrorUncaptured(t *testing.T) {
	m := NewErrorScopeManager()
	m.PushErrorScope(ErrorFilterValidation)
	defer func() { _, _ = m.PopErrorScope() }()

	if m.ReportError(ErrorFilterOutOfMemory, "oom") {
		t.Error("an out-of-memory error must not land in a validation scope")
	}
}

func TestErrorScopesAreLIFO(t *testing.T) {
	m := NewErrorScopeManager()
	m.PushErrorScope(ErrorFilterValidation)
	m.PushErrorScope(ErrorFilterValidation)

	m.ReportError(ErrorFilterValidation, "inner")

	inner, err := m.PopErrorScope()
	if err != nil || inner == nil || inner.Message != "inner" {
		t.Fatalf("inner scope = %v, %v; want the reported error", inner, err)
	}
	outer, err := m.PopErrorScope()
	if err != nil {
		t.Fatalf("PopErrorScope: %v", err)
	}
	if outer != nil {
		t.Errorf("outer scope captured %v, want nil (inner scope claimed it)", outer)
	}
}

func TestPopErrorScopeWithoutPush(t *testing.T) {
	m := NewErrorScopeManager()
	if _, err := m.PopErrorScope(); err == nil {
		t.Error("pop without matching push must report an error")
	}
}

func TestDeviceErrorScopeIntegration(t *testing.T) {
	d := newMockDevice()
	defer d.Destroy()

	d.PushErrorScope(ErrorFilterOutOfMemory)
	if !d.reportError(ErrorFilterOutOfMemory, "allocation failed") {
		t.Fatal("device-level report must reach the pushed scope")
	}
	captured := d.PopErrorScope()
	if captured == nil || captured.Type != ErrorFilterOutOfMemory {
		t.Errorf("PopErrorScope = %v, want the out-of-memory error", captured)
	}
}
