package domain

import "testing"

func TestFormatHours(t *testing.T) {
	cases := []struct {
		hours float64
		want  string
	}{
		{0, "0h 0m"},
		{0.5, "0h 30m"},
		{2.25, "2h 15m"},
		{1.0083, "1h 0m"}, // 29.9s rounds away
		{3.9999, "4h 0m"}, // remainder rounds to a full hour
	}

	for _, c := range cases {
		if got := FormatHours(c.hours); got != c.want {
			t.Errorf("FormatHours(%v) = %q, want %q", c.hours, got, c.want)
		}
	}
}

func TestHandlingTimesForOperation(t *testing.T) {
	h := HandlingTimes{LoadingHours: 2, UnloadingHours: 1.5}
	if got := h.ForOperation(OperationLoading); got != 2 {
		t.Errorf("loading = %v, want 2", got)
	}
	if got := h.ForOperation(OperationUnloading); got != 1.5 {
		t.Errorf("unloading = %v, want 1.5", got)
	}
}

func TestParseOperationType(t *testing.T) {
	for _, in := range []string{"Loading", "loading", " LOADING "} {
		op, err := ParseOperationType(in)
		if err != nil || op != OperationLoading {
			t.Errorf("ParseOperationType(%q) = %v, %v", in, op, err)
		}
	}
	if _, err := ParseOperationType("shipping"); err == nil {
		t.Error("expected error for unknown operation type")
	}
}
