package modelclient

import (
	"strings"
	"testing"
	"time"
)

func TestBuildTimeContext(t *testing.T) {
	now := time.Date(2024, 3, 14, 10, 0, 0, 0, time.UTC) // Thursday
	context := buildTimeContext("UTC", now)

	for _, want := range []string{
		"SYSTEM CONTEXT",
		"Today: 2024-03-14 (Thursday)",
		"This week: 2024-03-11 to 2024-03-17",
		"This month: 2024-03-01 to 2024-03-31",
		"YYYY-MM-DD",
	} {
		if !strings.Contains(context, want) {
			t.Errorf("context should contain %q:\n%s", want, context)
		}
	}
}

func TestBuildTimeContext_Sunday(t *testing.T) {
	now := time.Date(2024, 3, 17, 10, 0, 0, 0, time.UTC)
	context := buildTimeContext("UTC", now)

	if !strings.Contains(context, "This week: 2024-03-11 to 2024-03-17") {
		t.Errorf("Sunday should close the week that started Monday:\n%s", context)
	}
}

func TestBuildTimeContext_InvalidTimezone(t *testing.T) {
	// Should fallback to UTC without crashing
	context := buildTimeContext("Invalid/Timezone", time.Now())

	if !strings.Contains(context, "SYSTEM CONTEXT") {
		t.Error("Should still generate context with invalid timezone")
	}
}
