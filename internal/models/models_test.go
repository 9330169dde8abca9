package models

import (
	"testing"
	"time"
)

func TestPriorityOrderAndParse(t *testing.T) {
	if !(PriorityHigh.Rank() > PriorityMedium.Rank() && PriorityMedium.Rank() > PriorityLow.Rank()) {
		t.Error("Expected High > Medium > Low")
	}
	if Priority(0).Rank() != 0 {
		t.Errorf("Expected zero rank for invalid priority, got %d", Priority(0).Rank())
	}

	for _, p := range Priorities {
		got, err := ParsePriority(p.String())
		if err != nil || got != p {
			t.Errorf("Expected %s to parse back, got %v, %v", p, got, err)
		}
	}
	if _, err := ParsePriority("Urgent"); err == nil {
		t.Error("Expected error for unknown priority")
	}
}

func TestNextCycles(t *testing.T) {
	if PriorityHigh.Next() != PriorityLow || PriorityLow.Next() != PriorityMedium {
		t.Error("Expected priority to cycle Low -> Medium -> High -> Low")
	}
	if CategoryProject.Next() != CategoryStudy || CategoryStudy.Next() != CategoryHealth {
		t.Error("Expected category to cycle in display order")
	}
	if Category("x").Next() != CategoryStudy {
		t.Error("Expected unknown category to reset to Study")
	}
}

func TestToday(t *testing.T) {
	now := time.Date(2026, time.October, 14, 22, 15, 0, 0, time.Local)
	if got := Today(now); !got.Equal(Date(2026, time.October, 14)) {
		t.Errorf("Expected local midnight, got %v", got)
	}
}
