package simfin

import (
	"slices"
	"testing"
)

func TestFinancialIndicators(t *testing.T) {
	catalog := FinancialIndicators()

	if len(catalog) != 80 {
		t.Errorf("len(FinancialIndicators()) = %d, want 80", len(catalog))
	}

	for code, desc := range catalog {
		if !indicatorPattern.MatchString(code) {
			t.Errorf("code %q does not match the indicator pattern", code)
		}
		if desc == "" {
			t.Errorf("code %q has an empty description", code)
		}
	}

	if got := catalog["1-1"]; got != "Revenues" {
		t.Errorf("catalog[1-1] = %q, want Revenues", got)
	}
}

func TestFinancialIndicators_ReturnsCopy(t *testing.T) {
	catalog := FinancialIndicators()
	catalog["1-1"] = "changed"
	delete(catalog, "4-16")

	fresh := FinancialIndicators()
	if fresh["1-1"] != "Revenues" {
		t.Errorf("catalog[1-1] = %q after caller mutation", fresh["1-1"])
	}
	if _, ok := fresh["4-16"]; !ok {
		t.Error("catalog lost 4-16 after caller mutation")
	}
}

func TestStatementTypes(t *testing.T) {
	want := []string{"pl", "bs", "cf"}
	if got := StatementTypes(); !slices.Equal(got, want) {
		t.Errorf("StatementTypes() = %v, want %v", got, want)
	}
}

func TestPeriodTypes(t *testing.T) {
	got := PeriodTypes()
	want := []string{"Q1", "Q2", "Q3", "Q4", "H1", "H2", "9M", "FY", "TTM"}
	if !slices.Equal(got, want) {
		t.Errorf("PeriodTypes() = %v, want %v", got, want)
	}

	got[0] = "XX"
	if PeriodTypes()[0] != "Q1" {
		t.Error("PeriodTypes() shares its backing array with callers")
	}

	for _, p := range got[1:] {
		if !PeriodTypeRule.Check(p) {
			t.Errorf("listed period type %q fails PeriodTypeRule", p)
		}
	}
}
