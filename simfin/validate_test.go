package simfin

import (
	"errors"
	"slices"
	"testing"
)

func TestTickerRule(t *testing.T) {
	tests := []struct {
		ticker string
		want   bool
	}{
		{"AAPL", true},
		{"GOOGL", true},
		{"BRK1", true},
		{"ab", true},
		{"ABCDEFGHIJ", true},
		{"A", false},
		{"", false},
		{"ABCDEFGHIJK", false},
		{"BRK.B", false},
		{"BRK-B", false},
		{"AA PL", false},
		{"ÄPPL", false},
	}

	for _, tt := range tests {
		t.Run(tt.ticker, func(t *testing.T) {
			if got := TickerRule.Check(tt.ticker); got != tt.want {
				t.Errorf("TickerRule.Check(%q) = %v, want %v", tt.ticker, got, tt.want)
			}
		})
	}

	if TickerRule.Check(123) {
		t.Error("TickerRule.Check(123) = true, want false for non-string")
	}
}

func TestPeriodTypeRule(t *testing.T) {
	valid := []string{
		"Q1", "Q2", "Q3", "Q4", "H1", "H2", "9M", "FY",
		"TTM", "TTM-1", "TTM-12", "TTM-1.25", "TTM-2.5", "TTM-3.50", "TTM-4.75", "TTM-1.0",
	}
	invalid := []string{
		"", "Q5", "fy", "H3", "6M", "TTM-", "TTM-123", "TTM-1.3", "TTM-1.", "TTM1", "xTTM", "TTM-1.255",
	}

	for _, p := range valid {
		if !PeriodTypeRule.Check(p) {
			t.Errorf("PeriodTypeRule.Check(%q) = false, want true", p)
		}
	}
	for _, p := range invalid {
		if PeriodTypeRule.Check(p) {
			t.Errorf("PeriodTypeRule.Check(%q) = true, want false", p)
		}
	}
}

func TestStatementTypeRule(t *testing.T) {
	for _, s := range []string{"pl", "bs", "cf"} {
		if !StatementTypeRule.Check(s) {
			t.Errorf("StatementTypeRule.Check(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"", "PL", "is", "pnl", "cashflow"} {
		if StatementTypeRule.Check(s) {
			t.Errorf("StatementTypeRule.Check(%q) = true, want false", s)
		}
	}
}

func TestFiscalYearRule(t *testing.T) {
	tests := []struct {
		year any
		want bool
	}{
		{1900, true},
		{2018, true},
		{2000, true},
		{1899, false},
		{2019, false},
		{0, false},
		{-2017, false},
		{int64(2017), true},
		{2017.0, true},
		{2017.5, false},
		{"2017", false},
	}

	for _, tt := range tests {
		if got := FiscalYearRule.Check(tt.year); got != tt.want {
			t.Errorf("FiscalYearRule.Check(%#v) = %v, want %v", tt.year, got, tt.want)
		}
	}
}

func TestIndicatorsRule(t *testing.T) {
	tests := []struct {
		name       string
		indicators any
		want       bool
	}{
		{"single", []string{"1-1"}, true},
		{"several", []string{"0-1", "4-12", "2-99"}, true},
		{"empty list", []string{}, true},
		{"category out of range", []string{"5-1"}, false},
		{"index too long", []string{"1-100"}, false},
		{"missing index", []string{"1-"}, false},
		{"one bad entry", []string{"1-1", "x"}, false},
		{"not a list", "1-1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IndicatorsRule.Check(tt.indicators); got != tt.want {
				t.Errorf("IndicatorsRule.Check(%#v) = %v, want %v", tt.indicators, got, tt.want)
			}
		})
	}
}

func TestCompanyIDRule(t *testing.T) {
	if !CompanyIDRule.Check(int64(111052)) {
		t.Error("CompanyIDRule.Check(int64) = false, want true")
	}
	if !CompanyIDRule.Check(42) {
		t.Error("CompanyIDRule.Check(int) = false, want true")
	}
	if CompanyIDRule.Check("111052") {
		t.Error("CompanyIDRule.Check(string) = true, want false")
	}
	if CompanyIDRule.Check(1.5) {
		t.Error("CompanyIDRule.Check(1.5) = true, want false")
	}
}

func TestStatementSchema_ReportsAllViolations(t *testing.T) {
	args := Args{
		ParamCompanyID:     int64(111052),
		ParamStatementType: "xx",
		ParamPeriodType:    "Q9",
		ParamFiscalYear:    2030,
	}

	err := StatementSchema.Validate(args)
	if err == nil {
		t.Fatal("Validate() expected error, got nil")
	}

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error type = %T, want *ValidationError", err)
	}
	if !errors.Is(err, ErrInvalidParams) {
		t.Error("errors.Is(err, ErrInvalidParams) = false, want true")
	}

	want := []string{ParamStatementType, ParamPeriodType, ParamFiscalYear}
	if got := verr.Fields(); !slices.Equal(got, want) {
		t.Errorf("Fields() = %v, want %v", got, want)
	}
	if verr.Schema != "statement request" {
		t.Errorf("Schema = %q, want %q", verr.Schema, "statement request")
	}
}

func TestStatementSchema_MissingFields(t *testing.T) {
	err := StatementSchema.Validate(Args{ParamCompanyID: int64(1)})

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error type = %T, want *ValidationError", err)
	}
	for _, v := range verr.Violations {
		if v.Constraint != "is required" {
			t.Errorf("violation %q constraint = %q, want %q", v.Field, v.Constraint, "is required")
		}
	}
	if len(verr.Violations) != 3 {
		t.Errorf("len(Violations) = %d, want 3", len(verr.Violations))
	}
}

func TestTTMRatiosSchema_IndicatorsOptional(t *testing.T) {
	if err := TTMRatiosSchema.Validate(Args{ParamCompanyID: int64(7)}); err != nil {
		t.Errorf("Validate() without indicators returned error: %v", err)
	}
	if err := TTMRatiosSchema.Validate(Args{ParamCompanyID: int64(7), ParamIndicators: nil}); err != nil {
		t.Errorf("Validate() with nil indicators returned error: %v", err)
	}
	if err := TTMRatiosSchema.Validate(Args{ParamCompanyID: int64(7), ParamIndicators: []string{"9-9"}}); err == nil {
		t.Error("Validate() with bad indicator expected error, got nil")
	}
	if err := TTMRatiosSchema.Validate(Args{ParamIndicators: []string{"1-1"}}); err == nil {
		t.Error("Validate() without companyId expected error, got nil")
	}
}

func TestSchema_DoesNotMutateArgs(t *testing.T) {
	indicators := []string{"1-1", "bad"}
	args := Args{ParamCompanyID: int64(7), ParamIndicators: indicators}

	_ = TTMRatiosSchema.Validate(args)

	if len(args) != 2 {
		t.Errorf("len(args) = %d, want 2", len(args))
	}
	if !slices.Equal(indicators, []string{"1-1", "bad"}) {
		t.Errorf("indicators modified: %v", indicators)
	}
}

func TestValidationError_Error(t *testing.T) {
	err := TickerSchema.Validate(Args{ParamTicker: "A"})
	want := `invalid ticker lookup: ticker: must be an alphanumeric string of 2 to 10 characters (got "A")`
	if err == nil || err.Error() != want {
		t.Errorf("Error() = %v, want %q", err, want)
	}
}
