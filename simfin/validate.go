package simfin

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// Parameter names as they appear in validation errors.
const (
	ParamTicker        = "ticker"
	ParamCompanyID     = "companyId"
	ParamIndicators    = "indicators"
	ParamStatementType = "statementType"
	ParamPeriodType    = "periodType"
	ParamFiscalYear    = "fiscalYear"
)

const (
	minFiscalYear = 1900
	maxFiscalYear = 2018
)

var (
	tickerPattern    = regexp.MustCompile(`^[A-Za-z0-9]{2,10}$`)
	indicatorPattern = regexp.MustCompile(`^[0-4]-\d{1,2}$`)
	ttmPattern       = regexp.MustCompile(`^TTM(-\d{1,2}(\.(0|25|5|50|75))?)?$`)
)

// ErrInvalidParams is matched by every *ValidationError via errors.Is.
var ErrInvalidParams = errors.New("invalid parameters")

// Violation describes one parameter that failed its constraint.
type Violation struct {
	Field      string
	Constraint string
	Value      any
}

func (v Violation) String() string {
	if v.Value == nil {
		return fmt.Sprintf("%s: %s", v.Field, v.Constraint)
	}
	return fmt.Sprintf("%s: %s (got %#v)", v.Field, v.Constraint, v.Value)
}

// ValidationError is returned before any request is made when arguments
// fail their schema.
type ValidationError struct {
	Schema     string
	Violations []Violation
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = v.String()
	}
	return fmt.Sprintf("invalid %s: %s", e.Schema, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidParams
}

// Fields reports the names of the offending parameters in schema order.
func (e *ValidationError) Fields() []string {
	fields := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		fields[i] = v.Field
	}
	return fields
}

// Rule is a single field constraint. Check reports whether value satisfies it.
type Rule struct {
	Constraint string
	Check      func(value any) bool
}

// Field binds a rule to a parameter name.
type Field struct {
	Name     string
	Required bool
	Rule     Rule
}

// Schema is a named, ordered set of field rules.
type Schema struct {
	Name   string
	Fields []Field
}

// Args holds the arguments of a single call keyed by parameter name.
// A missing key or a nil value counts as absent.
type Args map[string]any

// Validate checks args against every field of the schema and reports all
// violations at once. It never modifies args.
func (s Schema) Validate(args Args) error {
	var violations []Violation
	for _, f := range s.Fields {
		value, ok := args[f.Name]
		if !ok || value == nil {
			if f.Required {
				violations = append(violations, Violation{Field: f.Name, Constraint: "is required"})
			}
			continue
		}
		if !f.Rule.Check(value) {
			violations = append(violations, Violation{Field: f.Name, Constraint: f.Rule.Constraint, Value: value})
		}
	}

	if len(violations) > 0 {
		return &ValidationError{Schema: s.Name, Violations: violations}
	}
	return nil
}

// Field rules.
var (
	TickerRule = Rule{
		Constraint: "must be an alphanumeric string of 2 to 10 characters",
		Check: func(v any) bool {
			s, ok := v.(string)
			return ok && tickerPattern.MatchString(s)
		},
	}

	CompanyIDRule = Rule{
		Constraint: "must be an integer",
		Check: func(v any) bool {
			_, ok := asInt(v)
			return ok
		},
	}

	IndicatorsRule = Rule{
		Constraint: "must be a list of indicator codes like 1-1 or 4-12",
		Check: func(v any) bool {
			codes, ok := v.([]string)
			if !ok {
				return false
			}
			for _, c := range codes {
				if !indicatorPattern.MatchString(c) {
					return false
				}
			}
			return true
		},
	}

	StatementTypeRule = Rule{
		Constraint: "must be one of " + strings.Join(statementTypes, ", "),
		Check: func(v any) bool {
			s, ok := v.(string)
			return ok && slices.Contains(statementTypes, s)
		},
	}

	PeriodTypeRule = Rule{
		Constraint: "must be one of " + strings.Join(fixedPeriodTypes, ", ") + " or TTM[-N[.F]]",
		Check: func(v any) bool {
			s, ok := v.(string)
			return ok && (slices.Contains(fixedPeriodTypes, s) || ttmPattern.MatchString(s))
		},
	}

	FiscalYearRule = Rule{
		Constraint: fmt.Sprintf("must be an integer between %d and %d", minFiscalYear, maxFiscalYear),
		Check: func(v any) bool {
			n, ok := asInt(v)
			return ok && n >= minFiscalYear && n <= maxFiscalYear
		},
	}
)

// Composite schemas used by the client.
var (
	TickerSchema = Schema{
		Name: "ticker lookup",
		Fields: []Field{
			{Name: ParamTicker, Required: true, Rule: TickerRule},
		},
	}

	StatementSchema = Schema{
		Name: "statement request",
		Fields: []Field{
			{Name: ParamCompanyID, Required: true, Rule: CompanyIDRule},
			{Name: ParamStatementType, Required: true, Rule: StatementTypeRule},
			{Name: ParamPeriodType, Required: true, Rule: PeriodTypeRule},
			{Name: ParamFiscalYear, Required: true, Rule: FiscalYearRule},
		},
	}

	TTMRatiosSchema = Schema{
		Name: "ttm ratios request",
		Fields: []Field{
			{Name: ParamCompanyID, Required: true, Rule: CompanyIDRule},
			{Name: ParamIndicators, Rule: IndicatorsRule},
		},
	}
)

func asInt(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case float64:
		if n == float64(int64(n)) {
			return int64(n), true
		}
	}
	return 0, false
}
