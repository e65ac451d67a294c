package simfin

import (
	"context"
)

// StatementRequest selects one statement of a company.
type StatementRequest struct {
	CompanyID     int64
	StatementType string
	PeriodType    string
	FiscalYear    int
	// Standardised selects SimFin's standardised template instead of the
	// statement as originally reported.
	Standardised bool
}

// Statement is the statement payload as decoded from the API.
type Statement map[string]any

func (r StatementRequest) args() Args {
	return Args{
		ParamCompanyID:     r.CompanyID,
		ParamStatementType: r.StatementType,
		ParamPeriodType:    r.PeriodType,
		ParamFiscalYear:    r.FiscalYear,
	}
}

func (r StatementRequest) route() string {
	variant := "original"
	if r.Standardised {
		variant = "standardised"
	}
	return companyRoute(r.CompanyID) + "/statements/" + variant
}

func (r StatementRequest) params() Params {
	return Params{
		"stype": r.StatementType,
		"ptype": r.PeriodType,
		"fyear": r.FiscalYear,
	}
}

// Validate checks the request against StatementSchema.
func (r StatementRequest) Validate() error {
	return StatementSchema.Validate(r.args())
}

// NewStatementRequest builds the API request for r without sending it.
func (c *Client) NewStatementRequest(r StatementRequest) (Request, error) {
	if err := r.Validate(); err != nil {
		return Request{}, err
	}
	return c.NewRequest(r.route(), r.params()), nil
}

// StatementData fetches a single statement.
func (c *Client) StatementData(ctx context.Context, r StatementRequest) (Statement, error) {
	req, err := c.NewStatementRequest(r)
	if err != nil {
		return nil, err
	}

	var stmt Statement
	if err := c.Do(ctx, req, &stmt); err != nil {
		return nil, err
	}
	return stmt, nil
}
