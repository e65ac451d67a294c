package simfin

import (
	"context"
	"strings"
)

// Ratio is one trailing-twelve-month indicator value as decoded from the API.
type Ratio map[string]any

// NewTTMRatiosRequest builds the ratios request without sending it. With no
// indicators the API returns all of them.
func (c *Client) NewTTMRatiosRequest(companyID int64, indicators ...string) (Request, error) {
	args := Args{ParamCompanyID: companyID}
	if len(indicators) > 0 {
		args[ParamIndicators] = indicators
	}
	if err := TTMRatiosSchema.Validate(args); err != nil {
		return Request{}, err
	}

	var params Params
	if len(indicators) > 0 {
		params = Params{"indicators": strings.Join(indicators, ",")}
	}
	return c.NewRequest(companyRoute(companyID)+"/ratios", params), nil
}

// TTMRatios fetches trailing-twelve-month ratios for a company, optionally
// restricted to the given indicator codes.
func (c *Client) TTMRatios(ctx context.Context, companyID int64, indicators ...string) ([]Ratio, error) {
	req, err := c.NewTTMRatiosRequest(companyID, indicators...)
	if err != nil {
		return nil, err
	}

	var ratios []Ratio
	if err := c.Do(ctx, req, &ratios); err != nil {
		return nil, err
	}
	return ratios, nil
}
