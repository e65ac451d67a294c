package simfin

import (
	"context"
	"fmt"
	"net/url"
)

// CompanyMatch is one entry of a company search or of the entity list.
type CompanyMatch struct {
	Name   string `json:"name" yaml:"name"`
	SimID  int64  `json:"simId" yaml:"simId"`
	Ticker string `json:"ticker" yaml:"ticker"`
}

// Company is the company object returned by the API, passed through as decoded.
type Company map[string]any

// StatementPeriod is one available statement in a StatementList.
type StatementPeriod struct {
	Period     string `json:"period" yaml:"period"`
	FYear      int    `json:"fyear" yaml:"fyear"`
	Calculated bool   `json:"calculated" yaml:"calculated"`
}

// StatementList lists the statements available for a company by type.
type StatementList struct {
	PL []StatementPeriod `json:"pl" yaml:"pl"`
	BS []StatementPeriod `json:"bs" yaml:"bs"`
	CF []StatementPeriod `json:"cf" yaml:"cf"`
}

func companyRoute(companyID int64) string {
	return fmt.Sprintf("companies/id/%d", companyID)
}

// FindByTicker looks up companies by ticker symbol.
func (c *Client) FindByTicker(ctx context.Context, ticker string) ([]CompanyMatch, error) {
	if err := TickerSchema.Validate(Args{ParamTicker: ticker}); err != nil {
		return nil, err
	}

	var matches []CompanyMatch
	if err := c.Get(ctx, "info/find-id/ticker/"+ticker, nil, &matches); err != nil {
		return nil, err
	}
	return matches, nil
}

// FindByName searches companies by free-text name. The name is path-escaped
// but otherwise sent as given.
func (c *Client) FindByName(ctx context.Context, name string) ([]CompanyMatch, error) {
	var matches []CompanyMatch
	if err := c.Get(ctx, "info/find-id/name-search/"+url.PathEscape(name), nil, &matches); err != nil {
		return nil, err
	}
	return matches, nil
}

// AllEntities lists every company known to the API.
func (c *Client) AllEntities(ctx context.Context) ([]CompanyMatch, error) {
	var entities []CompanyMatch
	if err := c.Get(ctx, "info/all-entities", nil, &entities); err != nil {
		return nil, err
	}
	return entities, nil
}

// Company fetches general information about a company.
func (c *Client) Company(ctx context.Context, companyID int64) (Company, error) {
	var company Company
	if err := c.Get(ctx, companyRoute(companyID), nil, &company); err != nil {
		return nil, err
	}
	return company, nil
}

// ListStatements lists the statements available for a company.
func (c *Client) ListStatements(ctx context.Context, companyID int64) (*StatementList, error) {
	var list StatementList
	if err := c.Get(ctx, companyRoute(companyID)+"/statements/list", nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}
