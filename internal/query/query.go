package query

import (
	"context"
	"fmt"
	"strings"

	"simfinclient/internal/config"
	"simfinclient/internal/fetcher"
	"simfinclient/simfin"
)

// TickerQuery looks up a company by ticker.
type TickerQuery struct {
	client *simfin.Client
	ticker string
}

// NewTickerQuery creates a ticker lookup
func NewTickerQuery(client *simfin.Client, ticker string) *TickerQuery {
	return &TickerQuery{client: client, ticker: ticker}
}

// Fetch implements fetcher.Fetcher
func (q *TickerQuery) Fetch(ctx context.Context) (any, error) {
	return q.client.FindByTicker(ctx, q.ticker)
}

// Key implements fetcher.Fetcher
func (q *TickerQuery) Key() string {
	return "simfin:ticker:" + q.ticker
}

// NameQuery searches companies by name.
type NameQuery struct {
	client *simfin.Client
	name   string
}

// NewNameQuery creates a name search
func NewNameQuery(client *simfin.Client, name string) *NameQuery {
	return &NameQuery{client: client, name: name}
}

// Fetch implements fetcher.Fetcher
func (q *NameQuery) Fetch(ctx context.Context) (any, error) {
	return q.client.FindByName(ctx, q.name)
}

// Key implements fetcher.Fetcher
func (q *NameQuery) Key() string {
	return "simfin:name:" + q.name
}

// CompanyQuery fetches general company information.
type CompanyQuery struct {
	client *simfin.Client
	id     int64
}

// NewCompanyQuery creates a company lookup by SimFin id
func NewCompanyQuery(client *simfin.Client, id int64) *CompanyQuery {
	return &CompanyQuery{client: client, id: id}
}

// Fetch implements fetcher.Fetcher
func (q *CompanyQuery) Fetch(ctx context.Context) (any, error) {
	return q.client.Company(ctx, q.id)
}

// Key implements fetcher.Fetcher
func (q *CompanyQuery) Key() string {
	return fmt.Sprintf("simfin:company:%d", q.id)
}

// StatementListQuery lists the statements available for a company.
type StatementListQuery struct {
	client *simfin.Client
	id     int64
}

// NewStatementListQuery creates a statement listing
func NewStatementListQuery(client *simfin.Client, id int64) *StatementListQuery {
	return &StatementListQuery{client: client, id: id}
}

// Fetch implements fetcher.Fetcher
func (q *StatementListQuery) Fetch(ctx context.Context) (any, error) {
	return q.client.ListStatements(ctx, q.id)
}

// Key implements fetcher.Fetcher
func (q *StatementListQuery) Key() string {
	return fmt.Sprintf("simfin:statements:%d", q.id)
}

// StatementQuery fetches one statement.
type StatementQuery struct {
	client *simfin.Client
	req    simfin.StatementRequest
}

// NewStatementQuery creates a statement fetch
func NewStatementQuery(client *simfin.Client, req simfin.StatementRequest) *StatementQuery {
	return &StatementQuery{client: client, req: req}
}

// Fetch implements fetcher.Fetcher
func (q *StatementQuery) Fetch(ctx context.Context) (any, error) {
	return q.client.StatementData(ctx, q.req)
}

// Key implements fetcher.Fetcher
func (q *StatementQuery) Key() string {
	variant := "original"
	if q.req.Standardised {
		variant = "standardised"
	}
	return fmt.Sprintf("simfin:statement:%d:%s:%s:%d:%s",
		q.req.CompanyID, q.req.StatementType, q.req.PeriodType, q.req.FiscalYear, variant)
}

// RatiosQuery fetches TTM ratios.
type RatiosQuery struct {
	client     *simfin.Client
	id         int64
	indicators []string
}

// NewRatiosQuery creates a TTM ratios fetch
func NewRatiosQuery(client *simfin.Client, id int64, indicators []string) *RatiosQuery {
	return &RatiosQuery{client: client, id: id, indicators: indicators}
}

// Fetch implements fetcher.Fetcher
func (q *RatiosQuery) Fetch(ctx context.Context) (any, error) {
	return q.client.TTMRatios(ctx, q.id, q.indicators...)
}

// Key implements fetcher.Fetcher
func (q *RatiosQuery) Key() string {
	if len(q.indicators) == 0 {
		return fmt.Sprintf("simfin:ratios:%d", q.id)
	}
	return fmt.Sprintf("simfin:ratios:%d:%s", q.id, strings.Join(q.indicators, ","))
}

// FromConfig builds one fetcher per configured item: tickers, names,
// company ids (company info and statement list), statements, then ratios.
func FromConfig(client *simfin.Client, cfg *config.Config) []fetcher.Fetcher {
	var fetchers []fetcher.Fetcher

	for _, ticker := range cfg.Tickers {
		fetchers = append(fetchers, NewTickerQuery(client, ticker))
	}
	for _, name := range cfg.Names {
		fetchers = append(fetchers, NewNameQuery(client, name))
	}
	for _, id := range cfg.CompanyIDs {
		fetchers = append(fetchers,
			NewCompanyQuery(client, id),
			NewStatementListQuery(client, id),
		)
	}
	for _, s := range cfg.Statements {
		fetchers = append(fetchers, NewStatementQuery(client, s.StatementRequest()))
	}
	for _, r := range cfg.Ratios {
		fetchers = append(fetchers, NewRatiosQuery(client, r.CompanyID, r.Indicators))
	}

	return fetchers
}
