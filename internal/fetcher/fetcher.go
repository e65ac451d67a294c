package fetcher

import "context"

// Fetcher is a single unit of work run by the coordinator. Each fetcher
// issues one SimFin call and provides a key identifying its result.
type Fetcher interface {
	// Fetch performs the call and returns the decoded response.
	// Returns an error if validation or the request fails.
	Fetch(ctx context.Context) (any, error)

	// Key returns a hierarchical key for this fetcher.
	// Format: simfin:{operation}:{identifier}
	// Examples:
	//   - simfin:ticker:AAPL
	//   - simfin:company:111052
	//   - simfin:statement:111052:pl:FY:2017:standardised
	//   - simfin:ratios:111052
	Key() string
}
