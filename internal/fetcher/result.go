package fetcher

// Result represents the outcome of a fetch operation.
// It's designed to be sent through channels from worker goroutines
// to a coordinator that prints the results.
type Result struct {
	// Key identifies the fetcher that produced this result
	Key string

	// Value is the decoded API response
	Value any

	// Error contains any error that occurred during the fetch operation.
	// If Error is not nil, Value should be considered invalid.
	Error error
}
