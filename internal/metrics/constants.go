package metrics

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Business metric names
const (
	MetricNameProfilesCreated = "profiles_created_total"
	MetricNameItemsEquipped   = "items_equipped_total"
	MetricNameAutoEquips      = "auto_equips_total"
	MetricNameTokenExchanges  = "discord_token_exchanges_total"
)

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Business metric help text
const (
	HelpTextProfilesCreated = "Total number of profiles created"
	HelpTextItemsEquipped   = "Total number of items equipped, by slot"
	HelpTextAutoEquips      = "Total number of auto-equip runs"
	HelpTextTokenExchanges  = "Total number of Discord OAuth token exchanges, by outcome"
)

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelSlot    = "slot"
	LabelOutcome = "outcome"
)

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
