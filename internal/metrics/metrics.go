// Package metrics holds the prometheus collectors of the bot.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	TurnsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dramrate_turns_total",
			Help: "Total number of handled conversation turns",
		},
		[]string{"channel", "intent"},
	)

	TurnErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dramrate_turn_errors_total",
			Help: "Total number of failed conversation turns",
		},
		[]string{"kind"},
	)

	RateFetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "dramrate_rate_fetch_seconds",
			Help: "Duration of rate page fetches in seconds",
		},
		[]string{"mode"},
	)

	RateFetchErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dramrate_rate_fetch_errors_total",
			Help: "Total number of failed rate page fetches",
		},
	)

	SkippedRows = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dramrate_rate_rows_skipped_total",
			Help: "Rate table rows skipped because their cells did not match the expected layout",
		},
	)
)

// Mode label value for a cash/non-cash fetch
func Mode(nonCash bool) string {
	if nonCash {
		return "non_cash"
	}
	return "cash"
}
