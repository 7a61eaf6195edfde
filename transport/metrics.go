package transport

import (
	"github.com/VictoriaMetrics/metrics"
)

// --------------------------------------------------------------------------
// Transport Metrics
// --------------------------------------------------------------------------

// Counters for the blocking discipline. The async discipline registers its
// own set under transport="async".
var (
	metricConnects      = metrics.NewCounter(`kvwire_connects_total{transport="blocking"}`)
	metricConnectErrors = metrics.NewCounter(`kvwire_connect_errors_total{transport="blocking"}`)
	metricBytesWritten  = metrics.NewCounter(`kvwire_bytes_written_total{transport="blocking"}`)
	metricBytesRead     = metrics.NewCounter(`kvwire_bytes_read_total{transport="blocking"}`)
)
