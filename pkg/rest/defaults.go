package rest

/**
 * Parameters
 */

// error types reported in metrics
const (
	ErrorTypeUnknownModel = "unknown_model"
	ErrorTypeDecode       = "decode"
	ErrorTypeNonFinite    = "non_finite"
)

// path of the Prometheus exposition endpoint
const MetricsPath = "/metrics"
