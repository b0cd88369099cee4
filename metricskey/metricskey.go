package metricskey

import "github.com/effective-security/metrics"

// Perf
var (
	// PerfKeyConversion is perf metric
	PerfKeyConversion = metrics.Describe{
		Type:         metrics.TypeSample,
		Name:         "perf_key_conversion",
		Help:         "perf_key_conversion provides the sample metrics of backend record conversions",
		RequiredTags: []string{"backend", "action"},
	}

	// PerfKeyRingLoad is perf metric
	PerfKeyRingLoad = metrics.Describe{
		Type:         metrics.TypeSample,
		Name:         "perf_keyring_load",
		Help:         "perf_keyring_load provides the sample metrics of keyring loading",
		RequiredTags: []string{"source"},
	}
)

// Metrics returns slice of metrics from this repo
var Metrics = []*metrics.Describe{
	&PerfKeyConversion,
	&PerfKeyRingLoad,
}
