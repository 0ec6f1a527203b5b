package configs

import "time"

// Publish configures the publish orchestrator. Concurrency is the maximum
// number of ad sets published in parallel within one run; 1 keeps the run
// fully sequential. AdapterTimeout bounds each individual platform API call.
type Publish struct {
	Concurrency    int           `env:"CONCURRENCY" envDefault:"1"`
	AdapterTimeout time.Duration `env:"ADAPTER_TIMEOUT" envDefault:"30s"`
}
