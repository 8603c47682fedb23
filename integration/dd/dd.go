package dd

import (
	"log"

	"github.com/DataDog/datadog-go/statsd"

	"github.com/dyikot/randsource"
)

const drawMetricName = "randsource.draw"

// An interface reflecting the parts of statsd that we need, so we can mock it
type StatsdClient interface {
	Incr(string, []string, float64) error
}

// Statsd reports draw volume per distribution kind to DataDog. Draws can
// happen a lot, so counts are sampled.
func Statsd(stats StatsdClient) randsource.Option {
	return randsource.OnDraw(func(kind randsource.Kind) {
		stats.Incr(drawMetricName, []string{"kind:" + kind.String()}, 0.01)
	})
}

// StatsdAddr is Statsd with a client connected to addr.
func StatsdAddr(addr string) randsource.Option {
	stats, err := statsd.New(addr)
	if err != nil {
		log.Printf("randsource can't initialize statsd client: %s", err)
		return func(*randsource.Config) {}
	}
	return Statsd(stats)
}
