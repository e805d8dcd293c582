package volby

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

var tracer = otel.Tracer("volby-scraper/internal/scrapers/volby")

var meter = otel.Meter("volby-scraper/internal/scrapers/volby")

var scrapedCounter, _ = meter.Int64Counter(
	"volby.municipalities_scraped",
	metric.WithDescription("municipality pages scraped successfully"),
)

var fetchDuration, _ = meter.Float64Histogram(
	"volby.fetch_duration",
	metric.WithDescription("duration of page fetches"),
	metric.WithUnit("s"),
)
