// scraper.go combines the client and parsers into the region → municipality walk.

package volby

import (
	"context"
	"fmt"
	"volby-scraper/internal/components/assert"
	"volby-scraper/internal/components/telemetry"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	report_scraper_region       = "scraper.region"
	report_scraper_municipality = "scraper.municipality"
	report_scraper_scraped      = "scraper.scraped"
)

// Scraper walks one region page and every municipality linked from it,
// strictly one request at a time.
type Scraper struct {
	client *Client
	tel    telemetry.API
}

func NewScraper(client *Client, tel telemetry.API) Scraper {
	assert.NotNil(client, "client")
	assert.NotNil(tel, "telemetry")

	return Scraper{
		client: client,
		tel:    tel,
	}
}

// Municipalities fetches a region page and lists its municipalities.
func (s Scraper) Municipalities(ctx context.Context, regionLink string) ([]Municipality, error) {
	ctx, span := tracer.Start(ctx, "Municipalities")
	defer span.End()

	doc, err := s.client.Fetch(ctx, regionLink)
	if err != nil {
		span.SetStatus(codes.Error, "fetch region")
		return nil, err
	}

	municipalities, err := ParseRegion(doc, regionLink)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "parse region")
		s.tel.ReportBroken(report_scraper_region, err, regionLink)
		return nil, err
	}
	span.SetAttributes(attribute.Int("municipalities", len(municipalities)))
	s.tel.ReportDebug(report_scraper_region, regionLink, len(municipalities))

	return municipalities, nil
}

// Municipality fetches and parses one municipality detail page.
func (s Scraper) Municipality(ctx context.Context, m Municipality) (Result, error) {
	ctx, span := tracer.Start(ctx, "Municipality", trace.WithAttributes(
		attribute.String("code", m.Code),
		attribute.String("name", m.Name),
	))
	defer span.End()

	doc, err := s.client.Fetch(ctx, m.Link)
	if err != nil {
		span.SetStatus(codes.Error, "fetch municipality")
		return Result{}, fmt.Errorf("municipality %s (%s): %w", m.Code, m.Name, err)
	}

	result, err := ParseMunicipality(doc, m, s.tel)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "parse municipality")
		s.tel.ReportBroken(report_scraper_municipality, err, m.Code, m.Link)
		return Result{}, fmt.Errorf("municipality %s (%s): %w", m.Code, m.Name, err)
	}
	scrapedCounter.Add(ctx, 1)

	return result, nil
}

// Scrape returns one result per municipality of the region in page order.
// Any failure discards everything scraped so far.
func (s Scraper) Scrape(ctx context.Context, regionLink string) ([]Result, error) {
	ctx, span := tracer.Start(ctx, "Scrape", trace.WithAttributes(
		attribute.String("region", regionLink),
	))
	defer span.End()

	municipalities, err := s.Municipalities(ctx, regionLink)
	if err != nil {
		return nil, err
	}
	if len(municipalities) == 0 {
		span.SetStatus(codes.Error, "empty region")
		s.tel.ReportBroken(report_scraper_region, ErrNoMunicipalities, regionLink)
		return nil, ErrNoMunicipalities
	}

	results := make([]Result, 0, len(municipalities))
	for i, m := range municipalities {
		s.tel.ReportDebug(report_scraper_municipality, i+1, len(municipalities), m.Code, m.Name)

		result, err := s.Municipality(ctx, m)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	s.tel.ReportCount(report_scraper_scraped, int64(len(results)))

	return results, nil
}
