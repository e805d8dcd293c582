package volby

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"
	"volby-scraper/internal/components/assert"
	"volby-scraper/internal/components/telemetry"
	"volby-scraper/lib/restyutil"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const (
	report_client_fetch = "client.fetch"
)

type ClientOptions struct {
	UserAgent string
	// 0 leaves the net/http default (no timeout)
	Timeout time.Duration
	// if set, every response is dumped here
	Dump restyutil.InstrumentOutput
}

// Client fetches and parses pages of the results site.
type Client struct {
	http *resty.Client
	tel  telemetry.API
}

func NewClient(opts ClientOptions, tel telemetry.API) *Client {
	assert.NotNil(tel, "telemetry")

	httpClient := resty.New()
	if opts.UserAgent != "" {
		httpClient.SetHeader("user-agent", opts.UserAgent)
	}
	if opts.Timeout > 0 {
		httpClient.SetTimeout(opts.Timeout)
	}

	telemetry.InstrumentResty(httpClient, tel)
	restyutil.DumpResponses(httpClient, opts.Dump)

	return &Client{
		http: httpClient,
		tel:  tel,
	}
}

// Fetch GETs `link` and parses the body as HTML, anything other than a 200
// response yields a *StatusError.
func (c *Client) Fetch(ctx context.Context, link string) (*goquery.Document, error) {
	ctx, span := tracer.Start(ctx, "Fetch", trace.WithAttributes(
		attribute.String("url", link),
	))
	defer span.End()

	start := time.Now()
	res, err := c.http.R().
		SetContext(ctx).
		Get(link)
	fetchDuration.Record(ctx, time.Since(start).Seconds(), metric.WithAttributes(
		attribute.Bool("ok", err == nil),
	))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "request failed")
		c.tel.ReportBroken(report_client_fetch, fmt.Errorf("fetch: %w", err), link)
		return nil, fmt.Errorf("fetch %s: %w", link, err)
	}

	span.SetAttributes(attribute.Int("status", res.StatusCode()))
	if res.StatusCode() != http.StatusOK {
		err := &StatusError{URL: link, StatusCode: res.StatusCode()}
		span.SetStatus(codes.Error, "unexpected status")
		c.tel.ReportBroken(report_client_fetch, err)
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "parse failed")
		c.tel.ReportBroken(report_client_fetch, fmt.Errorf("parse: %w", err), link)
		return nil, fmt.Errorf("parse %s: %w", link, err)
	}
	return doc, nil
}
