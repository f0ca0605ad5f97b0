package reporting

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Jishnu-21/Channel-Partner-Lead-Manager/internal/cache"
	"github.com/Jishnu-21/Channel-Partner-Lead-Manager/internal/leads"
	"github.com/Jishnu-21/Channel-Partner-Lead-Manager/internal/middleware"
)

// ErrFetchFailed marks a reporting request whose lead snapshot could not be
// loaded. The dashboard renders an empty state, never partial data.
var ErrFetchFailed = errors.New("failed to load lead data")

// LeadFetcher provides the full lead snapshot in one request-response call.
type LeadFetcher interface {
	FetchAll(ctx context.Context) ([]leads.Lead, error)
}

// Directory lists known channel partner codes for the overview card. The
// aggregation itself never consults it: series columns come from the data.
type Directory interface {
	ListCodes(ctx context.Context) ([]string, error)
}

type RangeQuery struct {
	Start   *time.Time
	End     *time.Time
	Partner string
}

type TimeseriesQuery struct {
	RangeQuery
	Dimension   string
	Granularity Granularity
}

type Overview struct {
	TotalLeads    int       `json:"total_leads"`
	TotalPartners int       `json:"total_partners"`
	TopSource     TopResult `json:"top_source"`
}

type PaymentSummary struct {
	TotalRevenue    float64 `json:"total_revenue"`
	PendingAmount   float64 `json:"pending_amount"`
	FullPayments    int     `json:"full_payments"`
	PartialPayments int     `json:"partial_payments"`
	NotDone         int     `json:"not_done"`
}

type Service struct {
	fetcher   LeadFetcher
	directory Directory
	cache     cache.Cache
	cacheTTL  time.Duration
}

func NewService(fetcher LeadFetcher, directory Directory, c cache.Cache, cacheTTL time.Duration) *Service {
	return &Service{
		fetcher:   fetcher,
		directory: directory,
		cache:     c,
		cacheTTL:  cacheTTL,
	}
}

var ErrInvalidDimension = errors.New("invalid dimension")

func dimensionFor(name string) (Dimension, error) {
	switch name {
	case "", "partner":
		return ByPartnerCode, nil
	case "source":
		return ByLeadSource, nil
	case "industry":
		return ByIndustry, nil
	}
	return nil, ErrInvalidDimension
}

// snapshot fetches and range-filters the lead collection. Every reporting
// call works on a fresh immutable snapshot; recomputation is cheap and
// idempotent, so nothing is incrementally updated.
func (s *Service) snapshot(ctx context.Context, q RangeQuery) ([]leads.Lead, error) {
	items, err := s.fetcher.FetchAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	items = FilterByDateRange(items, q.Start, q.End)
	items = FilterByPartner(items, q.Partner)
	return items, nil
}

func (s *Service) Timeseries(ctx context.Context, q TimeseriesQuery) (Series, error) {
	key := timeseriesCacheKey(q)
	if payload, ok, err := s.cache.Get(ctx, key); err == nil && ok {
		var cached Series
		if json.Unmarshal(payload, &cached) == nil {
			middleware.RecordReportCache(true)
			return cached, nil
		}
	}
	middleware.RecordReportCache(false)

	dim, err := dimensionFor(q.Dimension)
	if err != nil {
		return Series{}, err
	}

	items, err := s.snapshot(ctx, q.RangeQuery)
	if err != nil {
		return Series{}, err
	}

	// A partner restriction on the partner dimension pins the column set to
	// exactly that partner; otherwise columns are discovered from the data.
	var restrict []string
	if q.Partner != "" && (q.Dimension == "" || q.Dimension == "partner") {
		restrict = []string{q.Partner}
	}

	series := Aggregate(items, dim, q.Granularity, restrict)

	if payload, err := json.Marshal(series); err == nil {
		_ = s.cache.Set(ctx, key, payload, s.cacheTTL)
	}
	return series, nil
}

func (s *Service) TimeseriesCSV(ctx context.Context, q TimeseriesQuery) (string, error) {
	series, err := s.Timeseries(ctx, q)
	if err != nil {
		return "", err
	}
	return ToCSV(series), nil
}

func (s *Service) Top(ctx context.Context, field string, q RangeQuery) (TopResult, error) {
	dim, err := dimensionFor(field)
	if err != nil {
		return TopResult{}, err
	}

	items, err := s.snapshot(ctx, q)
	if err != nil {
		return TopResult{}, err
	}

	result, _ := TopCategory(items, dim)
	return result, nil
}

func (s *Service) Overview(ctx context.Context) (Overview, error) {
	items, err := s.fetcher.FetchAll(ctx)
	if err != nil {
		return Overview{}, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	codes, err := s.directory.ListCodes(ctx)
	if err != nil {
		return Overview{}, err
	}

	topSource, _ := TopCategory(items, ByLeadSource)

	return Overview{
		TotalLeads:    len(items),
		TotalPartners: len(codes),
		TopSource:     topSource,
	}, nil
}

// Payments sums the commercial fields of the filtered snapshot. Pending
// amount is fees minus received per lead: the dashboards assume
// received + pending reconciles to the total fee, but nothing enforces it at
// write time, so the difference is computed rather than trusted.
func (s *Service) Payments(ctx context.Context, q RangeQuery) (PaymentSummary, error) {
	key := paymentsCacheKey(q)
	if payload, ok, err := s.cache.Get(ctx, key); err == nil && ok {
		var cached PaymentSummary
		if json.Unmarshal(payload, &cached) == nil {
			middleware.RecordReportCache(true)
			return cached, nil
		}
	}
	middleware.RecordReportCache(false)

	items, err := s.snapshot(ctx, q)
	if err != nil {
		return PaymentSummary{}, err
	}

	var summary PaymentSummary
	for _, lead := range items {
		summary.TotalRevenue += lead.AmountReceived
		summary.PendingAmount += lead.TotalServiceFees - lead.AmountReceived
		switch lead.PaymentStatus {
		case leads.PaymentFullInAdvance:
			summary.FullPayments++
		case leads.PaymentPartial:
			summary.PartialPayments++
		case leads.PaymentNotDone:
			summary.NotDone++
		}
	}

	if payload, err := json.Marshal(summary); err == nil {
		_ = s.cache.Set(ctx, key, payload, s.cacheTTL)
	}
	return summary, nil
}

func timeseriesCacheKey(q TimeseriesQuery) string {
	return fmt.Sprintf("report:timeseries:%s:%s:%s:%s", q.Dimension, q.Granularity, rangeKey(q.RangeQuery), q.Partner)
}

func paymentsCacheKey(q RangeQuery) string {
	return fmt.Sprintf("report:payments:%s:%s", rangeKey(q), q.Partner)
}

func rangeKey(q RangeQuery) string {
	start, end := "", ""
	if q.Start != nil {
		start = q.Start.Format("2006-01-02")
	}
	if q.End != nil {
		end = q.End.Format("2006-01-02")
	}
	return start + ".." + end
}
