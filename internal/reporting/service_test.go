package reporting

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/Jishnu-21/Channel-Partner-Lead-Manager/internal/cache"
	"github.com/Jishnu-21/Channel-Partner-Lead-Manager/internal/leads"
)

type stubFetcher struct {
	items []leads.Lead
	err   error
}

func (s *stubFetcher) FetchAll(ctx context.Context) ([]leads.Lead, error) {
	return s.items, s.err
}

type stubDirectory struct {
	codes []string
}

func (s *stubDirectory) ListCodes(ctx context.Context) ([]string, error) {
	return s.codes, nil
}

func newTestService(items []leads.Lead, fetchErr error) *Service {
	fetcher := &stubFetcher{items: items, err: fetchErr}
	directory := &stubDirectory{codes: []string{"CP1", "CP2", "CP3"}}
	return NewService(fetcher, directory, cache.NewNoop(), time.Minute)
}

func TestTimeseriesFetchFailure(t *testing.T) {
	svc := newTestService(nil, errors.New("connection reset"))

	_, err := svc.Timeseries(context.Background(), TimeseriesQuery{Granularity: Monthly})
	if !errors.Is(err, ErrFetchFailed) {
		t.Fatalf("expected ErrFetchFailed, got %v", err)
	}
}

func TestTimeseriesInvalidDimension(t *testing.T) {
	svc := newTestService(nil, nil)

	_, err := svc.Timeseries(context.Background(), TimeseriesQuery{Dimension: "color", Granularity: Daily})
	if !errors.Is(err, ErrInvalidDimension) {
		t.Fatalf("expected ErrInvalidDimension, got %v", err)
	}
}

func TestTimeseriesPartnerFilterPinsColumn(t *testing.T) {
	items := []leads.Lead{
		leadAt("CP1", time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)),
		leadAt("CP2", time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC)),
	}
	svc := newTestService(items, nil)

	q := TimeseriesQuery{Granularity: Monthly}
	q.Partner = "CP2"

	series, err := svc.Timeseries(context.Background(), q)
	if err != nil {
		t.Fatalf("Timeseries: %v", err)
	}
	if !reflect.DeepEqual(series.Columns, []string{"CP2"}) {
		t.Fatalf("columns = %v, want [CP2]", series.Columns)
	}
}

func TestTimeseriesPartnerFilterOnOtherDimension(t *testing.T) {
	items := []leads.Lead{
		{PartnerCode: "CP1", LeadSource: "Referral", CreatedAt: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)},
		{PartnerCode: "CP2", LeadSource: "Website", CreatedAt: time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC)},
	}
	svc := newTestService(items, nil)

	q := TimeseriesQuery{Dimension: "source", Granularity: Monthly}
	q.Partner = "CP1"

	series, err := svc.Timeseries(context.Background(), q)
	if err != nil {
		t.Fatalf("Timeseries: %v", err)
	}
	// The partner restriction filters the rows; source columns still come
	// from the surviving data.
	if !reflect.DeepEqual(series.Columns, []string{"Referral"}) {
		t.Fatalf("columns = %v, want [Referral]", series.Columns)
	}
}

func TestTimeseriesCSV(t *testing.T) {
	items := []leads.Lead{
		leadAt("CP1", time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)),
	}
	svc := newTestService(items, nil)

	body, err := svc.TimeseriesCSV(context.Background(), TimeseriesQuery{Granularity: Monthly})
	if err != nil {
		t.Fatalf("TimeseriesCSV: %v", err)
	}
	if body != "Date,CP1\n2024-01,1" {
		t.Fatalf("csv = %q", body)
	}
}

func TestOverview(t *testing.T) {
	items := []leads.Lead{
		{LeadSource: "Referral"},
		{LeadSource: "Referral"},
		{LeadSource: "Website"},
	}
	svc := newTestService(items, nil)

	overview, err := svc.Overview(context.Background())
	if err != nil {
		t.Fatalf("Overview: %v", err)
	}
	if overview.TotalLeads != 3 || overview.TotalPartners != 3 {
		t.Fatalf("totals = %+v", overview)
	}
	if overview.TopSource.Value != "Referral" || overview.TopSource.Count != 2 {
		t.Fatalf("top source = %+v", overview.TopSource)
	}
}

func TestOverviewEmptyCollection(t *testing.T) {
	svc := newTestService(nil, nil)

	overview, err := svc.Overview(context.Background())
	if err != nil {
		t.Fatalf("Overview: %v", err)
	}
	if overview.TopSource.Value != NoData {
		t.Fatalf("top source = %+v, want %s sentinel", overview.TopSource, NoData)
	}
}

func TestPayments(t *testing.T) {
	items := []leads.Lead{
		{TotalServiceFees: 100000, AmountReceived: 100000, PaymentStatus: leads.PaymentFullInAdvance},
		{TotalServiceFees: 200000, AmountReceived: 50000, PaymentStatus: leads.PaymentPartial},
		{TotalServiceFees: 80000, AmountReceived: 0, PaymentStatus: leads.PaymentNotDone},
	}
	svc := newTestService(items, nil)

	summary, err := svc.Payments(context.Background(), RangeQuery{})
	if err != nil {
		t.Fatalf("Payments: %v", err)
	}
	if summary.TotalRevenue != 150000 {
		t.Fatalf("revenue = %v, want 150000", summary.TotalRevenue)
	}
	if summary.PendingAmount != 230000 {
		t.Fatalf("pending = %v, want 230000", summary.PendingAmount)
	}
	if summary.FullPayments != 1 || summary.PartialPayments != 1 || summary.NotDone != 1 {
		t.Fatalf("status counts = %+v", summary)
	}
}
