package reporting

import (
	"reflect"
	"testing"
	"time"

	"github.com/Jishnu-21/Channel-Partner-Lead-Manager/internal/leads"
)

func monthlyFixture() []leads.Lead {
	return []leads.Lead{
		leadAt("CP1", time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC)),
		leadAt("CP2", time.Date(2024, 1, 20, 10, 0, 0, 0, time.UTC)),
		leadAt("CP1", time.Date(2024, 2, 2, 10, 0, 0, 0, time.UTC)),
	}
}

func TestAggregateDensifiesEveryColumn(t *testing.T) {
	s := Aggregate(monthlyFixture(), ByPartnerCode, Monthly, nil)

	if !reflect.DeepEqual(s.Columns, []string{"CP1", "CP2"}) {
		t.Fatalf("columns = %v, want [CP1 CP2]", s.Columns)
	}
	if len(s.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(s.Rows))
	}

	jan, feb := s.Rows[0], s.Rows[1]
	if jan.Bucket != "2024-01" || feb.Bucket != "2024-02" {
		t.Fatalf("rows out of order: %q, %q", jan.Bucket, feb.Bucket)
	}
	if !reflect.DeepEqual(jan.Counts, map[string]int{"CP1": 1, "CP2": 1}) {
		t.Fatalf("jan counts = %v", jan.Counts)
	}
	// CP2 had no February leads; the dense row still carries its zero.
	if !reflect.DeepEqual(feb.Counts, map[string]int{"CP1": 1, "CP2": 0}) {
		t.Fatalf("feb counts = %v", feb.Counts)
	}
}

func TestAggregateColumnOrderIsFirstSeen(t *testing.T) {
	items := []leads.Lead{
		leadAt("CP9", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)),
		leadAt("CP1", time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)),
		leadAt("CP9", time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC)),
	}

	s := Aggregate(items, ByPartnerCode, Daily, nil)
	if !reflect.DeepEqual(s.Columns, []string{"CP9", "CP1"}) {
		t.Fatalf("columns = %v, want first-seen order [CP9 CP1]", s.Columns)
	}
}

func TestAggregateRestrictPinsColumns(t *testing.T) {
	s := Aggregate(monthlyFixture(), ByPartnerCode, Monthly, []string{"CP2"})

	if !reflect.DeepEqual(s.Columns, []string{"CP2"}) {
		t.Fatalf("columns = %v, want [CP2]", s.Columns)
	}
	// CP1 leads are ignored entirely, so February produces no row.
	if len(s.Rows) != 1 {
		t.Fatalf("expected 1 row, got %v", s.Rows)
	}
	if s.Rows[0].Bucket != "2024-01" || s.Rows[0].Counts["CP2"] != 1 {
		t.Fatalf("unexpected row %+v", s.Rows[0])
	}
}

func TestAggregateSkipsUnbucketableLeads(t *testing.T) {
	items := append(monthlyFixture(), leadAt("CP3", time.Time{}))

	s := Aggregate(items, ByPartnerCode, Monthly, nil)
	if !reflect.DeepEqual(s.Columns, []string{"CP1", "CP2"}) {
		t.Fatalf("zero-time lead leaked a column: %v", s.Columns)
	}
}

func TestAggregateEmptyInput(t *testing.T) {
	s := Aggregate(nil, ByPartnerCode, Daily, nil)
	if len(s.Columns) != 0 || len(s.Rows) != 0 {
		t.Fatalf("expected empty series, got %+v", s)
	}
}

func TestAggregateWeeklyRowsAreChronological(t *testing.T) {
	items := []leads.Lead{
		leadAt("CP1", time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)), // week of 2024-03-17
		leadAt("CP1", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)),  // week of 2024-03-03
		leadAt("CP1", time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC)), // week of 2024-03-10
	}

	s := Aggregate(items, ByPartnerCode, Weekly, nil)
	want := []string{"2024-03-03", "2024-03-10", "2024-03-17"}
	for i, w := range want {
		if s.Rows[i].Bucket != w {
			t.Fatalf("rows[%d] = %q, want %q", i, s.Rows[i].Bucket, w)
		}
	}
}

func TestByIndustryMapsEmptyToUnknown(t *testing.T) {
	if got := ByIndustry(leads.Lead{}); got != "Unknown" {
		t.Fatalf("ByIndustry(empty) = %q, want Unknown", got)
	}
	if got := ByIndustry(leads.Lead{Industry: "Retail"}); got != "Retail" {
		t.Fatalf("ByIndustry = %q, want Retail", got)
	}
}
