package reporting

import (
	"sort"

	"github.com/Jishnu-21/Channel-Partner-Lead-Manager/internal/leads"
)

// Dimension selects the categorical value a lead is counted under.
type Dimension func(leads.Lead) string

func ByPartnerCode(l leads.Lead) string { return l.PartnerCode }

func ByLeadSource(l leads.Lead) string { return l.LeadSource }

func ByIndustry(l leads.Lead) string {
	if l.Industry == "" {
		return "Unknown"
	}
	return l.Industry
}

type Row struct {
	Bucket string         `json:"bucket"`
	Counts map[string]int `json:"counts"`
}

// Series is a dense, chronologically ordered set of per-bucket counts. Every
// row carries a count for every column.
type Series struct {
	Columns []string `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// Aggregate tallies leads into bucket × dimension counts and densifies the
// result for charting. The column set is discovered from the data in
// first-seen order, unless restrict pins it to an exact subset (in which case
// leads outside the subset are ignored). Dimension values absent from the
// filtered input get no column at all: removing a partner from the active
// filter removes its series rather than drawing an all-zero line.
func Aggregate(items []leads.Lead, dim Dimension, g Granularity, restrict []string) Series {
	allowed := map[string]bool{}
	for _, v := range restrict {
		allowed[v] = true
	}

	counts := map[string]map[string]int{}
	columns := make([]string, 0)
	seen := map[string]bool{}

	if len(restrict) > 0 {
		columns = append(columns, restrict...)
	}

	for _, lead := range items {
		key, ok := BucketKey(lead.CreatedAt, g)
		if !ok {
			continue
		}
		value := dim(lead)
		if len(restrict) > 0 && !allowed[value] {
			continue
		}
		if len(restrict) == 0 && !seen[value] {
			seen[value] = true
			columns = append(columns, value)
		}
		if counts[key] == nil {
			counts[key] = map[string]int{}
		}
		counts[key][value]++
	}

	rows := make([]Row, 0, len(counts))
	for key, sparse := range counts {
		dense := make(map[string]int, len(columns))
		for _, col := range columns {
			dense[col] = sparse[col]
		}
		rows = append(rows, Row{Bucket: key, Counts: dense})
	}

	sort.Slice(rows, func(i, j int) bool {
		ti, erri := bucketTime(rows[i].Bucket, g)
		tj, errj := bucketTime(rows[j].Bucket, g)
		if erri != nil || errj != nil {
			return rows[i].Bucket < rows[j].Bucket
		}
		return ti.Before(tj)
	})

	return Series{Columns: columns, Rows: rows}
}
