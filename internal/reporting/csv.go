package reporting

import (
	"strconv"
	"strings"
)

// ToCSV flattens a series into comma-delimited text: a "Date" header followed
// by one column per dimension value in series order, then one line per
// bucket. Values are joined verbatim; embedded commas in dimension values are
// not escaped. That mirrors the export this replaces and is a documented
// limitation, not an oversight.
func ToCSV(s Series) string {
	lines := make([]string, 0, len(s.Rows)+1)
	lines = append(lines, strings.Join(append([]string{"Date"}, s.Columns...), ","))

	for _, row := range s.Rows {
		fields := make([]string, 0, len(s.Columns)+1)
		fields = append(fields, row.Bucket)
		for _, col := range s.Columns {
			fields = append(fields, strconv.Itoa(row.Counts[col]))
		}
		lines = append(lines, strings.Join(fields, ","))
	}

	return strings.Join(lines, "\n")
}
