package reporting

import "github.com/Jishnu-21/Channel-Partner-Lead-Manager/internal/leads"

// NoData is the sentinel value reported when a top-category query has no
// input to rank.
const NoData = "No Data"

type TopResult struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// TopCategory returns the most frequent dimension value and its count. Ties
// are broken by the value first encountered during a single left-to-right
// scan of the input. Empty input yields the NoData sentinel with ok=false.
func TopCategory(items []leads.Lead, dim Dimension) (TopResult, bool) {
	counts := map[string]int{}
	order := make([]string, 0)

	for _, lead := range items {
		value := dim(lead)
		if _, seen := counts[value]; !seen {
			order = append(order, value)
		}
		counts[value]++
	}

	if len(order) == 0 {
		return TopResult{Value: NoData}, false
	}

	top := order[0]
	for _, value := range order[1:] {
		if counts[value] > counts[top] {
			top = value
		}
	}
	return TopResult{Value: top, Count: counts[top]}, true
}
