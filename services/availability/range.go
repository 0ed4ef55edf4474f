package availability

import "time"

// ResolveRange computes the longest bookable consecutive run of dates
// starting at start, capped at desired days. The start date itself is always
// included; validating it is the caller's job, done before money is involved.
// Resolution stops at the first unavailable date: a booking must occupy a
// contiguous block, so days past a gap are useless even when individually
// free. Truncation, not an error, is the signal — callers compare the result
// length against desired.
func ResolveRange(start time.Time, desired int, idx *Index) []string {
	if desired < 1 {
		desired = 1
	}
	dates := make([]string, 0, desired)
	dates = append(dates, start.Format(DateLayout))

	for offset := 1; offset < desired; offset++ {
		d := start.AddDate(0, 0, offset).Format(DateLayout)
		if !idx.IsAvailable(d) {
			break
		}
		dates = append(dates, d)
	}
	return dates
}
