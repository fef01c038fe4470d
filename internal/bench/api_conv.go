package bench

import "rnashapes/pkg/api"

// ToAPI converts a report to the v1 wire schema, listing at most maxList
// mismatches per level (0 = all).
func ToAPI(r *Report, maxList int) api.BenchReportV1 {
	return api.BenchReportV1{
		RunID:        r.RunID,
		Source:       r.Source,
		Cases:        r.Cases,
		Passed:       r.Passed(),
		FailedLevel5: len(r.Level5),
		FailedLevel3: len(r.Level3),
		FailedLevel1: len(r.Level1),
		Invalid:      len(r.Invalid),
		SuccessRatio: r.SuccessRatio(),
		ElapsedMS:    r.Elapsed.Milliseconds(),
		Level5:       toAPIMismatches(r.Level5, maxList),
		Level3:       toAPIMismatches(r.Level3, maxList),
		Level1:       toAPIMismatches(r.Level1, maxList),
		InvalidCases: toAPIMismatches(r.Invalid, maxList),
	}
}

func toAPIMismatches(ms []Mismatch, maxList int) []api.MismatchV1 {
	if maxList > 0 && len(ms) > maxList {
		ms = ms[:maxList]
	}
	if len(ms) == 0 {
		return nil
	}
	out := make([]api.MismatchV1, len(ms))
	for i, m := range ms {
		out[i] = api.MismatchV1{Line: m.Line, Structure: m.Structure, Got: m.Got, Want: m.Want}
	}
	return out
}
