package session

// DefaultSeriesOccurrences is how many weekly instances a recurring schedule
// fans out to at creation time.
const DefaultSeriesOccurrences = 4

// ExpandSeries produces occurrence copies of template spaced intervalDays apart,
// starting at the template's own StartTime. Every copy shares the template's
// SeriesID and IsRecurring flag; IDs are left blank for the store to generate.
//
// The function is pure: the template is not mutated and the result depends only
// on the inputs.
func ExpandSeries(template Session, occurrences int, intervalDays int) []Session {
	if occurrences < 1 {
		occurrences = 1
	}
	out := make([]Session, 0, occurrences)
	for i := 0; i < occurrences; i++ {
		inst := template
		inst.ID = ""
		inst.StartTime = template.StartTime.AddDate(0, 0, i*intervalDays)
		out = append(out, inst)
	}
	return out
}
