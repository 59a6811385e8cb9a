package analytics

// TechAggregate is the store's compliance rollup for one job. Average and max
// are pointers because SQL AVG/MAX return NULL over an empty table.
type TechAggregate struct {
	TotalResponses   int
	Compliant        int
	NonCompliant     int
	VideoUploads     int
	ScreenRecordings int
	AvgTabSwitches   *float64
	MaxTabSwitches   *int
}

// ShapeTechnical fixes the technical-insights shape. No responses means the
// block is absent entirely, not zero-filled.
func ShapeTechnical(agg TechAggregate) *TechnicalInsights {
	if agg.TotalResponses == 0 {
		return nil
	}
	avg := 0.0
	if agg.AvgTabSwitches != nil {
		avg = *agg.AvgTabSwitches
	}
	max := 0
	if agg.MaxTabSwitches != nil {
		max = *agg.MaxTabSwitches
	}
	return &TechnicalInsights{
		TotalResponses: agg.TotalResponses,
		TabSwitching: TabSwitching{
			Average:      avg,
			Max:          max,
			Compliant:    agg.Compliant,
			NonCompliant: agg.NonCompliant,
		},
		VideoUploadSuccess:     agg.VideoUploads,
		ScreenRecordingSuccess: agg.ScreenRecordings,
	}
}
