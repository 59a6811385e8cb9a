package analytics

// ShapeOverview derives not_started from the upstream counters. The counts come
// from independent joins and can disagree; not_started is deliberately left
// unclamped so a negative value surfaces the inconsistency instead of hiding it.
func ShapeOverview(totalApplications, complete, incomplete int) Overview {
	return Overview{
		TotalApplications:     totalApplications,
		CompleteSubmissions:   complete,
		IncompleteSubmissions: incomplete,
		NotStarted:            totalApplications - (complete + incomplete),
	}
}
