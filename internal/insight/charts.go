package insight

// Breakdown projects subjects into the per-subject view the charts
// consume. Read-only; no logic beyond the percentage already defined.
func Breakdown(subjects []Subject) []SubjectBreakdown {
	out := make([]SubjectBreakdown, len(subjects))
	for i, s := range subjects {
		out[i] = SubjectBreakdown{
			Name:         s.Name,
			Percentage:   s.Percentage(),
			HoursStudied: s.HoursStudied,
		}
	}
	return out
}

// Distribution buckets subjects into three score bands and drops empty
// buckets. Order is always excellent, good, needs-work.
func Distribution(subjects []Subject) []DistributionBucket {
	var excellent, good, needsWork int
	for _, s := range subjects {
		switch p := s.Percentage(); {
		case p >= 80:
			excellent++
		case p >= 60:
			good++
		default:
			needsWork++
		}
	}
	out := make([]DistributionBucket, 0, 3)
	if excellent > 0 {
		out = append(out, DistributionBucket{Label: "excellent", Count: excellent})
	}
	if good > 0 {
		out = append(out, DistributionBucket{Label: "good", Count: good})
	}
	if needsWork > 0 {
		out = append(out, DistributionBucket{Label: "needs-work", Count: needsWork})
	}
	return out
}
