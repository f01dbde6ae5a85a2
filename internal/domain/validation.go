package domain

type PerformanceCategory string

const (
	PerformanceCategoryStrongPositive PerformanceCategory = "STRONG_POSITIVE"
	PerformanceCategoryPositive       PerformanceCategory = "POSITIVE"
	PerformanceCategoryNeutral        PerformanceCategory = "NEUTRAL"
	PerformanceCategoryNegative       PerformanceCategory = "NEGATIVE"
	PerformanceCategoryStrongNegative PerformanceCategory = "STRONG_NEGATIVE"
)
