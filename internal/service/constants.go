package service

const (
	// Trailing window for the healthcare report's activity section.
	ReportWindowDays = 30

	// How many pain entries the report includes.
	ReportPainEntries = 5

	// Short date used in the CSV export and report, matching what the
	// downstream readers of those files already parse.
	shortDateLayout = "1/2/2006"
)
