package main

// Default command-line flag values
const (
	defaultSeed    = 1    // Heavy smoothing, matches fixedfilter.SeedHeavy
	defaultSamples = 1024 // One full period at the default period
	defaultPerLine = 8    // Sample groups per output line
)

// Output formatting
const (
	groupSeparator = ", "
	groupSuffix    = " __"
	percent        = 100.0
)
