// Package constants provides shared constants for the transport-compare application.
package constants

// Unit conversion constants
const (
	// KgPerQuintal is the number of kilograms in one quintal
	KgPerQuintal = 100.0

	// KgPerTon is the number of kilograms in one metric ton
	KgPerTon = 1000.0

	// QuintalsPerTon is the number of quintals in one metric ton
	QuintalsPerTon = 10.0
)

// Market charge rates applied on gross revenue
const (
	// MandiFeeRate is the statutory mandi fee fraction of gross revenue
	MandiFeeRate = 0.015

	// CommissionRate is the commission agent fraction of gross revenue
	CommissionRate = 0.025
)

// Road travel constants
const (
	// MinRoadSpeedKmph is the slow end of the assumed road speed range
	MinRoadSpeedKmph = 35.0

	// MaxRoadSpeedKmph is the fast end of the assumed road speed range
	MaxRoadSpeedKmph = 50.0

	// DefaultTollPlazaSpacingKm is the assumed distance between toll plazas
	DefaultTollPlazaSpacingKm = 60.0

	// DefaultTollDensityFactor applies when a state has no recorded factor
	DefaultTollDensityFactor = 0.5
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultUpstreamTimeoutSeconds bounds calls to the upstream mandi API
	DefaultUpstreamTimeoutSeconds = 10
)

// Validation constants
const (
	// DecimalPrecision is the precision for percentage rounding (2 decimal places)
	DecimalPrecision = 100

	// RupeeTolerance is the tolerance for whole-rupee comparisons
	RupeeTolerance = 0.5

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)
