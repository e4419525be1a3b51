package health

import "errors"

var (
	// ErrInvalidMeasurement marks non-physiological input, e.g. waist smaller
	// than neck, which would produce a non-positive logarithm argument.
	ErrInvalidMeasurement = errors.New("invalid measurement")

	// ErrMissingInput marks a required measurement field that was not provided,
	// e.g. hip circumference for the female body fat formula.
	ErrMissingInput = errors.New("missing input")

	// ErrUnrecognizedCategory means a value fell outside all defined bands.
	// The bands cover the whole range, so hitting this is a logic defect.
	ErrUnrecognizedCategory = errors.New("unrecognized category")
)
