package ftracker

import (
	"fmt"
	"strings"
)

const (
	CodeSwimming      = "SWM"
	CodeRunning       = "RUN"
	CodeSportsWalking = "WLK"
)

// Codes returns the recognized workout codes
func Codes() []string {
	return []string{CodeSwimming, CodeRunning, CodeSportsWalking}
}

// UnknownWorkoutTypeError is returned for a package with an unrecognized code
type UnknownWorkoutTypeError struct {
	Code  string
	Valid []string
}

func (e *UnknownWorkoutTypeError) Error() string {
	return fmt.Sprintf("unknown workout type %q, expected one of %s", e.Code, strings.Join(e.Valid, ", "))
}

// FieldCountError is returned when a package does not carry the number of fields its workout type reads
type FieldCountError struct {
	Code string
	Want int
	Got  int
}

func (e *FieldCountError) Error() string {
	return fmt.Sprintf("workout type %s reads %d fields, got %d", e.Code, e.Want, e.Got)
}

type reader struct {
	fields int
	read   func(data []float64) Training
}

var readers = map[string]reader{
	CodeSwimming: {
		fields: 5,
		read: func(data []float64) Training {
			return NewSwimming(int(data[0]), data[1], data[2], data[3], data[4])
		},
	},
	CodeRunning: {
		fields: 3,
		read: func(data []float64) Training {
			return NewRunning(int(data[0]), data[1], data[2])
		},
	},
	CodeSportsWalking: {
		fields: 4,
		read: func(data []float64) Training {
			return NewSportsWalking(int(data[0]), data[1], data[2], data[3])
		},
	},
}

// ReadPackage constructs the workout for `code` from the positional sensor data
//
// The data is ordered: action, duration, weight followed by the type specific
// fields (height for walking; pool length and pool count for swimming). The
// action count is truncated toward zero.
func ReadPackage(code string, data []float64) (Training, error) {
	r, ok := readers[code]
	if !ok {
		return nil, &UnknownWorkoutTypeError{Code: code, Valid: Codes()}
	}
	if len(data) != r.fields {
		return nil, &FieldCountError{Code: code, Want: r.fields, Got: len(data)}
	}
	return r.read(data), nil
}
