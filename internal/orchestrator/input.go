package orchestrator

import (
	"errors"
	"fmt"
	"net/http"

	"agingd/internal/sample"
)

const (
	// DefaultSequenceLength is used when a morph or kids request omits length.
	DefaultSequenceLength = 10
	// MaxSequenceLength bounds the frames a single request may ask for.
	MaxSequenceLength = 100
)

// InvalidInputError reports a request field that failed validation.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e InvalidInputError) Error() string {
	return "invalid " + e.Field + ": " + e.Reason
}

func (e InvalidInputError) StatusCode() int { return http.StatusBadRequest }

// IsInvalidInput reports whether err is an InvalidInputError.
func IsInvalidInput(err error) bool {
	var e InvalidInputError
	return errors.As(err, &e)
}

// Subject is one person as submitted by a caller: raw integer codes, not yet
// validated.
type Subject struct {
	Age    int
	Gender int
	Race   int
}

// Validate converts s into a DemographicKey.
func (s Subject) Validate() (sample.DemographicKey, error) {
	if s.Age < 0 {
		return sample.DemographicKey{}, InvalidInputError{Field: "age", Reason: fmt.Sprintf("must be >= 0, got %d", s.Age)}
	}
	g := sample.Gender(s.Gender)
	if !g.Valid() {
		return sample.DemographicKey{}, InvalidInputError{Field: "gender", Reason: fmt.Sprintf("unknown code %d", s.Gender)}
	}
	r := sample.Race(s.Race)
	if !r.Valid() {
		return sample.DemographicKey{}, InvalidInputError{Field: "race", Reason: fmt.Sprintf("unknown code %d", s.Race)}
	}
	return sample.DemographicKey{Age: s.Age, Gender: g, Race: r}, nil
}

// validateNth validates the subject submitted under fields suffixed with
// "_<n>" and names the offending field accordingly.
func validateNth(s Subject, n int) (sample.DemographicKey, error) {
	k, err := s.Validate()
	var ie InvalidInputError
	if errors.As(err, &ie) {
		ie.Field = fmt.Sprintf("%s_%d", ie.Field, n)
		return k, ie
	}
	return k, err
}

// sequenceLength applies the default and bounds to a requested length.
func sequenceLength(n int) (int, error) {
	switch {
	case n == 0:
		return DefaultSequenceLength, nil
	case n < 0 || n > MaxSequenceLength:
		return 0, InvalidInputError{Field: "length", Reason: fmt.Sprintf("must be between 1 and %d, got %d", MaxSequenceLength, n)}
	}
	return n, nil
}
