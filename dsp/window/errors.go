package window

import (
	"errors"
	"fmt"
)

var (
	errEmptyCoeffs      = errors.New("window coefficients must not be empty")
	errMismatchedLength = errors.New("samples and coefficients must have same length")
	errUnknownType      = errors.New("unknown window type")
)

func validateLength(size int) error {
	if size <= 0 {
		return fmt.Errorf("window size must be > 0: %d", size)
	}
	return nil
}

func validateParam(size int, v float64, name string, minValue float64) error {
	if err := validateLength(size); err != nil {
		return err
	}
	if v < minValue {
		return fmt.Errorf("%s must be >= %g: %f", name, minValue, v)
	}
	return nil
}
