// Package testutil provides reusable test helper functions for waveform
// renderer tests.
package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Default tolerances for various test scenarios.
const (
	// QuantizationTolerance bounds the error introduced by one
	// quantization step at 16-bit, expressed in normalized amplitude.
	QuantizationTolerance = 1.0 / 32767.0

	// FrequencyTolerance is the acceptable relative error when comparing
	// a measured FFT peak against a configured frequency.
	FrequencyTolerance = 0.05
)

// AssertSamplesInRange verifies that all quantized samples lie within
// [minVal, maxVal].
func AssertSamplesInRange(t *testing.T, samples []int32, minVal, maxVal int32, msgAndArgs ...any) bool {
	t.Helper()
	for i, s := range samples {
		if s < minVal || s > maxVal {
			return assert.Fail(t, "sample out of range",
				"samples[%d]=%d is outside range [%d, %d]", i, s, minVal, maxVal)
		}
	}
	return true
}

// AssertPacketAligned verifies that the data length is a non-zero multiple
// of the packet size.
func AssertPacketAligned(t *testing.T, data []byte, packetSize int, msgAndArgs ...any) bool {
	t.Helper()
	if len(data) == 0 {
		return assert.Fail(t, "empty buffer", msgAndArgs...)
	}
	return assert.Zero(t, len(data)%packetSize,
		"buffer length %d is not a multiple of %d", len(data), packetSize)
}

// AssertMaxDeviation verifies that got deviates from want by at most tol at
// every index.
func AssertMaxDeviation(t *testing.T, want, got []float64, tol float64, msgAndArgs ...any) bool {
	t.Helper()
	if !assert.Len(t, got, len(want), msgAndArgs...) {
		return false
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > tol {
			return assert.Fail(t, "deviation exceeds tolerance",
				"index %d: got %f, want %f (tol %e)", i, got[i], want[i], tol)
		}
	}
	return true
}

// AssertRelativeError verifies that the relative error between actual and
// expected is within tolerance.
func AssertRelativeError(t *testing.T, expected, actual, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if expected == 0 {
		return assert.InDelta(t, expected, actual, tolerance, msgAndArgs...)
	}
	relError := math.Abs(actual-expected) / math.Abs(expected)
	return assert.LessOrEqual(t, relError, tolerance,
		"relative error %e exceeds tolerance %e (expected=%f, actual=%f)",
		relError, tolerance, expected, actual)
}
