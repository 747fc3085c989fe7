package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

func RoundWithOneDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*10) / 10
}

// Ratio divide numerator por denominator limitando o resultado a [0, 1].
// Denominador zero ou negativo retorna 0.
func Ratio(numerator, denominator float64) float64 {
	if denominator <= 0 {
		return 0
	}

	r := numerator / denominator
	switch {
	case math.IsNaN(r) || r < 0:
		return 0
	case r > 1:
		return 1
	}

	return r
}
