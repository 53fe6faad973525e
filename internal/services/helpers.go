package service

import "strconv"

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// toMinorUnits converts an amount to the smallest currency unit.
func toMinorUnits(v float64) int64 {
	return int64(v*100 + 0.5)
}
