package service

import (
	"math"
	"strconv"
)

// FormatPrecio renders a price the way the portal displays it: rounded to
// whole units with dots as thousands separators (es-CO grouping).
func FormatPrecio(value float64) string {
	digits := strconv.FormatInt(int64(math.Round(value)), 10)

	var out []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, d)
	}
	return string(out)
}
