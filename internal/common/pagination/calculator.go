package pagination

import "math"

// CalculateOffset converts a 1-based page into a row offset.
//
// Examples:
//   - Page 1, Limit 10 -> Offset 0
//   - Page 3, Limit 10 -> Offset 20
//
// An offset past math.MaxInt saturates there.
func CalculateOffset(page, limit int) int {
	if page < 1 || limit < 1 {
		return 0
	}
	if !offsetFits(page, limit) {
		return math.MaxInt
	}
	return (page - 1) * limit
}

// offsetFits reports whether (page-1)*limit fits in an int.
func offsetFits(page, limit int) bool {
	if limit < 1 {
		return true
	}
	return page-1 <= math.MaxInt/limit
}

// CalculateTotalPages returns ceil(total/limit), and 1 for an empty table.
func CalculateTotalPages(total int64, limit int) int {
	if total == 0 || limit <= 0 {
		return 1
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
