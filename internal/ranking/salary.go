package ranking

import (
	"regexp"
	"strconv"
)

var salaryNumberPattern = regexp.MustCompile(`[0-9]+`)

// ParseSalary extracts the first integer from a free-text salary range such as
// "₹12-18 LPA". Text without digits parses as 0.
func ParseSalary(text string) int {
	match := salaryNumberPattern.FindString(text)
	if match == "" {
		return 0
	}
	n, err := strconv.Atoi(match)
	if err != nil {
		// digit runs too long for an int
		return 0
	}
	return n
}
