package services

import (
	"sort"
	"strings"

	"tailorshop-backend/models"
)

// FilterBySearchTerm returns the records whose selected fields contain term
// as a case-insensitive substring. A record matches if any field matches. A
// blank or whitespace-only term returns the input slice unchanged.
func FilterBySearchTerm[T any](records []T, term string, fields func(T) []string) []T {
	if strings.TrimSpace(term) == "" {
		return records
	}

	needle := strings.ToLower(strings.TrimSpace(term))
	matched := make([]T, 0)
	for _, record := range records {
		for _, field := range fields(record) {
			if strings.Contains(strings.ToLower(field), needle) {
				matched = append(matched, record)
				break
			}
		}
	}
	return matched
}

// SortOrdersByBillNumber sorts in place using a numeric-aware comparison, so
// BILL-9 sorts before BILL-10.
func SortOrdersByBillNumber(orders []models.Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		return CompareBillNumbers(orders[i].BillNumber, orders[j].BillNumber) < 0
	})
}

// CompareBillNumbers compares two bill numbers segment by segment, treating
// runs of digits as integers and everything else as plain text.
func CompareBillNumbers(a, b string) int {
	for a != "" && b != "" {
		aSeg, aNum, aRest := nextSegment(a)
		bSeg, bNum, bRest := nextSegment(b)

		if aNum && bNum {
			if c := compareNumeric(aSeg, bSeg); c != 0 {
				return c
			}
		} else if c := strings.Compare(aSeg, bSeg); c != 0 {
			return c
		}

		a, b = aRest, bRest
	}
	return strings.Compare(a, b)
}

// nextSegment splits off the leading run of digits or non-digits.
func nextSegment(s string) (segment string, numeric bool, rest string) {
	numeric = isDigit(s[0])
	i := 1
	for i < len(s) && isDigit(s[i]) == numeric {
		i++
	}
	return s[:i], numeric, s[i:]
}

// compareNumeric compares two digit strings by value without parsing them
// into integers, so arbitrarily long sequences cannot overflow.
func compareNumeric(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
