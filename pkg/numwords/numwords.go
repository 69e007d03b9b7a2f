// Package numwords converts non-negative integers to English words on
// the Indian numbering scale (thousand, lakh, crore), as required for
// the statutory "amount in words" line on tax invoices.
package numwords

import "strings"

var units = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var tens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

// Indian scale boundaries: after the first three digits, groups are of
// two digits (thousand, lakh, crore), not three.
var scale = []struct {
	value int64
	name  string
}{
	{10000000, "Crore"},
	{100000, "Lakh"},
	{1000, "Thousand"},
}

// Convert returns n in English words. Negative input yields "Zero".
func Convert(n int64) string {
	if n <= 0 {
		return "Zero"
	}
	return strings.Join(words(n), " ")
}

func words(n int64) []string {
	var parts []string
	for _, s := range scale {
		if n >= s.value {
			group := n / s.value
			n %= s.value
			parts = append(parts, words(group)...)
			parts = append(parts, s.name)
		}
	}
	if n > 0 {
		parts = append(parts, belowThousand(int(n))...)
	}
	return parts
}

func belowThousand(n int) []string {
	var parts []string
	if n >= 100 {
		parts = append(parts, units[n/100], "Hundred")
		n %= 100
	}
	switch {
	case n >= 20:
		parts = append(parts, tens[n/10])
		if n%10 > 0 {
			parts = append(parts, units[n%10])
		}
	case n > 0:
		parts = append(parts, units[n])
	}
	return parts
}
