// Package ssn produces U.S. Social Security numbers that were never issued.
//
// Area numbers 666 and 900-999 are never assigned, so every value produced
// here is fake by construction. Group 00 and serial 0000 are avoided too.
package ssn

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"strconv"
)

const (
	groupMin  = 1
	groupMax  = 99
	serialMin = 1
	serialMax = 9999
)

// Space is the number of distinct values Random and Sequence can produce.
const Space = 101 * 99 * 9999

// Pattern matches the DDD-DD-DDDD layout.
var Pattern = regexp.MustCompile(`^\d{3}-\d{2}-\d{4}$`)

// Areas returns the unissued area numbers in iteration order: 900-999, then 666.
func Areas() []int {
	areas := make([]int, 0, 101)
	for a := 900; a <= 999; a++ {
		areas = append(areas, a)
	}
	return append(areas, 666)
}

var areas = Areas()

// Random draws one number uniformly from the unissued space.
// Repeats are possible and allowed.
func Random(r *rand.Rand) string {
	area := areas[r.IntN(len(areas))]
	group := groupMin + r.IntN(groupMax-groupMin+1)
	serial := serialMin + r.IntN(serialMax-serialMin+1)
	return Format(area, group, serial)
}

// Format renders the three parts as AAA-GG-SSSS.
func Format(area, group, serial int) string {
	return fmt.Sprintf("%03d-%02d-%04d", area, group, serial)
}

// Valid reports whether s is a well-formed number inside the unissued space.
func Valid(s string) bool {
	if !Pattern.MatchString(s) {
		return false
	}
	area, _ := strconv.Atoi(s[0:3])
	group, _ := strconv.Atoi(s[4:6])
	serial, _ := strconv.Atoi(s[7:11])
	if area != 666 && (area < 900 || area > 999) {
		return false
	}
	return group >= groupMin && serial >= serialMin
}
