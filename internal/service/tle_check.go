package service

import (
	"fmt"
	"strconv"
	"strings"

	satellite "github.com/joshuaferrara/go-satellite"

	"github.com/orbitwatch/backend/internal/domain"
)

const tleLineLength = 69

// CheckTLE verifies that an element set is well formed: line numbers, length,
// catalog number, mod-10 checksums, numeric element fields, and a clean SGP4
// initialisation. It never propagates the orbit.
func CheckTLE(tle domain.TLE, satID int) error {
	l1, l2 := tle.Line1, tle.Line2
	if len(l1) != tleLineLength || len(l2) != tleLineLength {
		return fmt.Errorf("tle: lines must be %d characters, got %d and %d", tleLineLength, len(l1), len(l2))
	}
	if !strings.HasPrefix(l1, "1 ") || !strings.HasPrefix(l2, "2 ") {
		return fmt.Errorf("tle: bad line numbers")
	}
	for i, line := range []string{l1, l2} {
		want := int(line[68] - '0')
		if got := Checksum(line); got != want {
			return fmt.Errorf("tle: line %d checksum %d, want %d", i+1, got, want)
		}
	}

	n1, err1 := strconv.Atoi(strings.TrimSpace(l1[2:7]))
	n2, err2 := strconv.Atoi(strings.TrimSpace(l2[2:7]))
	if err1 != nil || err2 != nil || n1 != n2 {
		return fmt.Errorf("tle: catalog numbers %q and %q do not match", l1[2:7], l2[2:7])
	}
	if satID != 0 && n1 != satID {
		return fmt.Errorf("tle: catalog number %d, requested %d", n1, satID)
	}

	if err := checkElementFields(l1, l2); err != nil {
		return err
	}

	sat := satellite.TLEToSat(l1, l2, satellite.GravityWGS72)
	if sat.Error != 0 {
		return fmt.Errorf("tle: sgp4 init error %d: %s", sat.Error, sat.ErrorStr)
	}
	return nil
}

// Checksum computes the mod-10 checksum of the first 68 columns: digits count
// their value and '-' counts one.
func Checksum(line string) int {
	sum := 0
	for i := 0; i < len(line) && i < tleLineLength-1; i++ {
		switch c := line[i]; {
		case c >= '0' && c <= '9':
			sum += int(c - '0')
		case c == '-':
			sum++
		}
	}
	return sum % 10
}

// checkElementFields parses the numeric columns the SGP4 loader reads so that
// malformed values are rejected here instead of inside the loader.
func checkElementFields(l1, l2 string) error {
	squash := func(s string) string { return strings.Replace(s, " ", "", 2) }
	floats := map[string]string{
		"epoch day":        l1[20:32],
		"mean motion dot":  squash(l1[33:43]),
		"mean motion ddot": squash(l1[44:45] + "." + l1[45:50] + "e" + l1[50:52]),
		"bstar":            squash(l1[53:54] + "." + l1[54:59] + "e" + l1[59:61]),
		"inclination":      squash(l2[8:16]),
		"raan":             squash(l2[17:25]),
		"eccentricity":     "." + l2[26:33],
		"arg of perigee":   squash(l2[34:42]),
		"mean anomaly":     squash(l2[43:51]),
		"mean motion":      squash(l2[52:63]),
	}
	for name, v := range floats {
		if _, err := strconv.ParseFloat(v, 64); err != nil {
			return fmt.Errorf("tle: %s %q is not numeric", name, v)
		}
	}
	if _, err := strconv.Atoi(l1[18:20]); err != nil {
		return fmt.Errorf("tle: epoch year %q is not numeric", l1[18:20])
	}
	return nil
}
