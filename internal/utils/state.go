package utils

import (
	"errors"
	"regexp"
	"strings"
)

// ErrInvalidState is returned when NormalizeUSState is given an unknown value.
var ErrInvalidState = errors.New("invalid US state or territory")

var nonAlphaNum = regexp.MustCompile(`[^A-Z0-9]+`)

// stateNames maps spelled-out state and territory names (uppercased, no
// punctuation) to their canonical two-letter USPS codes. Quote forms send
// either the full name or the code; both normalize to the code.
var stateNames = map[string]string{
	"ALABAMA": "AL", "ALASKA": "AK", "ARIZONA": "AZ", "ARKANSAS": "AR",
	"CALIFORNIA": "CA", "COLORADO": "CO", "CONNECTICUT": "CT",
	"DELAWARE": "DE", "FLORIDA": "FL", "GEORGIA": "GA", "HAWAII": "HI",
	"IDAHO": "ID", "ILLINOIS": "IL", "INDIANA": "IN", "IOWA": "IA",
	"KANSAS": "KS", "KENTUCKY": "KY", "LOUISIANA": "LA", "MAINE": "ME",
	"MARYLAND": "MD", "MASSACHUSETTS": "MA", "MICHIGAN": "MI",
	"MINNESOTA": "MN", "MISSISSIPPI": "MS", "MISSOURI": "MO",
	"MONTANA": "MT", "NEBRASKA": "NE", "NEVADA": "NV",
	"NEWHAMPSHIRE": "NH", "NEWJERSEY": "NJ", "NEWMEXICO": "NM",
	"NEWYORK": "NY", "NORTHCAROLINA": "NC", "NORTHDAKOTA": "ND",
	"OHIO": "OH", "OKLAHOMA": "OK", "OREGON": "OR", "PENNSYLVANIA": "PA",
	"RHODEISLAND": "RI", "SOUTHCAROLINA": "SC", "SOUTHDAKOTA": "SD",
	"TENNESSEE": "TN", "TEXAS": "TX", "UTAH": "UT", "VERMONT": "VT",
	"VIRGINIA": "VA", "WASHINGTON": "WA", "WESTVIRGINIA": "WV",
	"WISCONSIN": "WI", "WYOMING": "WY",
	"DISTRICTOFCOLUMBIA": "DC", "PUERTORICO": "PR", "GUAM": "GU",
	"VIRGINISLANDS": "VI", "AMERICANSAMOA": "AS",
}

// stateCodes is the set of canonical codes, derived from stateNames.
var stateCodes = func() map[string]bool {
	set := make(map[string]bool, len(stateNames))
	for _, code := range stateNames {
		set[code] = true
	}
	return set
}()

// NormalizeUSState returns the canonical two-letter USPS code for the given
// input. The function is case-insensitive and ignores punctuation and
// whitespace.
func NormalizeUSState(s string) (string, error) {
	cleaned := strings.ToUpper(s)
	cleaned = nonAlphaNum.ReplaceAllString(cleaned, "")
	if stateCodes[cleaned] {
		return cleaned, nil
	}
	if code, ok := stateNames[cleaned]; ok {
		return code, nil
	}
	return "", ErrInvalidState
}
