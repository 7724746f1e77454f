package playerdomain

import "strings"

// Designation is an injury availability code.
type Designation string

// Designations maps each code to its description, in display order.
var Designations = []struct {
	Code        Designation
	Description string
}{
	{"O", "Out"},
	{"D", "Doubtful"},
	{"Q", "Questionable"},
	{"P", "Probable"},
	{"FP", "Full Practice"},
	{"IR", "Injured Reserve"},
	{"PUP", "Physically Unable to Perform"},
	{"SUS", "Suspended"},
}

// ParseDesignation normalizes s and reports whether it is a known code.
func ParseDesignation(s string) (Designation, bool) {
	code := Designation(strings.ToUpper(strings.TrimSpace(s)))
	for _, d := range Designations {
		if d.Code == code {
			return d.Code, true
		}
	}
	return "", false
}

// Description returns the human label for d, or "" when unknown.
func (d Designation) Description() string {
	for _, known := range Designations {
		if known.Code == d {
			return known.Description
		}
	}
	return ""
}
