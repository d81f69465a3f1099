package extractor

import (
	"strings"
)

const (
	urnPrefix        = "urn:"
	urnMinSegments   = 4 // urn:li:<type>:<id>
	salesURLTemplate = "https://www.linkedin.com/sales/company/"
)

// BuildProfileURL derives the public Sales Navigator URL from an entity URN,
// eg. "urn:li:company:9876543" -> "https://www.linkedin.com/sales/company/9876543".
//
// A malformed URN yields an empty string. The trailing id may itself contain
// the delimiter, so the id is taken after the last colon.
func BuildProfileURL(entityURN string) string {
	if !strings.HasPrefix(entityURN, urnPrefix) {
		return ""
	}
	if strings.Count(entityURN, ":") < urnMinSegments-1 {
		return ""
	}

	id := entityURN[strings.LastIndex(entityURN, ":")+1:]
	if id == "" {
		return ""
	}

	return salesURLTemplate + id
}
