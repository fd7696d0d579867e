// Package gst holds the static GST lookup tables and the pure rate/state helpers shared by the
// parsers and the report builders.
package gst

import "strings"

// UnknownState is the region name used for codes missing from the state table.
const UnknownState = "Unknown"

// stateNames maps the 2-digit GST state code to its region name. Read-only after init.
var stateNames = map[string]string{
	"01": "Jammu & Kashmir", "02": "Himachal Pradesh", "03": "Punjab", "04": "Chandigarh",
	"05": "Uttarakhand", "06": "Haryana", "07": "Delhi", "08": "Rajasthan",
	"09": "Uttar Pradesh", "10": "Bihar", "11": "Sikkim", "12": "Arunachal Pradesh",
	"13": "Nagaland", "14": "Manipur", "15": "Mizoram", "16": "Tripura",
	"17": "Meghalaya", "18": "Assam", "19": "West Bengal", "20": "Jharkhand",
	"21": "Odisha", "22": "Chhattisgarh", "23": "Madhya Pradesh", "24": "Gujarat",
	"25": "Daman and Diu", "26": "Dadra & Nagar Haveli & Daman & Diu", "27": "Maharashtra",
	"29": "Karnataka", "30": "Goa", "31": "Lakshadweep", "32": "Kerala",
	"33": "Tamil Nadu", "34": "Puducherry", "35": "Andaman & Nicobar Islands",
	"36": "Telangana", "37": "Andhra Pradesh", "38": "Ladakh",
}

// StateName returns the region name for a state code, or UnknownState.
func StateName(code string) string {
	if name, ok := stateNames[code]; ok {
		return name
	}
	return UnknownState
}

// StateCode extracts the code from a "<code>-<name>" place-of-supply value.
// Returns "" when the value is empty or has no hyphen.
func StateCode(placeOfSupply string) string {
	code, _, found := strings.Cut(placeOfSupply, "-")
	if !found {
		return ""
	}
	return strings.TrimSpace(code)
}

// PlaceOfSupply formats a state code as "<code>-<name>".
func PlaceOfSupply(code string) string {
	return code + "-" + StateName(code)
}
