package utils

import "strings"

// SplitTValue splits the T'xxx' notation into a lowercase type id and its data,
// e.g. b'1101' -> ("b", "1101"). Input not in that form is returned whole with defaultType.
func SplitTValue(input string, defaultType string) (typeID string, data string) {
	// T'xxx': at least 3 chars, second char is ', last char is '
	if len(input) >= 3 && input[1] == '\'' && input[len(input)-1] == '\'' {
		return strings.ToLower(string(input[0])), input[2 : len(input)-1]
	}
	return defaultType, input
}
