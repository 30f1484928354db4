package formaterror

import "strings"

// FormatError maps raw storage error text to user-facing messages.
func FormatError(err string) map[string]string {
	errMap := make(map[string]string)

	if strings.Contains(err, "name") && strings.Contains(err, "UNIQUE") ||
		strings.Contains(err, "duplicate key") {
		errMap["Taken_name"] = "Name Already Taken"
		return errMap
	}
	if strings.Contains(err, "record not found") {
		errMap["Not_found"] = "Record Not Found"
		return errMap
	}

	errMap["Incorrect_details"] = "Incorrect Details"
	return errMap
}
