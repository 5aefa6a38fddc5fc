package formaterror

import "strings"

// FormatError translates database uniqueness errors into field-keyed
// messages the API can return directly.
func FormatError(errString string) map[string]string {
	errorMessages := make(map[string]string)

	if strings.Contains(errString, "username") {
		errorMessages["Taken_username"] = "Username already taken"
	}
	if strings.Contains(errString, "email") {
		errorMessages["Taken_email"] = "Email already taken"
	}
	if len(errorMessages) == 0 {
		errorMessages["Incorrect_details"] = "Incorrect details"
	}
	return errorMessages
}
