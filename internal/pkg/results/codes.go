package results

// Code identifies a catalogued failure condition.
type Code string

// CRUD codes
const (
	CodeCreateFailed Code = "CRUD_001"
	CodeReadFailed   Code = "CRUD_002"
	CodeUpdateFailed Code = "CRUD_003"
	CodeDeleteFailed Code = "CRUD_004"
	CodeNotFound     Code = "CRUD_005"
	CodeDuplicate    Code = "CRUD_006"
)

// Validation codes
const (
	CodeValidationFailed  Code = "VAL_001"
	CodeRequiredMissing   Code = "VAL_002"
	CodeValueOutOfRange   Code = "VAL_003"
	CodeFormatInvalid     Code = "VAL_004"
	CodeMaxLengthExceeded Code = "VAL_005"
)

// Authentication and authorization codes
const (
	CodeInvalidCredentials Code = "AUTH_001"
	CodeTokenInvalid       Code = "AUTH_002"
	CodeTokenExpired       Code = "AUTH_003"
	CodeAccessDenied       Code = "AUTH_004"
	CodeAccountExists      Code = "AUTH_005"
)

// General codes
const (
	CodeGeneralError    Code = "GEN_001"
	CodeOperationFailed Code = "GEN_002"
)

var messages = map[Code]string{
	CodeCreateFailed:      "failed to create the record",
	CodeReadFailed:        "failed to read the record",
	CodeUpdateFailed:      "failed to update the record",
	CodeDeleteFailed:      "failed to delete the record",
	CodeNotFound:          "the record was not found",
	CodeDuplicate:         "a record with the same identifier already exists",
	CodeValidationFailed:  "data validation failed",
	CodeRequiredMissing:   "a required field is missing",
	CodeValueOutOfRange:   "the value is out of the allowable range",
	CodeFormatInvalid:     "the data format is invalid",
	CodeMaxLengthExceeded: "the field exceeds the maximum length allowed",

	CodeInvalidCredentials: "the provided credentials are invalid",
	CodeTokenInvalid:       "the token is invalid",
	CodeTokenExpired:       "the token has expired",
	CodeAccessDenied:       "access is denied",
	CodeAccountExists:      "an account with this information already exists",

	CodeGeneralError:    "an unexpected error occurred",
	CodeOperationFailed: "the operation failed",
}

// Message returns the default message for a code.
func Message(code Code) string {
	if msg, ok := messages[code]; ok {
		return msg
	}
	return messages[CodeGeneralError]
}
