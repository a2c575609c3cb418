package code

// Error code to message mapping
var codeMessageMap = map[int]string{
	// Generic
	ErrSuccess:         "success",
	ErrUnknown:         "unknown error",
	ErrBind:            "invalid request parameters",
	ErrValidation:      "request validation failed",
	ErrTokenInvalid:    "invalid authentication token",
	ErrTooManyRequests: "too many requests",

	// Registrar accounts
	ErrUserNotFound:          "account not found",
	ErrUserAlreadyExist:      "account already exists",
	ErrUserPasswordIncorrect: "incorrect password",

	// Residents
	ErrResidentNotFound: "resident not found",
	ErrDuplicateNIK:     "NIK is already registered",
	ErrResidentDeceased: "resident is already recorded as deceased",
	ErrResidentIsHead:   "resident is the head of a household; reassign the head first",

	// Households
	ErrHouseholdNotFound: "household not found",
	ErrDuplicateKKNumber: "KK number is already registered",
	ErrHeadRequired:      "member list must contain exactly one head of household",
	ErrMemberExists:      "resident is already a member of this household",
	ErrMemberNotFound:    "household member not found",
	ErrHeadRemoval:       "the head of household cannot be removed; edit the household instead",

	// Vital reports
	ErrReportNotFound: "report not found",
	ErrPartialFailure: "registration partially failed",

	// Database
	ErrDatabase:       "database error",
	ErrRecordNotFound: "record not found",
}

// Error code to HTTP status mapping
var codeStatusMap = map[int]int{
	ErrSuccess:         StatusOK,
	ErrUnknown:         StatusInternalServerError,
	ErrBind:            StatusBadRequest,
	ErrValidation:      StatusBadRequest,
	ErrTokenInvalid:    StatusUnauthorized,
	ErrTooManyRequests: StatusTooManyRequests,

	ErrUserNotFound:          StatusNotFound,
	ErrUserAlreadyExist:      StatusBadRequest,
	ErrUserPasswordIncorrect: StatusUnauthorized,

	ErrResidentNotFound: StatusNotFound,
	ErrDuplicateNIK:     StatusBadRequest,
	ErrResidentDeceased: StatusBadRequest,
	ErrResidentIsHead:   StatusConflict,

	ErrHouseholdNotFound: StatusNotFound,
	ErrDuplicateKKNumber: StatusBadRequest,
	ErrHeadRequired:      StatusBadRequest,
	ErrMemberExists:      StatusBadRequest,
	ErrMemberNotFound:    StatusNotFound,
	ErrHeadRemoval:       StatusConflict,

	ErrReportNotFound: StatusNotFound,
	ErrPartialFailure: StatusOK,

	ErrDatabase:       StatusInternalServerError,
	ErrRecordNotFound: StatusNotFound,
}

// GetMessage returns the message for an error code
func GetMessage(code int) string {
	if msg, ok := codeMessageMap[code]; ok {
		return msg
	}
	return "unknown error"
}

// GetStatus returns the HTTP status for an error code
func GetStatus(code int) int {
	if status, ok := codeStatusMap[code]; ok {
		return status
	}
	return StatusInternalServerError
}
