package code

// HTTP status codes.
const (
	// StatusOK - 200: success.
	StatusOK = 200
	// StatusBadRequest - 400: invalid request parameters.
	StatusBadRequest = 400
	// StatusUnauthorized - 401: not authenticated.
	StatusUnauthorized = 401
	// StatusForbidden - 403: access denied.
	StatusForbidden = 403
	// StatusNotFound - 404: resource not found.
	StatusNotFound = 404
	// StatusConflict - 409: conflicting state.
	StatusConflict = 409
	// StatusInternalServerError - 500: internal server error.
	StatusInternalServerError = 500
	// StatusTooManyRequests - 429: too many requests.
	StatusTooManyRequests = 429
)

// Generic error codes (100xxx).
const (
	// ErrSuccess - 200: success.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500: unknown error.
	ErrUnknown
	// ErrBind - 400: request binding error.
	ErrBind
	// ErrValidation - 400: request validation error.
	ErrValidation
	// ErrTokenInvalid - 401: invalid token.
	ErrTokenInvalid
	// ErrTooManyRequests - 429: request rate too high.
	ErrTooManyRequests
)

// Registrar account error codes (101xxx).
const (
	// ErrUserNotFound - 404: account not found.
	ErrUserNotFound int = iota + 101000
	// ErrUserAlreadyExist - 400: account already exists.
	ErrUserAlreadyExist
	// ErrUserPasswordIncorrect - 401: incorrect password.
	ErrUserPasswordIncorrect
)

// Resident error codes (102xxx).
const (
	// ErrResidentNotFound - 404: resident not found.
	ErrResidentNotFound int = iota + 102000
	// ErrDuplicateNIK - 400: NIK already registered.
	ErrDuplicateNIK
	// ErrResidentDeceased - 400: resident already recorded as deceased.
	ErrResidentDeceased
	// ErrResidentIsHead - 409: resident still heads a household.
	ErrResidentIsHead
)

// Household error codes (103xxx).
const (
	// ErrHouseholdNotFound - 404: household not found.
	ErrHouseholdNotFound int = iota + 103000
	// ErrDuplicateKKNumber - 400: KK number already registered.
	ErrDuplicateKKNumber
	// ErrHeadRequired - 400: member list must contain exactly one head.
	ErrHeadRequired
	// ErrMemberExists - 400: resident is already a member of the household.
	ErrMemberExists
	// ErrMemberNotFound - 404: membership record not found.
	ErrMemberNotFound
	// ErrHeadRemoval - 409: the head cannot be removed directly.
	ErrHeadRemoval
)

// Vital report error codes (104xxx).
const (
	// ErrReportNotFound - 404: report not found.
	ErrReportNotFound int = iota + 104000
	// ErrPartialFailure - 200: a multi-step registration partially
	// succeeded; the report itself was saved.
	ErrPartialFailure
)

// Database error codes (105xxx).
const (
	// ErrDatabase - 500: database error.
	ErrDatabase int = iota + 105000
	// ErrRecordNotFound - 404: record not found.
	ErrRecordNotFound
)
