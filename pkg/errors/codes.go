package errors

import (
	"net/http"
	"strings"
)

// ErrorCode is a string representation of a specific error condition.
type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

// Common error codes.
const (
	ErrCodeInternal           ErrorCode = "COMMON_001"
	ErrCodeBadRequest         ErrorCode = "COMMON_002"
	ErrCodeUnauthorized       ErrorCode = "COMMON_003"
	ErrCodeForbidden          ErrorCode = "COMMON_004"
	ErrCodeNotFound           ErrorCode = "COMMON_005"
	ErrCodeConflict           ErrorCode = "COMMON_006"
	ErrCodeTooManyRequests    ErrorCode = "COMMON_007"
	ErrCodeServiceUnavailable ErrorCode = "COMMON_008"
	ErrCodeTimeout            ErrorCode = "COMMON_009"
	ErrCodeValidation         ErrorCode = "COMMON_010"
	ErrCodeSerialization      ErrorCode = "COMMON_011"
	ErrCodeDatabaseError      ErrorCode = "COMMON_012"
	ErrCodeCacheError         ErrorCode = "COMMON_013"
	ErrCodeExternalService    ErrorCode = "COMMON_014"
	ErrCodeNotImplemented     ErrorCode = "COMMON_015"
	ErrCodeUnknown            ErrorCode = "COMMON_999"

	CodeOK ErrorCode = "OK"
)

// Tabular input module error codes.
const (
	ErrCodeInputFormat    ErrorCode = "TAB_001" // unsupported or unparseable file
	ErrCodeTooFewColumns  ErrorCode = "TAB_002" // fewer than two columns
	ErrCodeSheetNotFound  ErrorCode = "TAB_003"
	ErrCodeEmptyInput     ErrorCode = "TAB_004"
	ErrCodeHeaderMissing  ErrorCode = "TAB_005"
	ErrCodeRowReadFailure ErrorCode = "TAB_006"
)

// Region (gazetteer) module error codes.
const (
	ErrCodeBoundaryNotFound   ErrorCode = "REG_001"
	ErrCodeBoundaryLoadFailed ErrorCode = "REG_002"
	ErrCodeBoundaryDecode     ErrorCode = "REG_003"
	ErrCodeEmptyGazetteer     ErrorCode = "REG_004"
)

// Scoring module error codes.
const (
	ErrCodeUnknownDomain   ErrorCode = "SCR_001"
	ErrCodeNoBandMatch     ErrorCode = "SCR_002"
	ErrCodeInvalidWeights  ErrorCode = "SCR_003"
	ErrCodeMissingIndicator ErrorCode = "SCR_004"
)

// Pipeline module error codes.
const (
	ErrCodePipelineAborted ErrorCode = "PIPE_001"
	ErrCodeNoRowsMatched   ErrorCode = "PIPE_002"
)

// Upstream statistics source error codes.
const (
	ErrCodeUpstreamConfig ErrorCode = "SRC_001" // missing API key or base URL
	ErrCodeUpstreamFetch  ErrorCode = "SRC_002" // non-200 or transport failure
	ErrCodeUpstreamParse  ErrorCode = "SRC_003" // unexpected response payload
)

// Result store error codes.
const (
	ErrCodeResultNotFound   ErrorCode = "STORE_001"
	ErrCodeResultSaveFailed ErrorCode = "STORE_002"
	ErrCodeResultListFailed ErrorCode = "STORE_003"
)

// ErrorCodeHTTPStatus maps ErrorCodes to HTTP status codes.
var ErrorCodeHTTPStatus = map[ErrorCode]int{
	ErrCodeInternal:           http.StatusInternalServerError,
	ErrCodeBadRequest:         http.StatusBadRequest,
	ErrCodeUnauthorized:       http.StatusUnauthorized,
	ErrCodeForbidden:          http.StatusForbidden,
	ErrCodeNotFound:           http.StatusNotFound,
	ErrCodeConflict:           http.StatusConflict,
	ErrCodeTooManyRequests:    http.StatusTooManyRequests,
	ErrCodeServiceUnavailable: http.StatusServiceUnavailable,
	ErrCodeTimeout:            http.StatusGatewayTimeout,
	ErrCodeValidation:         http.StatusUnprocessableEntity,
	ErrCodeSerialization:      http.StatusInternalServerError,
	ErrCodeDatabaseError:      http.StatusInternalServerError,
	ErrCodeCacheError:         http.StatusInternalServerError,
	ErrCodeExternalService:    http.StatusInternalServerError,
	ErrCodeNotImplemented:     http.StatusNotImplemented,
	ErrCodeUnknown:            http.StatusInternalServerError,

	ErrCodeInputFormat:    http.StatusBadRequest,
	ErrCodeTooFewColumns:  http.StatusBadRequest,
	ErrCodeSheetNotFound:  http.StatusBadRequest,
	ErrCodeEmptyInput:     http.StatusBadRequest,
	ErrCodeHeaderMissing:  http.StatusBadRequest,
	ErrCodeRowReadFailure: http.StatusBadRequest,

	ErrCodeBoundaryNotFound:   http.StatusNotFound,
	ErrCodeBoundaryLoadFailed: http.StatusInternalServerError,
	ErrCodeBoundaryDecode:     http.StatusInternalServerError,
	ErrCodeEmptyGazetteer:     http.StatusInternalServerError,

	ErrCodeUnknownDomain:    http.StatusBadRequest,
	ErrCodeNoBandMatch:      http.StatusInternalServerError,
	ErrCodeInvalidWeights:   http.StatusInternalServerError,
	ErrCodeMissingIndicator: http.StatusBadRequest,

	ErrCodePipelineAborted: http.StatusBadRequest,
	ErrCodeNoRowsMatched:   http.StatusBadRequest,

	ErrCodeUpstreamConfig: http.StatusInternalServerError,
	ErrCodeUpstreamFetch:  http.StatusBadGateway,
	ErrCodeUpstreamParse:  http.StatusBadGateway,

	ErrCodeResultNotFound:   http.StatusNotFound,
	ErrCodeResultSaveFailed: http.StatusInternalServerError,
	ErrCodeResultListFailed: http.StatusInternalServerError,
}

// ErrorCodeMessage maps ErrorCodes to default messages.
var ErrorCodeMessage = map[ErrorCode]string{
	ErrCodeInternal:           "internal server error",
	ErrCodeBadRequest:         "bad request",
	ErrCodeUnauthorized:       "unauthorized",
	ErrCodeForbidden:          "forbidden",
	ErrCodeNotFound:           "resource not found",
	ErrCodeConflict:           "resource conflict",
	ErrCodeTooManyRequests:    "too many requests",
	ErrCodeServiceUnavailable: "service unavailable",
	ErrCodeTimeout:            "request timeout",
	ErrCodeValidation:         "validation failed",
	ErrCodeSerialization:      "serialization failed",
	ErrCodeDatabaseError:      "database error",
	ErrCodeCacheError:         "cache error",
	ErrCodeExternalService:    "external service error",
	ErrCodeNotImplemented:     "not implemented",
	ErrCodeUnknown:            "unknown error",

	ErrCodeInputFormat:    "unsupported or unreadable tabular file",
	ErrCodeTooFewColumns:  "input file must contain at least two columns",
	ErrCodeSheetNotFound:  "worksheet not found",
	ErrCodeEmptyInput:     "input file contains no data rows",
	ErrCodeHeaderMissing:  "input file contains no header row",
	ErrCodeRowReadFailure: "failed to read input rows",

	ErrCodeBoundaryNotFound:   "no boundary matches the given name",
	ErrCodeBoundaryLoadFailed: "failed to load boundary features",
	ErrCodeBoundaryDecode:     "failed to decode boundary feature collection",
	ErrCodeEmptyGazetteer:     "boundary feature collection is empty",

	ErrCodeUnknownDomain:    "unknown analysis domain",
	ErrCodeNoBandMatch:      "no category band matched the value",
	ErrCodeInvalidWeights:   "indicator weights are invalid",
	ErrCodeMissingIndicator: "required indicator is missing",

	ErrCodePipelineAborted: "analysis pipeline aborted",
	ErrCodeNoRowsMatched:   "no input rows matched a boundary",

	ErrCodeUpstreamConfig: "statistics API key is not configured",
	ErrCodeUpstreamFetch:  "failed to fetch data from statistics API",
	ErrCodeUpstreamParse:  "failed to parse statistics API response",

	ErrCodeResultNotFound:   "analysis result not found",
	ErrCodeResultSaveFailed: "failed to save analysis result",
	ErrCodeResultListFailed: "failed to list analysis results",
}

// HTTPStatusForCode returns the HTTP status code for an ErrorCode.
func HTTPStatusForCode(code ErrorCode) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// DefaultMessageForCode returns the default message for an ErrorCode.
func DefaultMessageForCode(code ErrorCode) string {
	if msg, ok := ErrorCodeMessage[code]; ok {
		return msg
	}
	return "unknown error"
}

// IsClientError returns true if the ErrorCode corresponds to a 4xx HTTP status.
func IsClientError(code ErrorCode) bool {
	status := HTTPStatusForCode(code)
	return status >= 400 && status < 500
}

// IsServerError returns true if the ErrorCode corresponds to a 5xx HTTP status.
func IsServerError(code ErrorCode) bool {
	status := HTTPStatusForCode(code)
	return status >= 500 && status < 600
}

// ModuleForCode returns the module prefix of an ErrorCode.
func ModuleForCode(code ErrorCode) string {
	parts := strings.Split(string(code), "_")
	if len(parts) > 0 && parts[0] != "" {
		return parts[0]
	}
	return "UNKNOWN"
}
