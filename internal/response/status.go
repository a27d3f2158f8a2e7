// Package response defines function used to send response to API request
package response

// StatusName represents custom string type for custom status code text
type StatusName string

const (
	// StatusBadRequestCode represents custom status text for HTTP status code 400
	StatusBadRequestCode StatusName = "BAD_REQUEST"
	// StatusUnauthorizedCode represents custom status text for HTTP status code 401
	StatusUnauthorizedCode StatusName = "UNAUTHORIZED"
	// StatusAuthTokenInvalidCode represents custom status text for HTTP status code 401
	StatusAuthTokenInvalidCode StatusName = "INVALID_AUTH_TOKEN"
	// StatusAuthTokenExpiredCode represents custom status text for HTTP status code 401
	StatusAuthTokenExpiredCode StatusName = "AUTH_TOKEN_EXPIRED"
	// StatusNotFoundCode represents custom status text for HTTP status code 404
	StatusNotFoundCode StatusName = "NOT_FOUND"
	// StatusMethodNotAllowedCode represents custom status text for HTTP status code 405
	StatusMethodNotAllowedCode StatusName = "METHOD_NOT_ALLOWED"
	// StatusInternalServerErrorCode represents custom status text for HTTP status code 500
	StatusInternalServerErrorCode StatusName = "INTERNAL_SERVER_ERROR"
	// StatusServiceUnavailableCode represents custom status text for HTTP status code 503
	StatusServiceUnavailableCode StatusName = "SERVICE_UNAVAILABLE"
)

// StatusMessageMap maps status message to respective status name
var StatusMessageMap = map[StatusName]string{
	StatusBadRequestCode:          "The request could not be understood",
	StatusUnauthorizedCode:        "Authentication is required",
	StatusAuthTokenInvalidCode:    "Authentication is invalid",
	StatusAuthTokenExpiredCode:    "Authentication token has expired. Please request a new one",
	StatusNotFoundCode:            "The requested resource was not found",
	StatusMethodNotAllowedCode:    "This HTTP method is not supported for this endpoint",
	StatusInternalServerErrorCode: "An unexpected error occurred",
	StatusServiceUnavailableCode:  "The service is currently unavailable",
}

// StatusNameMap maps status name to respective status code
var StatusNameMap = map[StatusName]int{
	StatusBadRequestCode:          400,
	StatusUnauthorizedCode:        401,
	StatusAuthTokenInvalidCode:    401,
	StatusAuthTokenExpiredCode:    401,
	StatusNotFoundCode:            404,
	StatusMethodNotAllowedCode:    405,
	StatusInternalServerErrorCode: 500,
	StatusServiceUnavailableCode:  503,
}

// GetStatusCode returns http status code based on status name
func GetStatusCode(statusName StatusName) int {
	if code, ok := StatusNameMap[statusName]; ok {
		return code
	}
	return 500
}

// GetStatusMessage returns message based on status name
func GetStatusMessage(statusName StatusName) string {
	if message, ok := StatusMessageMap[statusName]; ok {
		return message
	}
	return "An unexpected error occurred"
}
