// Package response defines function used to send response to API request
package response

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"

	"github.com/harshitrajsinha/onecall-weather-go/internal/models"
)

const fallbackBody = `{"code": "INTERNAL_SERVER_ERROR", "message": "An unexpected error occurred", "error": {}}`

// SendResponseToClient creates and sends success response to API request
func SendResponseToClient(w http.ResponseWriter, statusCode int, message string, data interface{}) error {
	return writeJSON(w, statusCode, models.Response{
		Code:    http.StatusText(statusCode),
		Message: message,
		Data:    data,
	})
}

// SendErrorResponseToClient creates and sends error response to API request
func SendErrorResponseToClient(w http.ResponseWriter, statusName StatusName, errorDetails map[string]string) error {
	if errorDetails == nil {
		errorDetails = map[string]string{}
	}
	return writeJSON(w, GetStatusCode(statusName), models.ErrorResponse{
		Code:    string(statusName),
		Message: GetStatusMessage(statusName),
		Error:   errorDetails,
	})
}

// writeJSON encodes body before touching w so a failed encode still yields a clean 500
func writeJSON(w http.ResponseWriter, statusCode int, body interface{}) error {

	w.Header().Set("Content-Type", "application/json")

	var b bytes.Buffer
	if err := json.NewEncoder(&b).Encode(body); err != nil {
		log.Println(err)
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(fallbackBody))
		return err
	}

	w.WriteHeader(statusCode)
	_, err := b.WriteTo(w)
	return err
}
