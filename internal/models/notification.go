// Package models defines structures used across the application
package models

import "github.com/harshitrajsinha/onecall-weather-go/internal/onecall"

// NotificationRequest is the body accepted by the notifications endpoint
type NotificationRequest struct {
	Notification string                `json:"notification"`
	Payload      onecall.RequestConfig `json:"payload"`
}
