package models

import "time"

// CommandResult is the uniform envelope returned by every command
// (create/update/delete). ID carries the affected entity's identity on
// success and is zero on failure.
type CommandResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      uint   `json:"id"`
}

// Ok builds a successful CommandResult.
func Ok(message string, id uint) CommandResult {
	return CommandResult{Success: true, Message: message, ID: id}
}

// Fail builds a failed CommandResult. Business-rule failures are always
// reported this way, never as Go errors.
func Fail(message string) CommandResult {
	return CommandResult{Success: false, Message: message}
}

// TokenResult is the CommandResult-shaped payload returned by the token
// endpoints, augmented with the issued token strings and access expiry.
type TokenResult struct {
	CommandResult
	AccessToken  string    `json:"accessToken,omitempty"`
	RefreshToken string    `json:"refreshToken,omitempty"`
	Expires      time.Time `json:"expires,omitempty"`
}
