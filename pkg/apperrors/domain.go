package apperrors

import (
	"net/http"
)

// Factories and predefined variables for the domain errors of the job
// board: accounts, postings, applications, interviews and uploads.

// ErrNotFound converts a repository miss (gorm.ErrRecordNotFound and
// friends) into a 404.
func ErrNotFound(err error, message string) *AppError {
	return Wrap(err, CodeNotFound, "resource", message, http.StatusNotFound)
}

// ErrConflict reports a duplicate unique field (409).
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// ErrInvalidStatus reports a disallowed status transition (400).
func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

// ErrUpload reports a failed artifact upload without leaking transport
// details to the caller.
func ErrUpload(err error, message string) *AppError {
	return Wrap(err, CodeUploadFailed, "upload", message, http.StatusInternalServerError)
}

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"account",
	"Email already registered",
	http.StatusConflict,
)

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusBadRequest,
)

var ErrInvalidAccountRole = New(
	CodeInvalidOperation,
	"account",
	"Invalid role for this operation",
	http.StatusBadRequest,
)

// ErrRoomTooEarly rejects room access before the scheduled start.
var ErrRoomTooEarly = New(
	CodeForbidden,
	"interview",
	"You can only join the meeting after the scheduled time",
	http.StatusForbidden,
)

// ErrRoomExpired rejects room access more than an hour past the start.
var ErrRoomExpired = New(
	CodeForbidden,
	"interview",
	"The video call session has expired",
	http.StatusForbidden,
)

var ErrInvalidFileType = New(
	CodeValidationFailed,
	"validation",
	"The provided file type is not allowed",
	http.StatusUnsupportedMediaType,
)

var ErrFileTooLarge = New(
	CodeValidationFailed,
	"validation",
	"File size exceeds the allowed limit",
	http.StatusRequestEntityTooLarge,
)
