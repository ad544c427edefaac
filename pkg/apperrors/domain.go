package apperrors

import (
	"net/http"
)

// Predefined errors for the auth and resource domains. Wrapping factories
// live in errors.go; everything here is a static, reusable value.

// --- Auth & account state ---

var ErrUserAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"User already exists",
	http.StatusConflict,
)

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

var ErrAccountNotVerified = New(
	CodeForbidden,
	"auth",
	"Account not verified",
	http.StatusForbidden,
)

var ErrAccountDisabled = New(
	CodeForbidden,
	"auth",
	"Account disabled",
	http.StatusForbidden,
)

var ErrInvalidOTP = New(
	CodeValidationFailed,
	"auth",
	"Invalid otp",
	http.StatusBadRequest,
)

var ErrWrongCurrentPassword = New(
	CodeValidationFailed,
	"auth",
	"Current password is incorrect",
	http.StatusBadRequest,
)

// --- Resources ---

var ErrUserNotFound = New(
	CodeNotFound,
	"user",
	"User not found",
	http.StatusNotFound,
)

var ErrListingNotFound = New(
	CodeNotFound,
	"listing",
	"Listing not found",
	http.StatusNotFound,
)

var ErrProfileAlreadyExists = New(
	CodeConflict,
	"profile",
	"User profile already exists",
	http.StatusConflict,
)

// --- Favourites ---

var ErrAlreadyFavourite = New(
	CodeConflict,
	"favourites",
	"Listing already in favorites",
	http.StatusConflict,
)

var ErrNotInFavourites = New(
	CodeValidationFailed,
	"favourites",
	"Listing not found in favorites",
	http.StatusBadRequest,
)

// --- Uploads & media ---

// ErrTooManyFiles guards the per-listing image cap at creation time.
var ErrTooManyFiles = New(
	CodeLimitExceeded,
	"media",
	"You can upload a maximum of 2 images",
	http.StatusBadRequest,
)

var ErrNoFileUploaded = New(
	CodeValidationFailed,
	"media",
	"No file uploaded",
	http.StatusBadRequest,
)

var ErrRemoteDeleteFailed = New(
	CodeExternalServiceError,
	"media",
	"Failed to delete file from media store",
	http.StatusInternalServerError,
)
