package core

// error_messages.go maps technical errors to user-friendly messages with
// support codes. When an operator reports a problem, the code narrows the
// diagnosis without digging through logs.
//
// Codes by category:
//
//	VAL001-VAL005  field validation (required, length, email, phone, PAN)
//	DUP001-DUP002  email uniqueness (store / same file)
//	USR001         unknown user id
//	FILE001-FILE006 import file problems
//	STO001         storage failure
//	RATE001        request throttling
//	ERR000         fallback for unmatched errors
//
// Patterns are matched case-insensitively with strings.Contains; the first
// match wins, so specific patterns come before general ones.

import (
	"fmt"
	"strings"
)

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string // What happened (user-friendly)
	Action  string // What to do about it
	Code    string // Error code for support reference
}

type errorPattern struct {
	pattern string
	msg     UserMessage
}

var errorPatterns = []errorPattern{
	// Validation (VAL001-VAL005)
	{
		pattern: "is required",
		msg: UserMessage{
			Message: "A required field is empty",
			Action:  "Fill in every field before submitting",
			Code:    "VAL001",
		},
	},
	{
		pattern: "less than 50",
		msg: UserMessage{
			Message: "A name field is too long",
			Action:  "Names are limited to 50 characters",
			Code:    "VAL002",
		},
	},
	{
		pattern: "valid email",
		msg: UserMessage{
			Message: "The email address is not valid",
			Action:  "Use the form name@example.com",
			Code:    "VAL003",
		},
	},
	{
		pattern: "exactly 10 digits",
		msg: UserMessage{
			Message: "The phone number is not valid",
			Action:  "Enter exactly 10 digits with no spaces or symbols",
			Code:    "VAL004",
		},
	},
	{
		pattern: "pan",
		msg: UserMessage{
			Message: "The PAN number is not valid",
			Action:  "Use 5 letters, 4 digits, 1 letter (e.g., ABCDE1234F)",
			Code:    "VAL005",
		},
	},

	// Duplicates (DUP001-DUP002)
	{
		pattern: "found in the file",
		msg: UserMessage{
			Message: "The file contains the same email more than once",
			Action:  "Remove the duplicate rows and upload again",
			Code:    "DUP002",
		},
	},
	{
		pattern: "already exists",
		msg: UserMessage{
			Message: "A user with this email already exists",
			Action:  "Use a different email or update the existing user",
			Code:    "DUP001",
		},
	},

	// Lookup (USR001)
	{
		pattern: "user not found",
		msg: UserMessage{
			Message: "The user does not exist",
			Action:  "It may have been deleted; refresh the list",
			Code:    "USR001",
		},
	},

	// Import file (FILE001-FILE006)
	{
		pattern: "file is empty",
		msg: UserMessage{
			Message: "The uploaded file has no data rows",
			Action:  "Add at least one user row below the header",
			Code:    "FILE001",
		},
	},
	{
		pattern: "no file provided",
		msg: UserMessage{
			Message: "No file was selected",
			Action:  "Choose a CSV file to upload",
			Code:    "FILE002",
		},
	},
	{
		pattern: "invalid csv",
		msg: UserMessage{
			Message: "The file could not be read as CSV",
			Action:  "Export the sheet as comma-separated values and retry",
			Code:    "FILE003",
		},
	},
	{
		pattern: "too large",
		msg: UserMessage{
			Message: "The file exceeds the size limit",
			Action:  "Split the file and upload it in parts",
			Code:    "FILE004",
		},
	},
	{
		pattern: "too many rows",
		msg: UserMessage{
			Message: "The file has more rows than one import allows",
			Action:  "Split the file and upload it in parts",
			Code:    "FILE005",
		},
	},
	{
		pattern: "missing required columns",
		msg: UserMessage{
			Message: "The file is missing expected columns",
			Action:  "Download the template and match its headers",
			Code:    "FILE006",
		},
	},

	// Storage (STO001)
	{
		pattern: "storage",
		msg: UserMessage{
			Message: "Your data could not be persisted",
			Action:  "Nothing was saved; please try again",
			Code:    "STO001",
		},
	},

	// Rate limiting (RATE001)
	{
		pattern: "rate limit",
		msg: UserMessage{
			Message: "Too many requests",
			Action:  "Please wait a moment before trying again",
			Code:    "RATE001",
		},
	},
}

// defaultMessage is the ERR000 fallback. Check application logs for the
// original technical error when a user reports this code.
var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Please try again or contact support",
	Code:    "ERR000",
}

// MapError converts a technical error to a user-friendly message. It searches
// the known patterns case-insensitively and returns the first match, or the
// generic ERR000 fallback.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	errStr := strings.ToLower(err.Error())

	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}

	return defaultMessage
}

// FormatUserError creates a display string in the form
// "Message (Code: XXX). Action".
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (Code: %s). %s", msg.Message, msg.Code, msg.Action)
}
