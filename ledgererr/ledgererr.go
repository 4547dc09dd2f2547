/*
Copyright 2024 Blnk Finance Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package ledgererr

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

type ErrorCode string

const (
	ErrInvalidArgument   ErrorCode = "INVALID_ARGUMENT"
	ErrDuplicateAccount  ErrorCode = "DUPLICATE_ACCOUNT"
	ErrAccountNotFound   ErrorCode = "ACCOUNT_NOT_FOUND"
	ErrInsufficientFunds ErrorCode = "INSUFFICIENT_FUNDS"
	ErrSameAccount       ErrorCode = "SAME_ACCOUNT"
)

// Sentinels for errors.Is. Only the code takes part in the comparison.
var (
	InvalidArgument   = Error{Code: ErrInvalidArgument}
	DuplicateAccount  = Error{Code: ErrDuplicateAccount}
	AccountNotFound   = Error{Code: ErrAccountNotFound}
	InsufficientFunds = Error{Code: ErrInsufficientFunds}
	SameAccount       = Error{Code: ErrSameAccount}
)

// Error is the single error type returned by the ledger core. Callers branch on
// Code rather than on the message text.
type Error struct {
	Code    ErrorCode   `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func (e Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Is reports whether target carries the same code.
func (e Error) Is(target error) bool {
	t, ok := target.(Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

func New(code ErrorCode, message string, details interface{}) Error {
	if details != nil {
		logrus.WithField("code", code).Debug(details)
	}
	return Error{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// CodeOf returns the code of a ledger error anywhere in err's chain, or an
// empty code when err is nil or foreign.
func CodeOf(err error) ErrorCode {
	var e Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// Message returns the human-readable part of err, dropping the code prefix
// for ledger errors.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var e Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
