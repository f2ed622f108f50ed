package service

import "errors"

var (
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrUserNotFound            = errors.New("user was not found")

	ErrInvalidRecording = errors.New("invalid recording submission")
	ErrNoUserID         = errors.New("no user ID for call was given")
	ErrCallNotFound     = errors.New("call was not found")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
