package domain

import "errors"

var (
	ErrTaskNotFound = errors.New("task not found")
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already registered")

	// ErrInvalidCredentials covers both unknown email and wrong password so
	// login responses never reveal which one failed.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrInvalidEmail     = errors.New("invalid email address")
	ErrUsernameTooShort = errors.New("username too short")
	ErrPasswordTooShort = errors.New("password too short")
)
