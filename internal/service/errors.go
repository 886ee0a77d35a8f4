package service

import "errors"

// Application-level errors returned by services.
var (
	// ErrInvalidCredentials is returned by Login for both an unknown username
	// and a wrong password. The two cases are deliberately indistinguishable
	// to the caller; the store-level cause is only ever logged internally.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNotPostOwner is returned when an authenticated user attempts to
	// mutate or delete a post they do not own.
	ErrNotPostOwner = errors.New("requester does not own this post")
)
