package shell

import "errors"

var (
	// ErrDuplicatePage is returned by Initialize when two definitions share a page id.
	ErrDuplicatePage = errors.New("duplicate page identifier")

	// ErrEmptyPageID is returned by Initialize for a definition without a page id.
	ErrEmptyPageID = errors.New("empty page identifier")

	// ErrDispatch wraps a failure returned by the Dispatcher. Shell state is
	// already committed when it is returned.
	ErrDispatch = errors.New("navigation dispatch failed")

	// ErrUnknownLayoutState is reported when a layout state has no transition.
	ErrUnknownLayoutState = errors.New("unknown layout state")
)
