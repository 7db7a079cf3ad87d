package schema

import "errors"

// ErrNodeNotFound indicates a command referenced a node index that no
// longer resolves to a leaf.
var ErrNodeNotFound = errors.New("node not found")

// ErrTabNotFound indicates a command referenced a tab index that no longer
// exists in its node.
var ErrTabNotFound = errors.New("tab not found")

// ErrInvalidConfig indicates the dock configuration failed validation.
var ErrInvalidConfig = errors.New("invalid dock config")

// ErrNoCredential indicates a share was requested without an access token.
var ErrNoCredential = errors.New("missing share credential")
