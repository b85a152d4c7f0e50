package domain

import "errors"

var (
	ErrTestNotFound          = errors.New("test not found")
	ErrNoCurrentTest         = errors.New("no current test")
	ErrOrdinalNotRegistered  = errors.New("session ordinal not registered")
	ErrInvalidErrors         = errors.New("invalid errors type, expected string or []string")
	ErrLaunchFailed          = errors.New("session launch failed")
	ErrMalformedSession      = errors.New("malformed session response")
	ErrSessionDisconnected   = errors.New("remote session disconnected")
	ErrNoSuchElement         = errors.New("no such element")
	ErrEmptyPool             = errors.New("session pool is empty")
	ErrGroupNotReady         = errors.New("group is not ready")
	ErrCredentialsNotFound   = errors.New("device farm credentials not found")
	ErrUnsupportedDeviceKind = errors.New("unsupported device kind")
)
