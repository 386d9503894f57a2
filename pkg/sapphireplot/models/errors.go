package models

import "errors"

// ErrNotFound indicates a missing folder, file, field or parameter.
var ErrNotFound = errors.New("not found")

// ErrParse indicates a malformed parameter log.
var ErrParse = errors.New("parse error")

// ErrInvalidArgument indicates an argument outside its valid range.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrEmpty indicates an operation that cannot proceed on empty data.
var ErrEmpty = errors.New("empty data")
