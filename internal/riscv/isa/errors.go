package isa

import "errors"

var (
	ErrInvalidExtension = errors.New("invalid extension letter")
	ErrInvalidPrivilege = errors.New("invalid privilege mode")
	ErrInvalidXlen      = errors.New("invalid register width")
)
