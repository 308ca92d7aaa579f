package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError

	// Logging errors
	CreateLogFileError

	// Registry errors
	PatternNotFoundError
	PatternsFileError
	PatternDefinitionError

	// Compilation errors
	ValidationError
	UnresolvedPlaceholderError
	BindError
	BatchCompileError

	// Domain translator errors
	DomainNotFoundError
	TimeframeError

	// Command line errors
	InvalidInputError

	// Execution adapter errors
	DBConnectionError
	DBNotConnectedError
)
