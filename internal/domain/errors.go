package domain

import "errors"

var (
	ErrNotFound            = errors.New("resource not found")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
	ErrUploadFailed        = errors.New("file upload to storage failed")
	ErrUnreadableFile      = errors.New("file could not be parsed")
	ErrUnsupportedPortal   = errors.New("portal is not supported")
	ErrNoData              = errors.New("no data provided")
	ErrNoB2BData           = errors.New("no B2B data found in file")
	ErrInvalidFilename     = errors.New("invalid filename")
)
