package service

import "fmt"

var (
	ErrNoRecords           = fmt.Errorf("no valid log entries found in the file")
	ErrUploadAlreadyExists = fmt.Errorf("upload already exists")
	ErrUploadNotFound      = fmt.Errorf("upload not found")
	ErrCannotSaveUpload    = fmt.Errorf("cannot save upload")
	ErrCannotGetLogs       = fmt.Errorf("cannot get logs")
	ErrInvalidPlugin       = fmt.Errorf("plugin name and address must be specified")
	ErrPluginNotFound      = fmt.Errorf("plugin not registered")
	ErrPluginFailed        = fmt.Errorf("plugin call failed")
)
