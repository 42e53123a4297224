package telegramlink

import "errors"

var (
	ErrLinkNotFound = errors.New("telegramlink.repository: link not found")
	ErrBuildQuery   = errors.New("telegramlink.repository: failed to build query")
	ErrExecQuery    = errors.New("telegramlink.repository: failed to execute query")
	ErrScanRow      = errors.New("telegramlink.repository: failed to scan row")
)
