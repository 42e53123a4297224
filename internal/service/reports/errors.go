package reports

import "errors"

var (
	// ErrInvalidReportType возвращается при неизвестном типе отчета
	ErrInvalidReportType = errors.New("invalid report type")

	// ErrInvalidPeriod возвращается при некорректном периоде отчета
	ErrInvalidPeriod = errors.New("invalid report period")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("reports service: internal error")
)
