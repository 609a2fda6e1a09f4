package report

import "errors"

var (
	ErrReportGenerationFailed = errors.New("failed to generate report")
	// ErrReportStoreFailed means the document was built but could not be
	// written to file storage.
	ErrReportStoreFailed = errors.New("failed to store report")
)
