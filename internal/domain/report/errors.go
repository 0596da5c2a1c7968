package report

import "errors"

var (
	ErrReportNotFound      = errors.New("report not found")
	ErrExaminationNotFound = errors.New("examination not found")
	ErrNoRespondents       = errors.New("examination has no usable respondents")
)
