package importer

import (
	"io"

	"github.com/foundx/foundx/internal/fund"
)

type Format string

const (
	FormatStatement Format = "statement"
)

type Importer interface {
	Parse(r io.Reader) ([]fund.CreateExpenseParams, error)
}
