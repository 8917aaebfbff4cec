package importer

import (
	"fmt"
	"io"

	"github.com/foundx/foundx/internal/fund"
	"github.com/foundx/foundx/internal/importer/statement"
)

type Service struct {
	statementImporter Importer
}

func NewService() *Service {
	return &Service{
		statementImporter: statement.NewParser(),
	}
}

// Import parses an uploaded expense document into expense params. The
// caller still owns scoping: startup and creator are filled in by the
// handler before anything is persisted.
func (s *Service) Import(format Format, r io.Reader) ([]fund.CreateExpenseParams, error) {
	var imp Importer

	switch format {
	case FormatStatement:
		imp = s.statementImporter
	default:
		return nil, fmt.Errorf("unknown import format: %s", format)
	}

	return imp.Parse(r)
}
