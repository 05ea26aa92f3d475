package sheet

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/opsmatters/opsmatters-media-sub001/internal/domain"
	"github.com/opsmatters/opsmatters-media-sub001/internal/ports"
)

// LayoutParser parses rows with the positional layout of one content type.
type LayoutParser struct {
	contentType domain.ContentType
}

var _ ports.RowParser = LayoutParser{}

// NewLayoutParser builds a parser for t.
func NewLayoutParser(t domain.ContentType) LayoutParser {
	return LayoutParser{contentType: t}
}

// Type identifies the parser inside the registry.
func (p LayoutParser) Type() domain.ContentType {
	return p.contentType
}

func (p LayoutParser) Parse(row []string) (*domain.Content, error) {
	return domain.ParseRow(p.contentType, row)
}

// Registry keeps a mapping from content types to their row parsers.
type Registry struct {
	parsers map[domain.ContentType]ports.RowParser
}

// NewRegistry builds an empty registry.
func NewRegistry() *Registry {
	return &Registry{parsers: map[domain.ContentType]ports.RowParser{}}
}

// DefaultRegistry registers a layout parser for every content type.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, t := range domain.ContentTypes() {
		r.Register(NewLayoutParser(t))
	}
	return r
}

// Register adds or replaces a parser implementation.
func (r *Registry) Register(parser ports.RowParser) {
	if r.parsers == nil {
		r.parsers = map[domain.ContentType]ports.RowParser{}
	}
	r.parsers[parser.Type()] = parser
}

// Resolve returns the parser for t or an error if it is absent.
func (r *Registry) Resolve(t domain.ContentType) (ports.RowParser, error) {
	if parser, ok := r.parsers[t]; ok {
		return parser, nil
	}
	return nil, fmt.Errorf("%w: no row parser for %s", domain.ErrUnknownContentType, t)
}

// ReadRows reads every record of a CSV sheet. A first record that matches
// the layout header of t is dropped. Records may have any number of cells;
// short rows are reported later by the row parser.
func ReadRows(r io.Reader, t domain.ContentType) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows := [][]string{}
	first := true
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read sheet: %w", err)
		}
		if first {
			first = false
			if isHeader(record, t) {
				continue
			}
		}
		rows = append(rows, record)
	}
	return rows, nil
}

func isHeader(record []string, t domain.ContentType) bool {
	header := domain.RowHeader(t)
	if len(record) == 0 || len(header) == 0 {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(record[0]), header[0]) &&
		(len(record) < 2 || strings.EqualFold(strings.TrimSpace(record[1]), header[1]))
}
