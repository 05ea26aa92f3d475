package sheet

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsmatters/opsmatters-media-sub001/internal/domain"
)

func TestRegistryResolve(t *testing.T) {
	t.Parallel()

	r := DefaultRegistry()
	for _, ct := range domain.ContentTypes() {
		p, err := r.Resolve(ct)
		require.NoError(t, err)
		assert.Equal(t, ct, p.Type())
	}

	_, err := NewRegistry().Resolve(domain.TypePost)
	assert.ErrorIs(t, err, domain.ErrUnknownContentType)
}

type stubParser struct{}

func (stubParser) Type() domain.ContentType { return domain.TypeImage }

func (stubParser) Parse(row []string) (*domain.Content, error) {
	return &domain.Content{Item: domain.Item{Type: domain.TypeImage, Title: row[0]}}, nil
}

func TestRegistryRegisterReplaces(t *testing.T) {
	t.Parallel()

	r := DefaultRegistry()
	r.Register(stubParser{})

	p, err := r.Resolve(domain.TypeImage)
	require.NoError(t, err)
	c, err := p.Parse([]string{"only"})
	require.NoError(t, err)
	assert.Equal(t, "only", c.Title)
}

func TestReadRows(t *testing.T) {
	t.Parallel()

	header := strings.Join(domain.RowHeader(domain.TypeImage), ",")
	src := header + "\n" +
		`1,2024-01-01,"Diagram, annotated",,acme,,img.png,,,,sheet,1,0` + "\n" +
		"2,2024-01-02,Short\n"

	rows, err := ReadRows(strings.NewReader(src), domain.TypeImage)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Diagram, annotated", rows[0][2])
	assert.Len(t, rows[1], 3)

	c, err := NewLayoutParser(domain.TypeImage).Parse(rows[0])
	require.NoError(t, err)
	assert.Equal(t, "Diagram, annotated", c.Title)
	assert.True(t, c.Published)

	_, err = NewLayoutParser(domain.TypeImage).Parse(rows[1])
	assert.ErrorIs(t, err, domain.ErrTooFewColumns)
}

func TestReadRowsWithoutHeader(t *testing.T) {
	t.Parallel()

	rows, err := ReadRows(strings.NewReader("a,b\nc,d\n"), domain.TypePost)
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	rows, err = ReadRows(strings.NewReader(""), domain.TypePost)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestReadRowsMalformed(t *testing.T) {
	t.Parallel()

	_, err := ReadRows(strings.NewReader("a,\"unterminated\n"), domain.TypePost)
	assert.Error(t, err)
}
