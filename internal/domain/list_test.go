package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestListRoundTrip(t *testing.T) {
	lists := [][]string{
		{},
		{"kubernetes"},
		{"kubernetes", "observability", "apm"},
		{"with space", "trailing ", " leading"},
	}

	for _, l := range lists {
		if diff := cmp.Diff(l, SplitList(JoinList(l))); diff != "" {
			t.Errorf("round trip mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestListEmpty(t *testing.T) {
	assert.Equal(t, "", JoinList([]string{}))
	assert.Equal(t, "", JoinList(nil))

	got := SplitList("")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestNormaliseList(t *testing.T) {
	assert.Equal(t, "a,b,c", normaliseList(" a , b,,c ,"))
	assert.Equal(t, "", normaliseList(" , "))
}
