package buddypress

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestActivityFilterValues(t *testing.T) {
	require := require.New(t)

	f := ActivityFilter{
		Page:    2,
		PerPage: 20,
		Type:    []string{"new_expense", "new_story"},
		UserID:  7,
	}
	vals, err := f.Values()
	require.NoError(err)
	require.Equal("2", vals.Get("page"))
	require.Equal("20", vals.Get("per_page"))
	require.Equal("7", vals.Get("user_id"))
	// array-valued fields are serialized as indexed array parameters
	require.Equal("new_expense", vals.Get("type[0]"))
	require.Equal("new_story", vals.Get("type[1]"))
	require.Empty(vals["type"])
}

func TestActivityFilterZeroValuesOmitted(t *testing.T) {
	require := require.New(t)

	vals, err := ActivityFilter{}.Values()
	require.NoError(err)
	require.Empty(vals)
}

func TestActivityFilterSignature(t *testing.T) {
	require := require.New(t)

	a := ActivityFilter{Type: []string{"new_expense"}, Page: 1}
	b := ActivityFilter{Page: 1, Type: []string{"new_expense"}}
	c := ActivityFilter{Type: []string{"new_story"}, Page: 1}

	sigA, err := a.Signature()
	require.NoError(err)
	sigB, err := b.Signature()
	require.NoError(err)
	sigC, err := c.Signature()
	require.NoError(err)

	require.Equal(sigA, sigB)
	require.NotEqual(sigA, sigC)
}

func TestFilterAllTypes(t *testing.T) {
	require := require.New(t)

	all := FilterAllTypes()
	require.Len(all, 6)
	for _, kind := range []Kind{KindUpdate, KindExpense, KindRoutePoint, KindConnectivity, KindStory, KindSpotHunt} {
		require.Contains(all, string(kind))
	}
}
