package plasm

import (
	"testing"

	"github.com/doug-martin/goqu/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scanInt(t *testing.T, ds *goqu.SelectDataset) int {
	t.Helper()

	var v int
	found, err := ds.Executor().ScanVal(&v)
	require.NoError(t, err)
	require.True(t, found)
	return v
}

func TestCountRows(t *testing.T) {
	gdb := newTestDB(t)

	assert.Equal(t, 5, scanInt(t, CountRows(gdb.From("pets"))))

	cats := MatchAll(gdb.From("pets"), Filters{"species": Scalar("cat")})
	assert.Equal(t, 2, scanInt(t, CountRows(cats)))
}

func TestCountDistinct(t *testing.T) {
	gdb := newTestDB(t)

	// Two pets share the name Fluffy.
	ds, err := CountDistinct(gdb.From("pets"), "name")
	require.NoError(t, err)

	assert.Equal(t, 4, scanInt(t, ds))
}

func TestSumMinMax(t *testing.T) {
	gdb := newTestDB(t)

	sum, err := Sum(gdb.From("pets"), "age")
	require.NoError(t, err)
	assert.Equal(t, 26, scanInt(t, sum))

	min, err := Min(gdb.From("pets"), "age")
	require.NoError(t, err)
	assert.Equal(t, 1, scanInt(t, min))

	max, err := Max(gdb.From("pets"), goqu.C("age"))
	require.NoError(t, err)
	assert.Equal(t, 10, scanInt(t, max))
}

func TestAvg(t *testing.T) {
	gdb := newTestDB(t)

	ds, err := Avg(gdb.From("pets"), "age")
	require.NoError(t, err)

	var avg float64
	found, err := ds.Executor().ScanVal(&avg)
	require.NoError(t, err)
	require.True(t, found)
	assert.InDelta(t, 5.2, avg, 0.0001)
}

func TestDistinctBy(t *testing.T) {
	gdb := newTestDB(t)

	ds, err := DistinctBy(gdb.From("pets"), "species")
	require.NoError(t, err)

	var species []string
	err = ds.Order(goqu.C("species").Asc()).Executor().ScanVals(&species)
	require.NoError(t, err)
	assert.Equal(t, []string{"cat", "dog", "fish", "rabbit"}, species)
}

func TestAggregateRejectsBadFieldReference(t *testing.T) {
	_, err := Sum(goqu.From("pets"), 42)
	assert.Error(t, err)

	_, err = DistinctBy(goqu.From("pets"), "")
	assert.Error(t, err)
}
