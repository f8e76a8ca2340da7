package plasm

import (
	"errors"
	"testing"

	"github.com/doug-martin/goqu/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/doug-martin/goqu/v9/dialect/postgres"

	custom_error "github.com/codeodor/plasm/pkg/errors"
)

func TestSampleDefaultsToSingleRow(t *testing.T) {
	gdb := newTestDB(t)

	ds, err := Sample(gdb.From("pets").Select("id"))
	require.NoError(t, err)

	var ids []int
	require.NoError(t, ds.Executor().ScanVals(&ids))
	require.Len(t, ids, 1)
	assert.Contains(t, []int{1, 2, 3, 4, 5}, ids[0])
}

func TestSampleReturnsRequestedSize(t *testing.T) {
	gdb := newTestDB(t)

	ds, err := Sample(gdb.From("pets").Select("id"), 3)
	require.NoError(t, err)

	var ids []int
	require.NoError(t, ds.Executor().ScanVals(&ids))
	assert.Len(t, ids, 3)
	for _, id := range ids {
		assert.Contains(t, []int{1, 2, 3, 4, 5}, id)
	}
}

func TestSampleUsesNativeRandomPrimitive(t *testing.T) {
	ds, err := Sample(goqu.Dialect("postgres").From("pets"), 2)
	require.NoError(t, err)

	assert.Contains(t, toSQL(t, ds), "RANDOM()")
}

func TestSampleRejectsUnsupportedDialect(t *testing.T) {
	// goqu's default dialect has no random-ordering primitive registered.
	ds, err := Sample(goqu.From("pets"), 2)
	assert.Nil(t, ds)

	var dialectErr *custom_error.UnsupportedDialectError
	require.True(t, errors.As(err, &dialectErr))
	assert.Equal(t, "sample", dialectErr.Operation)
}
