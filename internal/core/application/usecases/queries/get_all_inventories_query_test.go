package queries_test

import (
	"testing"

	"storefront/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetAllInventoriesQuery_Valid(t *testing.T) {
	query := queries.NewGetAllInventoriesQuery()
	err := query.Validate()
	require.NoError(t, err)
}

func TestGetAllInventoriesQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetAllInventoriesQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetAllInventoriesQueryIsNotConstructed)
}
