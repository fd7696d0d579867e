package s3

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sellersuite/internal/domain"
)

func TestObjectKey(t *testing.T) {
	key, err := objectKey("outputs", "b2cs_monthly_20250509_140307.csv")
	require.NoError(t, err)
	assert.Equal(t, "outputs/b2cs_monthly_20250509_140307.csv", key)

	key, err = objectKey("tenant/a/uploads/", "may.xlsx")
	require.NoError(t, err)
	assert.Equal(t, "tenant/a/uploads/may.xlsx", key)

	key, err = objectKey("", "may.xlsx")
	require.NoError(t, err)
	assert.Equal(t, "may.xlsx", key)
}

func TestObjectKey_RejectsPaths(t *testing.T) {
	for _, name := range []string{"", ".", "..", "../x.csv", "a/b.csv"} {
		_, err := objectKey("outputs", name)
		assert.ErrorIs(t, err, domain.ErrInvalidFilename, name)
	}
}
