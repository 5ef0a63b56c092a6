package nullbackend

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBackendIsAllNoOps(t *testing.T) {
	b := New()
	require.NoError(t, b.BeginArray())
	require.NoError(t, b.EndArray())
	require.NoError(t, b.BeginObject())
	require.NoError(t, b.Key([]byte("k")))
	require.NoError(t, b.EndObject())
	require.NoError(t, b.StringValue([]byte("s")))
	require.NoError(t, b.IntegerValue(1))
	require.NoError(t, b.DoubleValue(1.5))
	require.NoError(t, b.BooleanValue(true))
	require.NoError(t, b.NullValue())

	result, err := b.Result()
	require.NoError(t, err)
	require.Equal(t, struct{}{}, result)
}
