package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDigest_Deterministic(t *testing.T) {
	d1, err := Load(sampleRecords()).Digest()
	require.NoError(t, err)
	d2, err := Load(sampleRecords()).Digest()
	require.NoError(t, err)

	assert.Equal(t, d1, d2)
	assert.Len(t, d1, 64)
}

func TestDigest_OrderSensitive(t *testing.T) {
	recs := sampleRecords()
	d1, err := Load(recs).Digest()
	require.NoError(t, err)

	recs[0], recs[1] = recs[1], recs[0]
	d2, err := Load(recs).Digest()
	require.NoError(t, err)

	assert.NotEqual(t, d1, d2)
}

func TestDigest_NFCNormalized(t *testing.T) {
	composed := []Record{{Name: "caf\u00e9", Organism: "x", Formula: "A"}}
	decomposed := []Record{{Name: "cafe\u0301", Organism: "x", Formula: "A"}}

	d1, err := Load(composed).Digest()
	require.NoError(t, err)
	d2, err := Load(decomposed).Digest()
	require.NoError(t, err)
	assert.Equal(t, d1, d2)
}

func TestMarshalCanonicalRecords(t *testing.T) {
	data, err := marshalCanonicalRecords([]Record{{Name: "<n>", Organism: "o", Formula: "2A"}})
	require.NoError(t, err)
	assert.Equal(t, `[{"formula":"2A","name":"<n>","organism":"o"}]`, string(data))
}
