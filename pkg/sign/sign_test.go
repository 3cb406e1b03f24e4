package sign

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifiableContract(t *testing.T) {
	kp := GenerateKeyPair()
	sig := mustSign(t, kp, testMessage)

	// Callers can hold the capability without naming the scheme.
	var v Verifiable = sig

	pub, err := v.Recover(testMessage)
	require.NoError(t, err)
	assert.Equal(t, kp.PubKey(), pub)

	ok, err := v.VerifyPublic(kp.PubKey(), testMessage)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = v.VerifyAddress(PubkeyToAddress(kp.PubKey()), testMessage)
	require.NoError(t, err)
	assert.True(t, ok)

	assert.Len(t, v.Bytes(), SignatureLength)
}
