package sign

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
)

func TestPubkeyToAddress(t *testing.T) {
	t.Run("takes the low 20 bytes of the keccak digest", func(t *testing.T) {
		pub := GenerateKeyPair().PubKey()

		want := common.BytesToAddress(ethcrypto.Keccak256(pub.Bytes())[12:])
		assert.Equal(t, want, PubkeyToAddress(pub))
	})

	t.Run("is deterministic", func(t *testing.T) {
		pub := GenerateKeyPair().PubKey()
		assert.Equal(t, PubkeyToAddress(pub), PubkeyToAddress(pub))
	})

	t.Run("distinct keys derive distinct addresses", func(t *testing.T) {
		a := PubkeyToAddress(GenerateKeyPair().PubKey())
		b := PubkeyToAddress(GenerateKeyPair().PubKey())
		assert.NotEqual(t, a, b)
	})
}
