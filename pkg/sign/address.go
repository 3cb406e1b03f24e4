package sign

import (
	"github.com/ethereum/go-ethereum/common"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
)

// AddressLength is the byte width of a derived address.
const AddressLength = common.AddressLength

// Address is a 20-byte identity handle derived from a public key.
type Address = common.Address

// PubkeyToAddress derives the address bound to pub: the low 20 bytes of the
// Keccak-256 digest of the raw public key.
func PubkeyToAddress(pub PubKey) Address {
	return common.BytesToAddress(ethcrypto.Keccak256(pub[:])[12:])
}
