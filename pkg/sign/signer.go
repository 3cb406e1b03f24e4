package sign

// Signer bundles a validated key pair with the address derived from its
// public key. It is a convenience for holders that sign repeatedly: the
// address is derived once at construction instead of on every use.
type Signer struct {
	keyPair KeyPair
	address Address
}

// NewSigner creates a Signer from an expanded private key. The key is
// validated the same way KeyPairFromPrivKey validates it.
func NewSigner(priv PrivKey) (*Signer, error) {
	kp, err := KeyPairFromPrivKey(priv)
	if err != nil {
		return nil, err
	}
	return NewSignerFromKeyPair(kp), nil
}

// NewSignerFromKeyPair creates a Signer from an existing key pair.
func NewSignerFromKeyPair(kp KeyPair) *Signer {
	return &Signer{keyPair: kp, address: PubkeyToAddress(kp.PubKey())}
}

// KeyPair returns the signer's key pair.
func (s *Signer) KeyPair() KeyPair { return s.keyPair }

// PubKey returns the signer's public key.
func (s *Signer) PubKey() PubKey { return s.keyPair.PubKey() }

// Address returns the address derived from the signer's public key.
func (s *Signer) Address() Address { return s.address }

// Sign signs the digest msg with the signer's private key.
func (s *Signer) Sign(msg Message) (Signature, error) {
	return Sign(s.keyPair.PrivKey(), msg)
}

// String implements fmt.Stringer as the signer's address, keeping key
// material out of formatted output.
func (s *Signer) String() string { return s.address.Hex() }
