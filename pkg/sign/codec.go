package sign

import (
	"encoding/json"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/fxamacker/cbor/v2"
)

// Ensure the signature implements the CBOR codec interfaces at compile time.
var _ cbor.Marshaler = Signature{}
var _ cbor.Unmarshaler = (*Signature)(nil)

// MarshalJSON implements the json.Marshaler interface, encoding the
// signature as a hex string.
func (s Signature) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (s *Signature) UnmarshalJSON(data []byte) error {
	var hexStr string
	if err := json.Unmarshal(data, &hexStr); err != nil {
		return err
	}
	decoded, err := hexutil.Decode(hexStr)
	if err != nil {
		return err
	}
	sig, err := SignatureFromBytes(decoded)
	if err != nil {
		return err
	}
	*s = sig
	return nil
}

// MarshalCBOR implements the cbor.Marshaler interface. The signature is
// written as a definite-length array of 96 individual byte elements rather
// than one byte string, so decoders bound to the fixed-width layout consume
// it element by element.
func (s Signature) MarshalCBOR() ([]byte, error) {
	elems := make([]uint, SignatureLength)
	for i, b := range s {
		elems[i] = uint(b)
	}
	return cbor.Marshal(elems)
}

// UnmarshalCBOR implements the cbor.Unmarshaler interface. Sequences with
// anything other than exactly 96 elements are rejected, and the target is
// only written once the whole sequence has decoded.
func (s *Signature) UnmarshalCBOR(data []byte) error {
	var elems []cbor.RawMessage
	if err := cbor.Unmarshal(data, &elems); err != nil {
		return err
	}
	if len(elems) != SignatureLength {
		return fmt.Errorf("invalid signature sequence length %d, want %d", len(elems), SignatureLength)
	}
	var decoded Signature
	for i, raw := range elems {
		if err := cbor.Unmarshal(raw, &decoded[i]); err != nil {
			return fmt.Errorf("invalid signature element %d: %w", i, err)
		}
	}
	*s = decoded
	return nil
}
