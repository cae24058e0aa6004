// Package sealed encrypts individual fields of a value during JSON serialization.
//
// A field declared as Value[T] or Bytes is replaced in the encoded output by an
// opaque token: the URL-safe, unpadded base64 encoding of a 12-byte random
// nonce followed by the AES-256-GCM ciphertext and its 16-byte tag. The
// AES key is the SHA-256 digest of the configured master key. All other fields
// are encoded as usual.
//
//	type Account struct {
//		Private sealed.Value[string] `json:"private"`
//		Public  string               `json:"public"`
//	}
//
//	if err := sealed.Setup(masterKey); err != nil {
//		return err
//	}
//	data, err := json.Marshal(Account{Private: sealed.Of("private data"), Public: "public data"})
//
// Field hooks use the process-wide default codec configured by Setup. Code that
// wants an explicit key context should construct a Codec with New and call its
// Seal and Unseal methods directly.
package sealed
