// Package domain defines the core types, constants and errors of field sealing:
// the token wire format, master key handling and the KMS port used to unwrap keys.
package domain

const (
	// NonceSize is the AES-GCM nonce length in bytes (96 bits).
	//
	// Every token starts with exactly NonceSize bytes of nonce. The wire format
	// carries no version byte, so this value is fixed for the lifetime of the format.
	NonceSize = 12

	// TagSize is the AES-GCM authentication tag length in bytes (128 bits).
	TagSize = 16

	// DerivedKeySize is the size of the per-operation encryption key, SHA-256 output
	// matching the AES-256 key size.
	DerivedKeySize = 32

	// DefaultMasterKeySize is the size of master keys generated by this module.
	// Master keys of any non-zero length are accepted; they are hashed before use.
	DefaultMasterKeySize = 32

	// EmptyPlaintextFrameSize is the decoded size of a token sealing an empty
	// plaintext: the nonce followed by the tag alone. Shorter frames decode but
	// can never authenticate.
	EmptyPlaintextFrameSize = NonceSize + TagSize
)
