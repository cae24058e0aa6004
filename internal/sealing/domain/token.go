package domain

import (
	"encoding/base64"
)

// tokenEncoding is the URL-safe base64 alphabet without padding. Strict decoding
// rejects non-zero trailing bits, so every token has exactly one accepted spelling.
var tokenEncoding = base64.RawURLEncoding.Strict()

// EncodeToken frames a nonce and its ciphertext (tag appended) into a token:
//
//	base64url_nopad(nonce[12] || ciphertext[N] || tag[16])
//
// The result is pure ASCII and safe to embed in JSON string fields.
func EncodeToken(nonce, ciphertext []byte) string {
	frame := make([]byte, 0, len(nonce)+len(ciphertext))
	frame = append(frame, nonce...)
	frame = append(frame, ciphertext...)
	return tokenEncoding.EncodeToString(frame)
}

// DecodeToken splits a token back into nonce and ciphertext at the fixed nonce offset.
//
// Returns ErrMalformedToken if the token is not canonical unpadded URL-safe base64
// or decodes to fewer than NonceSize bytes. A frame shorter than EmptyPlaintextFrameSize
// is still returned; it fails authentication at decryption time.
func DecodeToken(token string) (nonce, ciphertext []byte, err error) {
	frame, err := tokenEncoding.DecodeString(token)
	if err != nil {
		return nil, nil, ErrMalformedToken
	}
	if len(frame) < NonceSize {
		return nil, nil, ErrMalformedToken
	}
	return frame[:NonceSize:NonceSize], frame[NonceSize:], nil
}
