package sealed

import sealingDomain "github.com/allisson/sealfield/internal/sealing/domain"

// Errors returned by codecs and field hooks. Match them with errors.Is.
var (
	ErrInvalidKeyLength      = sealingDomain.ErrInvalidKeyLength
	ErrMasterKeyNotSet       = sealingDomain.ErrMasterKeyNotSet
	ErrRandomnessUnavailable = sealingDomain.ErrRandomnessUnavailable
	ErrEncryptionFailed      = sealingDomain.ErrEncryptionFailed
	ErrMalformedToken        = sealingDomain.ErrMalformedToken
	ErrDecryptionFailed      = sealingDomain.ErrDecryptionFailed
	ErrSerializationFailed   = sealingDomain.ErrSerializationFailed
	ErrDeserializationFailed = sealingDomain.ErrDeserializationFailed
)
