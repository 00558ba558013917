package discord

import (
	"crypto/ed25519"
	"encoding/hex"
	"fmt"
)

// Interaction signature headers sent by Discord.
const (
	HeaderSignature = "X-Signature-Ed25519"
	HeaderTimestamp = "X-Signature-Timestamp"
)

// Interaction callback types used by the interactions endpoint.
const (
	InteractionTypePing             = 1
	InteractionCallbackPong         = 1
	InteractionCallbackChannelReply = 4
)

// VerifySignature checks a Discord interaction signature. The signed
// message is the timestamp header concatenated with the raw request
// body; key and signature arrive hex encoded.
func VerifySignature(publicKeyHex, signatureHex, timestamp string, body []byte) (bool, error) {
	key, err := hex.DecodeString(publicKeyHex)
	if err != nil {
		return false, fmt.Errorf("invalid public key encoding: %w", err)
	}
	if len(key) != ed25519.PublicKeySize {
		return false, fmt.Errorf("invalid public key length: %d", len(key))
	}

	sig, err := hex.DecodeString(signatureHex)
	if err != nil {
		return false, fmt.Errorf("invalid signature encoding: %w", err)
	}
	if len(sig) != ed25519.SignatureSize {
		return false, fmt.Errorf("invalid signature length: %d", len(sig))
	}

	message := append([]byte(timestamp), body...)
	return ed25519.Verify(ed25519.PublicKey(key), message, sig), nil
}
