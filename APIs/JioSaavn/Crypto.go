package JioSaavn

import (
	"crypto/des"
	"encoding/base64"
	"fmt"
	"strings"
)

// The upstream encrypts media links with the same fixed DES key for every client.
// It is protocol plumbing, not secret material, so it lives here rather than in configuration.
var MediaLinkKey = []byte("38346591")

// Extensions a decrypted media link may legitimately end in.
var MediaFileExtensions = []string{"mp4", "mp3", "webm", "m4a", "opus"}

// DecryptMediaURL reverses the upstream's DES-ECB obfuscation of a media link and sanitizes the result.
// Failures here are recoverable; callers log and carry a nil download URL instead of failing the request.
func DecryptMediaURL(Encrypted string) (string, error) {

	Ciphertext, ErrorDecoding := base64.StdEncoding.DecodeString(Encrypted)

	if ErrorDecoding != nil {

		return "", fmt.Errorf("invalid base64 media URL: %w", ErrorDecoding)

	}

	Block, ErrorCreatingCipher := des.NewCipher(MediaLinkKey)

	if ErrorCreatingCipher != nil {

		return "", ErrorCreatingCipher

	}

	if len(Ciphertext) == 0 || len(Ciphertext)%Block.BlockSize() != 0 {

		return "", fmt.Errorf("ciphertext length %d is not a whole number of blocks", len(Ciphertext))

	}

	// ECB: each 8-byte block decrypts independently, no IV

	Plaintext := make([]byte, len(Ciphertext))

	for Offset := 0; Offset < len(Ciphertext); Offset += Block.BlockSize() {

		Block.Decrypt(Plaintext[Offset:], Ciphertext[Offset:])

	}

	return sanitizeMediaURL(Plaintext), nil

}

// sanitizeMediaURL strips cipher-padding artifacts from decrypted link text and normalizes the scheme.
func sanitizeMediaURL(Plaintext []byte) string {

	// Keeps printable ASCII only; padding and stray control bytes drop out here

	var Builder strings.Builder

	Builder.Grow(len(Plaintext))

	for _, Byte := range Plaintext {

		if Byte >= 32 && Byte < 127 {

			Builder.WriteByte(Byte)

		}

	}

	Cleaned := Builder.String()

	// Printable garbage can survive after the file extension; cut the tail down to a known extension

	if Dot := strings.LastIndex(Cleaned, "."); Dot >= 0 {

		Tail := strings.ToLower(Cleaned[Dot+1:])

		for _, Extension := range MediaFileExtensions {

			if strings.HasPrefix(Tail, Extension) {

				Cleaned = Cleaned[:Dot+1] + Extension
				break

			}

		}

	}

	Cleaned = strings.ReplaceAll(Cleaned, "@", "")
	Cleaned = strings.ReplaceAll(Cleaned, "http:", "https:")

	return Cleaned

}
