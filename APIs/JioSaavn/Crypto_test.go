package JioSaavn

import (
	"crypto/des"
	"encoding/base64"
	"strings"
	"testing"
)

// encryptMediaURL applies the upstream's obfuscation so decryption can be exercised offline.
// Null-byte padding mirrors the non-printable cipher padding the sanitizer must drop.
func encryptMediaURL(t *testing.T, Plaintext string) string {

	t.Helper()

	Block, ErrorCreatingCipher := des.NewCipher(MediaLinkKey)

	if ErrorCreatingCipher != nil {

		t.Fatalf("creating cipher: %v", ErrorCreatingCipher)

	}

	Padded := []byte(Plaintext)

	for len(Padded)%Block.BlockSize() != 0 {

		Padded = append(Padded, 0x00)

	}

	Ciphertext := make([]byte, len(Padded))

	for Offset := 0; Offset < len(Padded); Offset += Block.BlockSize() {

		Block.Encrypt(Ciphertext[Offset:], Padded[Offset:])

	}

	return base64.StdEncoding.EncodeToString(Ciphertext)

}

func TestDecryptMediaURLRoundTrip(t *testing.T) {

	Cases := []struct {

		Name      string
		Plaintext string
		Want      string

	}{

		{"scheme upgraded", "http://aac.saavncdn.com/237/track_96.mp4", "https://aac.saavncdn.com/237/track_96.mp4"},
		{"https preserved", "https://aac.saavncdn.com/237/track_96.mp4", "https://aac.saavncdn.com/237/track_96.mp4"},
		{"at signs stripped", "http://aac@saavncdn.com/track.mp3", "https://aacsaavncdn.com/track.mp3"},
		{"uppercase extension lowered", "http://cdn.test/track.MP4", "https://cdn.test/track.mp4"},
		{"printable garbage after extension cut", "http://cdn.test/track.mp4ZZoT", "https://cdn.test/track.mp4"},
		{"opus kept", "http://cdn.test/track.opus", "https://cdn.test/track.opus"},

	}

	for _, Case := range Cases {

		t.Run(Case.Name, func(t *testing.T) {

			Decrypted, ErrorDecrypting := DecryptMediaURL(encryptMediaURL(t, Case.Plaintext))

			if ErrorDecrypting != nil {

				t.Fatalf("DecryptMediaURL returned error: %v", ErrorDecrypting)

			}

			if Decrypted != Case.Want {

				t.Errorf("DecryptMediaURL = %q, want %q", Decrypted, Case.Want)

			}

			if !strings.HasPrefix(Decrypted, "https://") {

				t.Errorf("decrypted URL %q is not https", Decrypted)

			}

		})

	}

}

func TestDecryptMediaURLRejectsBadInput(t *testing.T) {

	if _, ErrorDecrypting := DecryptMediaURL(""); ErrorDecrypting == nil {

		t.Error("expected error for empty input")

	}

	if _, ErrorDecrypting := DecryptMediaURL("%%% not base64 %%%"); ErrorDecrypting == nil {

		t.Error("expected error for invalid base64")

	}

	// Valid base64 but not a whole number of DES blocks

	if _, ErrorDecrypting := DecryptMediaURL(base64.StdEncoding.EncodeToString([]byte("abc"))); ErrorDecrypting == nil {

		t.Error("expected error for partial block")

	}

}

func TestDecryptedDownloadURLNeverFails(t *testing.T) {

	if decryptedDownloadURL("") != nil {

		t.Error("expected nil for empty encrypted field")

	}

	if decryptedDownloadURL("!!garbage!!") != nil {

		t.Error("expected nil for undecryptable field")

	}

	if URL := decryptedDownloadURL(encryptMediaURL(t, "http://cdn.test/a.m4a")); URL == nil || *URL != "https://cdn.test/a.m4a" {

		t.Errorf("decryptedDownloadURL = %v, want https://cdn.test/a.m4a", URL)

	}

}
