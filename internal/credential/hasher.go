// Package credential hashes and verifies user passwords.
//
// Hashes are self-describing: Verify picks the algorithm from the stored
// hash prefix, so changing the configured algorithm never locks out users
// whose passwords were hashed under the previous one.
package credential

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"
)

const (
	AlgorithmBcrypt   = "bcrypt"
	AlgorithmArgon2id = "argon2id"
)

// Argon2Params controls the cost of argon2id hashing.
type Argon2Params struct {
	Memory  uint32 // KiB
	Time    uint32
	Threads uint8
	SaltLen uint32
	KeyLen  uint32
}

// DefaultArgon2Params matches the parameters stored by the previous
// generation of this service.
var DefaultArgon2Params = Argon2Params{
	Memory:  64 * 1024,
	Time:    3,
	Threads: 4,
	SaltLen: 16,
	KeyLen:  32,
}

// Hasher hashes new passwords with one configured algorithm and verifies
// hashes produced by any supported algorithm.
type Hasher struct {
	algorithm  string
	bcryptCost int
	argon      Argon2Params
}

// NewHasher creates a Hasher for the given algorithm. bcryptCost is ignored
// for argon2id.
func NewHasher(algorithm string, bcryptCost int) (*Hasher, error) {
	switch algorithm {
	case AlgorithmBcrypt:
		if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
			return nil, fmt.Errorf("bcrypt cost %d out of range", bcryptCost)
		}
	case AlgorithmArgon2id:
	default:
		return nil, fmt.Errorf("unknown password hash algorithm %q", algorithm)
	}
	return &Hasher{algorithm: algorithm, bcryptCost: bcryptCost, argon: DefaultArgon2Params}, nil
}

// WithArgon2Params returns a copy of h using p for new argon2id hashes.
func (h *Hasher) WithArgon2Params(p Argon2Params) *Hasher {
	c := *h
	c.argon = p
	return &c
}

// Algorithm reports the algorithm used for new hashes.
func (h *Hasher) Algorithm() string {
	return h.algorithm
}

// Hash returns a salted, encoded digest of plaintext.
func (h *Hasher) Hash(plaintext string) (string, error) {
	if h.algorithm == AlgorithmArgon2id {
		return hashArgon2id(plaintext, h.argon)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.bcryptCost)
	if err != nil {
		return "", fmt.Errorf("bcrypt: %w", err)
	}
	return string(hash), nil
}

// Verify reports whether plaintext matches hash. Malformed hashes never
// match.
func (h *Hasher) Verify(hash, plaintext string) bool {
	switch {
	case strings.HasPrefix(hash, "$argon2"):
		return verifyArgon2(hash, plaintext)
	case strings.HasPrefix(hash, "$2"):
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
	default:
		return false
	}
}

func hashArgon2id(plaintext string, p Argon2Params) (string, error) {
	salt := make([]byte, p.SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("read salt: %w", err)
	}
	key := argon2.IDKey([]byte(plaintext), salt, p.Time, p.Memory, p.Threads, p.KeyLen)
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, p.Memory, p.Time, p.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// verifyArgon2 accepts the PHC string format for argon2id and argon2i:
// $argon2id$v=19$m=65536,t=3,p=4$<salt>$<key>
func verifyArgon2(hash, plaintext string) bool {
	parts := strings.Split(hash, "$")
	if len(parts) != 6 {
		return false
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return false
	}

	var memory, time uint32
	var threads uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &threads); err != nil {
		return false
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false
	}
	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(key) == 0 {
		return false
	}

	var candidate []byte
	switch parts[1] {
	case "argon2id":
		candidate = argon2.IDKey([]byte(plaintext), salt, time, memory, threads, uint32(len(key)))
	case "argon2i":
		candidate = argon2.Key([]byte(plaintext), salt, time, memory, threads, uint32(len(key)))
	default:
		return false
	}
	return subtle.ConstantTimeCompare(key, candidate) == 1
}
