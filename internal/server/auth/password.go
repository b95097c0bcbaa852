package auth

import (
	"crypto/subtle"

	"github.com/dmitrijs2005/securevault/internal/common"
	"golang.org/x/crypto/argon2"
)

// Argon2id parameters. Changing them invalidates stored hashes.
const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32
	saltLen      = 16
)

// HashPassword derives an argon2id hash of password with a fresh random salt.
func HashPassword(password string) (hash, salt []byte) {
	salt = common.GenerateRandByteArray(saltLen)
	return derive(password, salt), salt
}

// CheckPassword reports whether password matches hash under salt.
func CheckPassword(password string, hash, salt []byte) bool {
	return subtle.ConstantTimeCompare(derive(password, salt), hash) == 1
}

func derive(password string, salt []byte) []byte {
	return argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonThreads, argonKeyLen)
}
