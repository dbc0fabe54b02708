package password

import "golang.org/x/crypto/bcrypt"

const hashCost = bcrypt.DefaultCost

// Hash derives a bcrypt hash suitable for storage. The plaintext is never
// kept anywhere else.
func Hash(plain string) (string, error) {
	out, err := bcrypt.GenerateFromPassword([]byte(plain), hashCost)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Compare reports a nil error only when plain matches the stored hash.
func Compare(hash, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
}
