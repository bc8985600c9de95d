package ports

// PasswordHasher is the one-way hashing boundary. Hash is deliberately slow;
// Verify reports whether plaintext matches a stored hash.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}
