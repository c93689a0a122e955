package domain

import "golang.org/x/crypto/bcrypt"

// User is an account. Superadmins carry no company; company users are scoped
// to exactly one.
type User struct {
	ID           int64  `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	IsSuperadmin bool   `json:"is_superadmin"`
	CompanyID    int64  `json:"company_id,omitempty"` // 0 for superadmins
}

// SetPassword hashes raw with bcrypt and stores the hash.
func (u *User) SetPassword(raw string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword reports whether raw matches the stored hash.
func (u *User) CheckPassword(raw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(raw)) == nil
}
