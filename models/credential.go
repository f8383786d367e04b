package models

// Credential is the bearer credential pair issued by the backend.
//
// Invariant: AccessToken and RefreshToken are always both present or both
// absent. A credential with only one of the two is never persisted; the
// session layer treats such a pair as absent.
type Credential struct {
	AccessToken  string
	RefreshToken string
}

// IsZero reports whether the credential carries no tokens at all.
func (c Credential) IsZero() bool {
	return c.AccessToken == "" && c.RefreshToken == ""
}

// Complete reports whether both tokens are present.
func (c Credential) Complete() bool {
	return c.AccessToken != "" && c.RefreshToken != ""
}
