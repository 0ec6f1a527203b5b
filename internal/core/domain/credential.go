package domain

// Credential is a decrypted, usable access credential for one platform
// account. PageRef is the platform page or identity ads are published under;
// adapters merge it into creative payloads as a contextual default.
type Credential struct {
	AccountRef  string
	AccessToken string
	PageRef     string
}
