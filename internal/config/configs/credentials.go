package configs

// Credentials configures decryption of stored platform access tokens. Key
// is the hex-encoded 32-byte symmetric key used by the credential store;
// tokens at rest are sealed with it.
type Credentials struct {
	Key string `env:"KEY,required"`
}
