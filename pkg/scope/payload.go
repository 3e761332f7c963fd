package scope

// Payload carries the verified identity extracted from an access token.
type Payload struct {
	UserID   string
	Username string
	Role     string

	Subject   string
	Issuer    string
	Id        string
	ExpiresAt int64
	IssuedAt  int64
}

// Manager verifies tokens into payloads and mints tokens from payloads.
type Manager interface {
	Verify(token string) (Payload, error)
	CreateToken(payload Payload) (string, error)
}
