package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndParse(t *testing.T) {
	j := &JWTer{Secret: []byte("s3cret"), Issuer: "gestor-xarxa", TTL: time.Hour}

	tok, err := j.Issue("ops", RoleAdmin)
	require.NoError(t, err)

	c, err := j.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, "ops", c.Subject)
	assert.Equal(t, RoleAdmin, c.Role)
	assert.Equal(t, "gestor-xarxa", c.Issuer)
}

func TestParseRejects(t *testing.T) {
	j := &JWTer{Secret: []byte("s3cret"), Issuer: "gestor-xarxa", TTL: time.Hour}
	tok, err := j.Issue("ops", RoleAdmin)
	require.NoError(t, err)

	other := &JWTer{Secret: []byte("altre"), Issuer: "gestor-xarxa", TTL: time.Hour}
	_, err = other.Parse(tok)
	assert.Error(t, err)

	wrongIss := &JWTer{Secret: []byte("s3cret"), Issuer: "altre", TTL: time.Hour}
	_, err = wrongIss.Parse(tok)
	assert.Error(t, err)

	expired := &JWTer{Secret: []byte("s3cret"), Issuer: "gestor-xarxa", TTL: -2 * time.Minute}
	old, err := expired.Issue("ops", RoleAdmin)
	require.NoError(t, err)
	_, err = j.Parse(old)
	assert.Error(t, err)
}

func TestIssueNeedsSecret(t *testing.T) {
	_, err := (&JWTer{}).Issue("ops", RoleAdmin)
	assert.Error(t, err)
}
