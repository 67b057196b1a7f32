package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndParse(t *testing.T) {
	j := &JWTer{Secret: []byte("s3cret"), Issuer: "staynest-test", TTL: time.Hour}

	tok, err := j.Issue("64a1b2c3d4e5f60718293a4b")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := j.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, "64a1b2c3d4e5f60718293a4b", claims.UID)
	assert.Equal(t, "staynest-test", claims.Issuer)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	j := &JWTer{Secret: []byte("s3cret"), Issuer: "staynest-test", TTL: time.Hour}
	tok, err := j.Issue("64a1b2c3d4e5f60718293a4b")
	require.NoError(t, err)

	other := &JWTer{Secret: []byte("different"), Issuer: "staynest-test", TTL: time.Hour}
	_, err = other.Parse(tok)
	assert.Error(t, err)
}

func TestParseRejectsExpired(t *testing.T) {
	// 负 TTL 叠加 60s leeway 仍然过期
	j := &JWTer{Secret: []byte("s3cret"), Issuer: "staynest-test", TTL: -2 * time.Minute}
	tok, err := j.Issue("64a1b2c3d4e5f60718293a4b")
	require.NoError(t, err)

	_, err = j.Parse(tok)
	assert.Error(t, err)
}

func TestParseRejectsWrongIssuer(t *testing.T) {
	j := &JWTer{Secret: []byte("s3cret"), Issuer: "someone-else", TTL: time.Hour}
	tok, err := j.Issue("64a1b2c3d4e5f60718293a4b")
	require.NoError(t, err)

	mine := &JWTer{Secret: []byte("s3cret"), Issuer: "staynest-test", TTL: time.Hour}
	_, err = mine.Parse(tok)
	assert.Error(t, err)
}
