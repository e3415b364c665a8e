package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeamTokenRoundTrip(t *testing.T) {
	svc := NewAuthService("test-secret")

	token, err := svc.GenerateTeamToken("B-14")
	require.NoError(t, err)

	claims, err := svc.ValidateTeamToken(token)
	require.NoError(t, err)
	assert.Equal(t, "B-14", claims.TeamName)
	assert.True(t, strings.HasPrefix(claims.TeamID, "team_"))
}

func TestValidateTeamTokenWrongSecret(t *testing.T) {
	token, err := NewAuthService("secret-a").GenerateTeamToken("B-14")
	require.NoError(t, err)

	_, err = NewAuthService("secret-b").ValidateTeamToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTeamTokenGarbage(t *testing.T) {
	_, err := NewAuthService("test-secret").ValidateTeamToken("not.a.jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
