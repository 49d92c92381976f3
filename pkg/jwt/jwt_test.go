package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacinebrahmi/gestock-api/pkg/jwt"
)

const secretDeTest = "secret-de-test-au-moins-32-caracteres"

func TestGenerateEtParse(t *testing.T) {
	token, err := jwt.Generate(secretDeTest, "u-1", "ADJ-1027", "LOGISTIQUE", "gestionnaire", "gestock-api", 15)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := jwt.Parse(secretDeTest, token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "ADJ-1027", claims.Matricule)
	assert.Equal(t, "LOGISTIQUE", claims.Service)
	assert.Equal(t, "gestionnaire", claims.Role)
	assert.Equal(t, "gestock-api", claims.Issuer)
}

func TestParse_MauvaisSecret(t *testing.T) {
	token, err := jwt.Generate(secretDeTest, "u-1", "ADJ-1027", "LOGISTIQUE", "gestionnaire", "gestock-api", 15)
	require.NoError(t, err)

	_, err = jwt.Parse("un-autre-secret-completement-different", token)
	assert.Error(t, err)
}

func TestParse_JetonExpire(t *testing.T) {
	token, err := jwt.Generate(secretDeTest, "u-1", "ADJ-1027", "LOGISTIQUE", "gestionnaire", "gestock-api", -5)
	require.NoError(t, err)

	_, err = jwt.Parse(secretDeTest, token)
	assert.Error(t, err)
}

func TestParse_JetonMalforme(t *testing.T) {
	_, err := jwt.Parse(secretDeTest, "pas.un.jeton")
	assert.Error(t, err)
}

func TestSecretVide(t *testing.T) {
	_, err := jwt.Generate("", "u-1", "ADJ-1027", "LOGISTIQUE", "gestionnaire", "gestock-api", 15)
	assert.Error(t, err)

	_, err = jwt.Parse("", "peu-importe")
	assert.Error(t, err)
}
