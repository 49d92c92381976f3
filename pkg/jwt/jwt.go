package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims inclut les claims standard JWT plus les champs propres à l'application.
// Le service et le rôle voyagent dans le jeton pour que les middlewares d'habilitation
// puissent décider sans consulter la base.
type Claims struct {
	jwt.RegisteredClaims
	UserID    string `json:"user_id"`
	Matricule string `json:"matricule"`
	Service   string `json:"service"` // "OPERATIONS" | "LOGISTIQUE" | "RH"
	Role      string `json:"role"`    // "admin" | "gestionnaire" | "consultation"
}

// Generate génère un jeton JWT signé incluant userID, matricule, service et rôle.
func Generate(secret, userID, matricule, service, role, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vide")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UserID:    userID,
		Matricule: matricule,
		Service:   service,
		Role:      role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valide le jeton et retourne ses claims applicatifs.
// Retourne une erreur si le jeton est invalide, expiré ou mal signé.
func Parse(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vide")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("méthode de signature inattendue: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims invalides")
	}
	return claims, nil
}
