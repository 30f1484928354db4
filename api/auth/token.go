package auth

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	jwt "github.com/dgrijalva/jwt-go"
)

var ErrInvalidToken = errors.New("invalid admin token")

// CreateAdminToken issues the admin session capability after the shared
// credential has been checked server-side. The token itself carries no
// identity, only the admin capability.
func CreateAdminToken() (string, error) {
	claims := jwt.MapClaims{}
	claims["authorized"] = true
	claims["admin"] = true
	claims["exp"] = time.Now().Add(time.Hour * 12).Unix()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("API_SECRET")))
}

// ValidateAdminToken checks the request's bearer token and confirms the
// admin claim.
func ValidateAdminToken(r *http.Request) error {
	tokenString := ExtractToken(r)
	if tokenString == "" {
		return ErrInvalidToken
	}
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(os.Getenv("API_SECRET")), nil
	})
	if err != nil {
		return ErrInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return ErrInvalidToken
	}
	if isAdmin, ok := claims["admin"].(bool); !ok || !isAdmin {
		return ErrInvalidToken
	}
	return nil
}

// ExtractToken pulls the token from the Authorization header or, as a
// fallback, the token query parameter.
func ExtractToken(r *http.Request) string {
	keys := r.URL.Query()
	token := keys.Get("token")
	if token != "" {
		return token
	}
	bearerToken := r.Header.Get("Authorization")
	if len(strings.Split(bearerToken, " ")) == 2 {
		return strings.Split(bearerToken, " ")[1]
	}
	return ""
}
