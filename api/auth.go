package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
)

const authedSubjectKey = "authedSubject"

func (m ApiHandler) authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			returnErrorJsonCode(fmt.Errorf("missing bearer token"), c, http.StatusUnauthorized)
			return
		}
		tokenString := strings.TrimPrefix(header, "Bearer ")

		subject, err := verifyToken(tokenString, m.JwtSecret)
		if err != nil {
			returnErrorJsonCode(fmt.Errorf("failed to verify token: %w", err), c, http.StatusUnauthorized)
			return
		}

		c.Set(authedSubjectKey, subject)
		c.Next()
	}
}

func verifyToken(tokenString, secret string) (string, error) {
	claims := jwt.StandardClaims{}
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", fmt.Errorf("token is invalid")
	}

	return claims.Subject, nil
}
