package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/ADH36/SENC-ESPORTS-sub000/internal/models"
	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const (
	UserIDKey   contextKey = "user_id"
	UserRoleKey contextKey = "user_role"
)

func JWTMiddleware(secretKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "authorization header missing", http.StatusUnauthorized)
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				http.Error(w, "authorization header format must be Bearer {token}", http.StatusUnauthorized)
				return
			}
			tokenString := parts[1]

			token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method")
				}
				return []byte(secretKey), nil
			})

			if err != nil || !token.Valid {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				http.Error(w, "invalid token claims", http.StatusUnauthorized)
				return
			}

			rawUserID, ok := claims["user_id"]
			if !ok {
				http.Error(w, "user_id missing in token claims", http.StatusUnauthorized)
				return
			}

			var userID int64
			switch v := rawUserID.(type) {
			case float64:
				userID = int64(v)
			case string:
				userID, err = strconv.ParseInt(v, 10, 64)
				if err != nil {
					http.Error(w, "invalid user_id format in token claims", http.StatusUnauthorized)
					return
				}
			default:
				http.Error(w, "invalid user_id type in token claims", http.StatusUnauthorized)
				return
			}

			role := models.RoleUser
			if rawRole, ok := claims["role"].(string); ok && rawRole != "" {
				role = rawRole
			}

			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			ctx = context.WithValue(ctx, UserRoleKey, role)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetUserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(UserIDKey).(int64)
	return id, ok
}

func GetUserRole(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(UserRoleKey).(string)
	return role, ok
}

// GetActor assembles the authenticated (userID, role) pair from the request
// context.
func GetActor(ctx context.Context) (models.Actor, bool) {
	id, ok := GetUserID(ctx)
	if !ok {
		return models.Actor{}, false
	}

	role, ok := GetUserRole(ctx)
	if !ok {
		role = models.RoleUser
	}

	return models.Actor{ID: id, Role: role}, true
}

// RequireAdmin rejects requests whose token does not carry the admin role.
// Services re-check the capability at the engine boundary; this gate only
// keeps non-admin traffic off admin routes.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := GetUserRole(r.Context())
		if !ok || role != models.RoleAdmin {
			http.Error(w, "admin role required", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
