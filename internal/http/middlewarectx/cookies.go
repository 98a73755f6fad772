package middlewarectx

import (
	"net/http"
	"time"
)

// Имена cookie с токенами.
const (
	AccessTokenCookie  = "accessToken"
	RefreshTokenCookie = "refreshToken"
)

// SetTokenCookies выставляет httpOnly secure cookie с парой токенов.
func SetTokenCookies(w http.ResponseWriter, accessToken, refreshToken string) {
	http.SetCookie(w, tokenCookie(AccessTokenCookie, accessToken, 0))
	http.SetCookie(w, tokenCookie(RefreshTokenCookie, refreshToken, 0))
}

// ClearTokenCookies удаляет cookie с токенами.
func ClearTokenCookies(w http.ResponseWriter) {
	http.SetCookie(w, tokenCookie(AccessTokenCookie, "", -1))
	http.SetCookie(w, tokenCookie(RefreshTokenCookie, "", -1))
}

func tokenCookie(name, value string, maxAge int) *http.Cookie {
	c := &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   maxAge,
	}
	if maxAge < 0 {
		c.Expires = time.Unix(0, 0)
	}
	return c
}
