package auth

import (
	"net/http"
	"strings"
)

// ExtractBearerToken reads the token from the request's Authorization header,
// stripping the Bearer prefix. Empty string when absent.
func ExtractBearerToken(r *http.Request) string {
	if r == nil {
		return ""
	}
	return ExtractBearerTokenFromHeader(r.Header.Get("Authorization"))
}

// ExtractBearerTokenFromHeader strips the Bearer prefix (any case) from a raw
// Authorization header value.
func ExtractBearerTokenFromHeader(header string) string {
	header = strings.TrimSpace(header)
	if header == "" {
		return ""
	}

	const bearerPrefix = "bearer "
	if strings.HasPrefix(strings.ToLower(header), bearerPrefix) {
		return strings.TrimSpace(header[len(bearerPrefix):])
	}

	return ""
}

// ExtractTokenFromQuery reads a token from a URL query parameter.
func ExtractTokenFromQuery(r *http.Request, paramName string) string {
	if r == nil || r.URL == nil {
		return ""
	}
	return strings.TrimSpace(r.URL.Query().Get(paramName))
}

// ExtractToken prefers the Authorization header and falls back to the query
// parameter (default "token"). Websocket connections use the query form
// because browsers cannot set headers on the upgrade request.
func ExtractToken(r *http.Request, queryParam string) string {
	if token := ExtractBearerToken(r); token != "" {
		return token
	}

	if queryParam == "" {
		queryParam = "token"
	}
	return ExtractTokenFromQuery(r, queryParam)
}
