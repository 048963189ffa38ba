package main

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"musicsphere/internal/app/users"
	"musicsphere/internal/auth"
	"musicsphere/internal/catalog"
	"musicsphere/internal/httpapi"
	"musicsphere/internal/resolver"
	"musicsphere/internal/store"
)

func newHTTPHandler(cfg Config, dataStore *store.Store) (http.Handler, error) {
	source := catalog.NewClient(cfg.CatalogBaseURL, cfg.CatalogAPIKey)

	catalogSvc := resolver.New(dataStore, source, log.With().Str("component", "resolver").Logger())
	userSvc := users.New(dataStore)
	tokens := auth.NewTokens(cfg.SecretKey)

	api, err := httpapi.New(catalogSvc, userSvc, tokens)
	if err != nil {
		return nil, err
	}

	return withCORS(cfg.AllowedOrigins, api.Routes()), nil
}

func withCORS(allowedOrigins []string, next http.Handler) http.Handler {
	originAllowed := func(origin string) bool {
		if len(allowedOrigins) == 0 || origin == "" {
			return false
		}
		for _, o := range allowedOrigins {
			if strings.EqualFold(o, origin) {
				return true
			}
		}
		return false
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if originAllowed(origin) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Authorization")
			w.Header().Set("Access-Control-Max-Age", "3600")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
