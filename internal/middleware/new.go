package middleware

import (
	"companion-srv/config"
	"companion-srv/pkg/log"
	"companion-srv/pkg/scope"
)

type Middleware struct {
	l            log.Logger
	jwtManager   scope.Manager
	cookieConfig config.CookieConfig
	internalKey  string
}

func New(l log.Logger, jwtManager scope.Manager, cookieConfig config.CookieConfig, internalKey string) Middleware {
	return Middleware{
		l:            l,
		jwtManager:   jwtManager,
		cookieConfig: cookieConfig,
		internalKey:  internalKey,
	}
}
