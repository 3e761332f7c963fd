package redis

import (
	"companion-srv/internal/emotion/repository"
	"companion-srv/pkg/log"
	pkgRedis "companion-srv/pkg/redis"
)

type implRepository struct {
	redis pkgRedis.IRedis
	l     log.Logger
}

func New(redis pkgRedis.IRedis, l log.Logger) repository.Cache {
	return &implRepository{
		redis: redis,
		l:     l,
	}
}
