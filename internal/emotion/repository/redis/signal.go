package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"companion-srv/internal/emotion"
	"companion-srv/internal/emotion/repository"
)

const Prefix = "emotion:signal:"

func (r *implRepository) GetSignal(ctx context.Context, opt repository.GetSignalOptions) (emotion.Signal, error) {
	key := fmt.Sprintf("%s%s", Prefix, opt.Key)
	data, err := r.redis.GetClient().Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return emotion.Signal{}, repository.ErrCacheMiss
		}
		r.l.Errorf(ctx, "emotion.repository.redis.GetSignal: %v", err)
		return emotion.Signal{}, err
	}

	var sig emotion.Signal
	if err := json.Unmarshal([]byte(data), &sig); err != nil {
		r.l.Errorf(ctx, "emotion.repository.redis.GetSignal: unmarshal error: %v", err)
		return emotion.Signal{}, err
	}
	return sig, nil
}

func (r *implRepository) SaveSignal(ctx context.Context, opt repository.SaveSignalOptions) error {
	key := fmt.Sprintf("%s%s", Prefix, opt.Key)
	data, err := json.Marshal(opt.Signal)
	if err != nil {
		r.l.Errorf(ctx, "emotion.repository.redis.SaveSignal: %v", err)
		return err
	}

	ttl := opt.TTL
	if ttl == 0 {
		ttl = time.Hour
	}

	if err := r.redis.GetClient().Set(ctx, key, data, ttl).Err(); err != nil {
		r.l.Errorf(ctx, "emotion.repository.redis.SaveSignal: %v", err)
		return err
	}
	return nil
}
