package storage

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"github.com/htechvn/htech-store/internal/store"
)

// Keys mirror the persisted-state layout: one key per table.
const (
	keyProducts = "products"
	keyCart     = "cart"
	keyOrders   = "orders"
)

// RedisRepo keeps each table as a JSON value under its own key. Same
// layout as the file backend, different medium.
type RedisRepo struct {
	client *redis.Client
}

func NewRedisRepo(addr, password string) (*RedisRepo, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Wrapf(err, "connect redis %s", addr)
	}
	return &RedisRepo{client: client}, nil
}

func (r *RedisRepo) Load(ctx context.Context) (*store.Snapshot, error) {
	vals, err := r.client.MGet(ctx, keyProducts, keyCart, keyOrders).Result()
	if err != nil {
		return nil, errors.Wrap(err, "load snapshot")
	}
	if vals[0] == nil && vals[1] == nil && vals[2] == nil {
		return nil, nil
	}
	var snap store.Snapshot
	if err := decodeKey(vals[0], &snap.Products); err != nil {
		return nil, errors.Wrap(err, "decode products")
	}
	if err := decodeKey(vals[1], &snap.Cart); err != nil {
		return nil, errors.Wrap(err, "decode cart")
	}
	if err := decodeKey(vals[2], &snap.Orders); err != nil {
		return nil, errors.Wrap(err, "decode orders")
	}
	return &snap, nil
}

func decodeKey(val interface{}, dst interface{}) error {
	if val == nil {
		return nil
	}
	s, ok := val.(string)
	if !ok {
		return errors.Errorf("unexpected value type %T", val)
	}
	return json.Unmarshal([]byte(s), dst)
}

func (r *RedisRepo) Save(ctx context.Context, snap *store.Snapshot) error {
	products, err := json.Marshal(snap.Products)
	if err != nil {
		return errors.Wrap(err, "encode products")
	}
	cart, err := json.Marshal(snap.Cart)
	if err != nil {
		return errors.Wrap(err, "encode cart")
	}
	orders, err := json.Marshal(snap.Orders)
	if err != nil {
		return errors.Wrap(err, "encode orders")
	}
	pipe := r.client.TxPipeline()
	pipe.Set(ctx, keyProducts, products, 0)
	pipe.Set(ctx, keyCart, cart, 0)
	pipe.Set(ctx, keyOrders, orders, 0)
	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Wrap(err, "save snapshot")
	}
	return nil
}

func (r *RedisRepo) Close() error { return r.client.Close() }
