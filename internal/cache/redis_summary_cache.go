package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/rueidis"

	"github.com/maiquockhanh06/Timeflow-app/internal/constants"
	"github.com/maiquockhanh06/Timeflow-app/internal/dates"
	model "github.com/maiquockhanh06/Timeflow-app/internal/models"
)

// RedisSummaryCache keeps one hash of summaries per owner next to a
// generation counter. Invalidation increments the counter and drops the
// hash.
type RedisSummaryCache struct {
	client rueidis.Client
	prefix string
	ttl    time.Duration
}

func NewRedisSummaryCache(client rueidis.Client, prefix string, ttl time.Duration) *RedisSummaryCache {
	return &RedisSummaryCache{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (r *RedisSummaryCache) key(ownerID string) string {
	return r.prefix + ":" + ownerID
}

func (r *RedisSummaryCache) generationKey(ownerID string) string {
	return r.key(ownerID) + ":gen"
}

func (r *RedisSummaryCache) generation(ctx context.Context, ownerID string) (int64, error) {
	cmd := r.client.B().Get().Key(r.generationKey(ownerID)).Build()
	gen, err := r.client.Do(ctx, cmd).AsInt64()
	if rueidis.IsRedisNil(err) {
		return 0, nil
	}
	return gen, err
}

func (r *RedisSummaryCache) Load(
	ctx context.Context,
	ownerID string,
	period constants.Period,
	windowEnd dates.Date,
) (*model.Summary, int64, bool, error) {
	gen, err := r.generation(ctx, ownerID)
	if err != nil {
		return nil, 0, false, err
	}

	cmd := r.client.B().Hget().Key(r.key(ownerID)).Field(field(period, windowEnd, gen)).Build()
	raw, err := r.client.Do(ctx, cmd).ToString()
	if err != nil {
		if rueidis.IsRedisNil(err) {
			return nil, gen, false, nil
		}
		return nil, 0, false, err
	}

	var summary model.Summary
	if err := json.Unmarshal([]byte(raw), &summary); err != nil {
		return nil, 0, false, err
	}

	return &summary, gen, true, nil
}

func (r *RedisSummaryCache) Store(ctx context.Context, ownerID string, generation int64, summary model.Summary) error {
	payload, err := json.Marshal(summary)
	if err != nil {
		return err
	}

	key := r.key(ownerID)
	cmds := []rueidis.Completed{
		r.client.B().Hset().Key(key).FieldValue().FieldValue(field(summary.Period, summary.WindowEnd, generation), string(payload)).Build(),
		r.client.B().Expire().Key(key).Seconds(int64(r.ttl / time.Second)).Build(),
	}

	for _, res := range r.client.DoMulti(ctx, cmds...) {
		if err := res.Error(); err != nil {
			return err
		}
	}

	return nil
}

func (r *RedisSummaryCache) Invalidate(ctx context.Context, ownerID string) error {
	cmds := []rueidis.Completed{
		r.client.B().Incr().Key(r.generationKey(ownerID)).Build(),
		r.client.B().Del().Key(r.key(ownerID)).Build(),
	}

	for _, res := range r.client.DoMulti(ctx, cmds...) {
		if err := res.Error(); err != nil {
			return err
		}
	}

	return nil
}
