package cache

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/redis/rueidis"
	"github.com/redis/rueidis/mock"
	"go.uber.org/mock/gomock"

	"github.com/maiquockhanh06/Timeflow-app/internal/constants"
	"github.com/maiquockhanh06/Timeflow-app/internal/dates"
	model "github.com/maiquockhanh06/Timeflow-app/internal/models"
)

func TestNopSummaryCache_NeverHits(t *testing.T) {
	var c SummaryCache = NopSummaryCache{}
	ctx := context.Background()
	end := dates.New(2024, time.June, 10)

	if err := c.Store(ctx, "1", 0, model.Summary{Period: constants.PeriodWeek, WindowEnd: end}); err != nil {
		t.Fatal(err)
	}
	if _, _, ok, err := c.Load(ctx, "1", constants.PeriodWeek, end); ok || err != nil {
		t.Errorf("expected miss, got ok=%v err=%v", ok, err)
	}
	if err := c.Invalidate(ctx, "1"); err != nil {
		t.Fatal(err)
	}
}

func TestFieldSeparatesPeriodsDaysAndGenerations(t *testing.T) {
	d := dates.New(2024, time.June, 10)

	if got := field(constants.PeriodWeek, d, 3); got != "week:2024-06-10:3" {
		t.Errorf("unexpected field %q", got)
	}
	if field(constants.PeriodWeek, d, 0) == field(constants.PeriodWeek, d.AddDays(1), 0) {
		t.Error("fields for different days must differ")
	}
	if field(constants.PeriodDay, d, 0) == field(constants.PeriodWeek, d, 0) {
		t.Error("fields for different periods must differ")
	}
	if field(constants.PeriodWeek, d, 0) == field(constants.PeriodWeek, d, 1) {
		t.Error("fields for different generations must differ")
	}
}

func TestRedisSummaryCache_LoadMiss(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewClient(ctrl)
	c := NewRedisSummaryCache(client, "timeflow:stats", 5*time.Minute)
	end := dates.New(2024, time.June, 10)

	client.EXPECT().Do(gomock.Any(), mock.Match("GET", "timeflow:stats:1:gen")).
		Return(mock.Result(mock.RedisNil()))
	client.EXPECT().Do(gomock.Any(), mock.Match("HGET", "timeflow:stats:1", "week:2024-06-10:0")).
		Return(mock.Result(mock.RedisNil()))

	summary, gen, ok, err := c.Load(context.Background(), "1", constants.PeriodWeek, end)
	if err != nil || ok || summary != nil {
		t.Fatalf("expected miss, got %+v ok=%v err=%v", summary, ok, err)
	}
	if gen != 0 {
		t.Errorf("expected generation 0 for a fresh owner, got %d", gen)
	}
}

func TestRedisSummaryCache_LoadHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewClient(ctrl)
	c := NewRedisSummaryCache(client, "timeflow:stats", 5*time.Minute)
	end := dates.New(2024, time.June, 10)

	want := model.Summary{Period: constants.PeriodWeek, WindowEnd: end, TotalCompleted: 4, CompletedEarly: 3, CompletedLate: 1}
	payload, _ := json.Marshal(want)

	client.EXPECT().Do(gomock.Any(), mock.Match("GET", "timeflow:stats:1:gen")).
		Return(mock.Result(mock.RedisString("7")))
	client.EXPECT().Do(gomock.Any(), mock.Match("HGET", "timeflow:stats:1", "week:2024-06-10:7")).
		Return(mock.Result(mock.RedisString(string(payload))))

	got, gen, ok, err := c.Load(context.Background(), "1", constants.PeriodWeek, end)
	if err != nil || !ok {
		t.Fatalf("expected hit, got ok=%v err=%v", ok, err)
	}
	if gen != 7 || got.TotalCompleted != 4 || got.CompletedLate != 1 {
		t.Errorf("unexpected summary %+v at generation %d", got, gen)
	}
}

func TestRedisSummaryCache_StoreSetsFieldAndTTL(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewClient(ctrl)
	c := NewRedisSummaryCache(client, "timeflow:stats", 5*time.Minute)

	summary := model.Summary{Period: constants.PeriodMonth, WindowEnd: dates.New(2024, time.June, 10), TotalCompleted: 1}
	payload, _ := json.Marshal(summary)

	client.EXPECT().DoMulti(
		gomock.Any(),
		mock.Match("HSET", "timeflow:stats:1", "month:2024-06-10:2", string(payload)),
		mock.Match("EXPIRE", "timeflow:stats:1", "300"),
	).Return([]rueidis.RedisResult{
		mock.Result(mock.RedisInt64(1)),
		mock.Result(mock.RedisInt64(1)),
	})

	if err := c.Store(context.Background(), "1", 2, summary); err != nil {
		t.Fatal(err)
	}
}

func TestRedisSummaryCache_InvalidateBumpsGenerationAndDeletes(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewClient(ctrl)
	c := NewRedisSummaryCache(client, "timeflow:stats", 5*time.Minute)

	client.EXPECT().DoMulti(
		gomock.Any(),
		mock.Match("INCR", "timeflow:stats:1:gen"),
		mock.Match("DEL", "timeflow:stats:1"),
	).Return([]rueidis.RedisResult{
		mock.Result(mock.RedisInt64(1)),
		mock.Result(mock.RedisInt64(1)),
	})

	if err := c.Invalidate(context.Background(), "1"); err != nil {
		t.Fatal(err)
	}
}
