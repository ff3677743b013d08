package redis_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rural-itinerary/internal/domain"
	redisRepo "github.com/rural-itinerary/internal/repository/redis"
)

const (
	testGenerateStream = "test:stream:itinerary:generate"
	testDoneStream     = "test:stream:itinerary:done"
)

func getTestRedisClient(t *testing.T) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   1,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available for integration tests: %v", err)
	}

	client.Del(ctx, testGenerateStream, testDoneStream)
	t.Cleanup(func() {
		client.Del(context.Background(), testGenerateStream, testDoneStream)
		client.Close()
	})

	return client
}

func TestStreamRepository_CreateConsumerGroup(t *testing.T) {
	client := getTestRedisClient(t)
	repo := redisRepo.NewStreamRepository(client, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, repo.CreateConsumerGroup(ctx, testGenerateStream, "test-group"))

	groups, err := client.XInfoGroups(ctx, testGenerateStream).Result()
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "test-group", groups[0].Name)

	// BUSYGROUP игнорируется
	assert.NoError(t, repo.CreateConsumerGroup(ctx, testGenerateStream, "test-group"))
}

func TestStreamRepository_PublishToStream(t *testing.T) {
	client := getTestRedisClient(t)
	repo := redisRepo.NewStreamRepository(client, zap.NewNop())
	ctx := context.Background()

	requestID := uuid.New()
	event := &domain.ItineraryDoneEvent{
		RequestID: requestID,
		Error:     "dataset unavailable",
	}
	require.NoError(t, repo.PublishToStream(ctx, testDoneStream, event))

	streams, err := client.XRead(ctx, &redis.XReadArgs{
		Streams: []string{testDoneStream, "0"},
		Count:   1,
	}).Result()
	require.NoError(t, err)
	require.Len(t, streams, 1)
	require.Len(t, streams[0].Messages, 1)

	data, ok := streams[0].Messages[0].Values["data"].(string)
	require.True(t, ok)

	var received domain.ItineraryDoneEvent
	require.NoError(t, json.Unmarshal([]byte(data), &received))
	assert.Equal(t, requestID, received.RequestID)
	assert.Equal(t, "dataset unavailable", received.Error)
	assert.Nil(t, received.Itinerary)
}

func TestStreamRepository_ConsumeBatchAndAck(t *testing.T) {
	client := getTestRedisClient(t)
	repo := redisRepo.NewStreamRepository(client, zap.NewNop())
	ctx := context.Background()

	const group = "test-consume-group"
	require.NoError(t, repo.CreateConsumerGroup(ctx, testGenerateStream, group))

	var ids []uuid.UUID
	for i := 0; i < 3; i++ {
		id := uuid.New()
		ids = append(ids, id)
		require.NoError(t, repo.PublishToStream(ctx, testGenerateStream, &domain.ItineraryRequestEvent{
			RequestID:  id,
			Days:       i + 1,
			Categories: []string{domain.CategoryAdventure},
		}))
	}
	// сообщение без поля data
	require.NoError(t, client.XAdd(ctx, &redis.XAddArgs{
		Stream: testGenerateStream,
		Values: map[string]interface{}{"other": "x"},
	}).Err())

	msgs, err := repo.ConsumeBatch(ctx, testGenerateStream, group, "consumer-1", 10)
	require.NoError(t, err)
	require.Len(t, msgs, 4)

	for i, id := range ids {
		var ev domain.ItineraryRequestEvent
		require.NoError(t, json.Unmarshal([]byte(msgs[i].Data), &ev))
		assert.Equal(t, id, ev.RequestID)
		assert.Equal(t, i+1, ev.Days)
	}
	assert.Empty(t, msgs[3].Data)

	pending, err := client.XPending(ctx, testGenerateStream, group).Result()
	require.NoError(t, err)
	assert.Equal(t, int64(4), pending.Count)

	msgIDs := make([]string, 0, len(msgs))
	for _, m := range msgs {
		msgIDs = append(msgIDs, m.ID)
	}
	require.NoError(t, repo.AckMessages(ctx, testGenerateStream, group, nil))
	require.NoError(t, repo.AckMessages(ctx, testGenerateStream, group, msgIDs))

	pending, err = client.XPending(ctx, testGenerateStream, group).Result()
	require.NoError(t, err)
	assert.Equal(t, int64(0), pending.Count)

	// новых сообщений нет: пустой батч без ошибки
	msgs, err = repo.ConsumeBatch(ctx, testGenerateStream, group, "consumer-1", 10)
	require.NoError(t, err)
	assert.Empty(t, msgs)
}

func TestStreamRepository_ConsumeBatch_Cancelled(t *testing.T) {
	client := getTestRedisClient(t)
	repo := redisRepo.NewStreamRepository(client, zap.NewNop())

	const group = "test-cancel-group"
	require.NoError(t, repo.CreateConsumerGroup(context.Background(), testGenerateStream, group))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.ConsumeBatch(ctx, testGenerateStream, group, "consumer-1", 1)
	assert.ErrorIs(t, err, context.Canceled)
}
