//go:build ignore

// Публикует событие генерации маршрута и ждёт ответ воркера.
//
//	go run scripts/publish_itinerary.go -days 3 -categories Adventure,Nature -start Colombo -end Kandy
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/rural-itinerary/internal/domain"
	"github.com/rural-itinerary/internal/usecase"
)

func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address for streams")
	days := flag.Int("days", 3, "trip length in days")
	categories := flag.String("categories", domain.CategoryAdventure, "comma separated categories")
	district := flag.String("district", domain.AnyDistrict, "district or Any")
	start := flag.String("start", "Colombo", "start city")
	end := flag.String("end", "Kandy", "end city")
	wait := flag.Duration("wait", 30*time.Second, "how long to wait for the result")
	flag.Parse()

	client := redis.NewClient(&redis.Options{Addr: *redisAddr})
	defer client.Close()

	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	event := domain.ItineraryRequestEvent{
		RequestID:  uuid.New(),
		Days:       *days,
		Categories: strings.Split(*categories, ","),
		District:   *district,
		StartCity:  *start,
		EndCity:    *end,
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Fatalf("Failed to marshal event: %v", err)
	}

	id, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: domain.StreamItineraryGenerate,
		Values: map[string]interface{}{"data": string(data)},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish event: %v", err)
	}

	fmt.Printf("Event published\n")
	fmt.Printf("   Stream: %s\n", domain.StreamItineraryGenerate)
	fmt.Printf("   Message ID: %s\n", id)
	fmt.Printf("   Request ID: %s\n", event.RequestID)
	fmt.Printf("\nWaiting for response in %s...\n", domain.StreamItineraryDone)

	deadline := time.Now().Add(*wait)
	lastID := "0"

	for time.Now().Before(deadline) {
		results, err := client.XRead(ctx, &redis.XReadArgs{
			Streams: []string{domain.StreamItineraryDone, lastID},
			Count:   50,
			Block:   time.Second,
		}).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			log.Fatalf("Failed to read results: %v", err)
		}

		for _, stream := range results {
			for _, msg := range stream.Messages {
				lastID = msg.ID

				raw, ok := msg.Values["data"].(string)
				if !ok {
					continue
				}

				var done domain.ItineraryDoneEvent
				if err := json.Unmarshal([]byte(raw), &done); err != nil || done.RequestID != event.RequestID {
					continue
				}

				if done.Error != "" {
					fmt.Printf("\nGeneration failed: %s\n", done.Error)
					return
				}
				fmt.Printf("\n%s\n", usecase.RenderText(done.Itinerary))
				return
			}
		}
	}

	fmt.Println("Timeout waiting for response")
}
