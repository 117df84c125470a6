package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/spf13/pflag"
)

// Posts synthetic Telegram updates to the bot's webhook route and reports latency.
// Replies fail against the real Bot API with a fake token; the webhook still answers 200.

type result struct {
	userID  int64
	kind    string
	status  int
	latency time.Duration
	err     error
}

type scenario struct {
	kind string
	text string
}

var scenarios = []scenario{
	{"greeting", "hello"},
	{"greeting", "Привіт!"},
	{"greeting", "hi hi hey"},
	{"other", "how is it going"},
	{"other", "👍"},
	{"score", "/score"},
	{"start", "/start"},
}

func buildUpdate(updateID int, messageID int, userID int64, s scenario) tgbotapi.Update {
	msg := &tgbotapi.Message{
		MessageID: messageID,
		From:      &tgbotapi.User{ID: userID, FirstName: "Load", UserName: fmt.Sprintf("load_user_%d", userID)},
		Chat:      &tgbotapi.Chat{ID: userID, Type: "private"},
		Date:      int(time.Now().Unix()),
		Text:      s.text,
	}
	if strings.HasPrefix(s.text, "/") {
		msg.Entities = []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: len(s.text)}}
	}
	return tgbotapi.Update{UpdateID: updateID, Message: msg}
}

func main() {
	concurrency := pflag.IntP("concurrency", "c", 5, "Number of concurrent senders")
	total := pflag.IntP("requests", "n", 100, "Total number of updates to post")
	users := pflag.IntP("users", "u", 3, "Number of distinct chat users")
	baseURL := pflag.String("url", "http://localhost:5000", "Base URL of the bot")
	secret := pflag.String("secret", os.Getenv("API_TOKEN"), "Webhook path secret (defaults to API_TOKEN)")
	delay := pflag.Duration("delay", 100*time.Millisecond, "Delay between updates per sender")
	pflag.Parse()

	if *secret == "" {
		fmt.Fprintln(os.Stderr, "webhook secret is required (--secret or API_TOKEN)")
		os.Exit(2)
	}
	if *users < 1 {
		*users = 1
	}

	webhookURL := strings.TrimRight(*baseURL, "/") + "/" + *secret
	fmt.Printf("Posting %d updates from %d users with %d senders, %v apart\n", *total, *users, *concurrency, *delay)

	jobs := make(chan int, *total)
	for i := 0; i < *total; i++ {
		jobs <- i
	}
	close(jobs)

	results := make(chan result, *total)
	var done int64
	client := &http.Client{Timeout: 10 * time.Second}
	start := time.Now()

	var wg sync.WaitGroup
	for w := 0; w < *concurrency; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(time.Now().UnixNano() + int64(worker)))
			for i := range jobs {
				if *delay > 0 {
					time.Sleep(*delay)
				}
				userID := int64(1000 + rng.Intn(*users))
				s := scenarios[rng.Intn(len(scenarios))]
				results <- post(client, webhookURL, buildUpdate(i+1, i+1, userID, s), userID, s.kind)
				atomic.AddInt64(&done, 1)
			}
		}(w)
	}

	ticker := time.NewTicker(time.Second)
	go func() {
		for range ticker.C {
			fmt.Printf("Progress: %d/%d\n", atomic.LoadInt64(&done), *total)
		}
	}()

	wg.Wait()
	ticker.Stop()
	close(results)

	var collected []result
	for r := range results {
		collected = append(collected, r)
	}
	report(collected, time.Since(start))
}

func post(client *http.Client, url string, update tgbotapi.Update, userID int64, kind string) result {
	body, err := json.Marshal(update)
	if err != nil {
		return result{userID: userID, kind: kind, err: err}
	}

	began := time.Now()
	resp, err := client.Post(url, "application/json", bytes.NewReader(body))
	r := result{userID: userID, kind: kind, latency: time.Since(began), err: err}
	if err != nil {
		return r
	}
	defer resp.Body.Close()

	r.status = resp.StatusCode
	if resp.StatusCode != http.StatusOK {
		r.err = fmt.Errorf("HTTP status code %d", resp.StatusCode)
	}
	return r
}

func percentile(sorted []time.Duration, p int) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	return sorted[len(sorted)*p/100]
}

func report(results []result, elapsed time.Duration) {
	var ok int
	latencies := make([]time.Duration, 0, len(results))
	byKind := map[string]int{}
	byUser := map[int64]int{}
	errorsSeen := map[string]int{}

	for _, r := range results {
		byKind[r.kind]++
		byUser[r.userID]++
		if r.err != nil {
			errorsSeen[r.err.Error()]++
			continue
		}
		ok++
		latencies = append(latencies, r.latency)
	}
	sort.Slice(latencies, func(i, j int) bool { return latencies[i] < latencies[j] })

	fmt.Println("\n================= WEBHOOK LOAD TEST =================")
	fmt.Printf("Updates posted:  %d\n", len(results))
	fmt.Printf("Answered 200:    %d\n", ok)
	fmt.Printf("Failed:          %d\n", len(results)-ok)
	fmt.Printf("Elapsed:         %.2fs (%.2f updates/s)\n", elapsed.Seconds(), float64(len(results))/elapsed.Seconds())

	if len(latencies) > 0 {
		fmt.Printf("Latency min/p50/p90/p99/max: %v / %v / %v / %v / %v\n",
			latencies[0], percentile(latencies, 50), percentile(latencies, 90),
			percentile(latencies, 99), latencies[len(latencies)-1])
	}

	fmt.Println("\nBy kind:")
	for kind, n := range byKind {
		fmt.Printf("  %-10s %d\n", kind, n)
	}
	fmt.Println("By user:")
	for user, n := range byUser {
		fmt.Printf("  %-10d %d\n", user, n)
	}
	if len(errorsSeen) > 0 {
		fmt.Println("Errors:")
		for msg, n := range errorsSeen {
			fmt.Printf("  %-40s %d\n", msg, n)
		}
	}
}
