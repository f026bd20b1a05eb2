package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// TransferPayload is the body of POST /api/cards/transfer
type TransferPayload struct {
	FromCardID  uint64 `json:"fromCardId"`
	ToCardID    uint64 `json:"toCardId"`
	Amount      string `json:"amount"`
	Description string `json:"description"`
}

type signInPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type cardsPage struct {
	Content []struct {
		ID      uint64 `json:"id"`
		Balance string `json:"balance"`
	} `json:"content"`
}

// TestResult contains metrics for a single request
type TestResult struct {
	Scenario     string
	ResponseTime time.Duration
	StatusCode   int
	Error        error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests int
	Completed     int
	Refused       int // 4xx answers such as insufficient funds
	Failed        int // transport errors and 5xx answers
	TotalTime     time.Duration
	ResponseTimes []time.Duration
	StatusCounts  map[int]int
	ScenarioStats map[string]int
	ErrorCounts   map[string]int
	BalanceBefore decimal.Decimal
	BalanceAfter  decimal.Decimal
	mu            sync.Mutex
}

// TransferScenario is one direction and amount of a transfer
type TransferScenario struct {
	Name    string
	Reverse bool
	Amount  string
}

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 100, "Total number of transfers to attempt")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	username := flag.String("user", "", "Username owning both cards")
	password := flag.String("pass", "", "Password of that user")
	cardsStr := flag.String("cards", "1,2", "Two comma-separated card ids owned by the user")
	delayMs := flag.Int("delay", 0, "Delay between requests in milliseconds")
	flag.Parse()

	var cards []uint64
	for _, idStr := range strings.Split(*cardsStr, ",") {
		var id uint64
		if _, err := fmt.Sscanf(strings.TrimSpace(idStr), "%d", &id); err == nil && id > 0 {
			cards = append(cards, id)
		}
	}
	if len(cards) != 2 {
		fmt.Println("exactly two card ids are required")
		os.Exit(2)
	}

	client := &http.Client{Timeout: 10 * time.Second}

	token, err := signIn(client, *baseURL, *username, *password)
	if err != nil {
		fmt.Printf("sign-in failed: %v\n", err)
		os.Exit(1)
	}

	scenarios := []TransferScenario{
		{"Forward Small", false, "1.00"},
		{"Forward Large", false, "25.50"},
		{"Back Small", true, "1.00"},
		{"Back Large", true, "25.50"},
	}

	stats := &TestStats{
		TotalRequests: *totalRequests,
		ResponseTimes: make([]time.Duration, 0, *totalRequests),
		StatusCounts:  make(map[int]int),
		ScenarioStats: make(map[string]int),
		ErrorCounts:   make(map[string]int),
	}

	stats.BalanceBefore, err = sumBalances(client, *baseURL, token, cards)
	if err != nil {
		fmt.Printf("reading balances failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Transfers between cards %d and %d\n", cards[0], cards[1])
	fmt.Printf("Concurrency: %d goroutines, %d transfers, %d ms delay\n", *concurrency, *totalRequests, *delayMs)

	results := make(chan TestResult, *totalRequests)
	jobs := make(chan int, *totalRequests)

	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(client, *baseURL, token, *delayMs, cards, scenarios, jobs, results)
		}()
	}

	for i := 0; i < *totalRequests; i++ {
		jobs <- i
	}
	close(jobs)

	collected := make(chan struct{})
	go func() {
		defer close(collected)
		for result := range results {
			stats.record(result)
		}
	}()

	startTime := time.Now()
	wg.Wait()
	close(results)
	<-collected
	stats.TotalTime = time.Since(startTime)

	stats.BalanceAfter, err = sumBalances(client, *baseURL, token, cards)
	if err != nil {
		fmt.Printf("reading balances failed: %v\n", err)
		os.Exit(1)
	}

	printResults(stats)
	if !stats.BalanceBefore.Equal(stats.BalanceAfter) {
		os.Exit(1)
	}
}

func (s *TestStats) record(result TestResult) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ScenarioStats[result.Scenario]++
	s.ResponseTimes = append(s.ResponseTimes, result.ResponseTime)
	if result.StatusCode != 0 {
		s.StatusCounts[result.StatusCode]++
	}

	switch {
	case result.Error != nil:
		s.Failed++
		s.ErrorCounts[result.Error.Error()]++
	case result.StatusCode >= 500:
		s.Failed++
	case result.StatusCode >= 400:
		s.Refused++
	default:
		s.Completed++
	}
}

func worker(client *http.Client, baseURL, token string, delayMs int, cards []uint64,
	scenarios []TransferScenario, jobs <-chan int, results chan<- TestResult) {

	for jobID := range jobs {
		if delayMs > 0 {
			time.Sleep(time.Duration(delayMs) * time.Millisecond)
		}

		scenario := scenarios[rand.Intn(len(scenarios))]
		payload := TransferPayload{
			FromCardID:  cards[0],
			ToCardID:    cards[1],
			Amount:      scenario.Amount,
			Description: fmt.Sprintf("load-test-%d", jobID),
		}
		if scenario.Reverse {
			payload.FromCardID, payload.ToCardID = payload.ToCardID, payload.FromCardID
		}

		start := time.Now()
		status, err := postJSON(client, baseURL+"/api/cards/transfer", token, payload, nil)
		results <- TestResult{
			Scenario:     scenario.Name,
			ResponseTime: time.Since(start),
			StatusCode:   status,
			Error:        err,
		}
	}
}

func signIn(client *http.Client, baseURL, username, password string) (string, error) {
	var out tokenResponse
	status, err := postJSON(client, baseURL+"/api/auth/sign-in", "", signInPayload{username, password}, &out)
	if err != nil {
		return "", err
	}
	if status != http.StatusOK || out.Token == "" {
		return "", fmt.Errorf("HTTP status code %d", status)
	}
	return out.Token, nil
}

func sumBalances(client *http.Client, baseURL, token string, cards []uint64) (decimal.Decimal, error) {
	req, err := http.NewRequest(http.MethodGet, baseURL+"/api/cards/my-cards?size=100", nil)
	if err != nil {
		return decimal.Zero, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := client.Do(req)
	if err != nil {
		return decimal.Zero, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, fmt.Errorf("HTTP status code %d", resp.StatusCode)
	}

	var page cardsPage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	found := 0
	for _, c := range page.Content {
		if !slices.Contains(cards, c.ID) {
			continue
		}
		balance, err := decimal.NewFromString(c.Balance)
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(balance)
		found++
	}
	if found != len(cards) {
		return decimal.Zero, errors.New("not every card belongs to the signed-in user")
	}
	return total, nil
}

func postJSON(client *http.Client, url, token string, body any, out any) (int, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return 0, err
	}

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if out != nil && resp.StatusCode == http.StatusOK {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, err
		}
	}
	return resp.StatusCode, nil
}

func percentile(sorted []time.Duration, p int) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	return sorted[len(sorted)*p/100]
}

func printResults(stats *TestStats) {
	sorted := slices.Clone(stats.ResponseTimes)
	slices.Sort(sorted)

	var total time.Duration
	for _, rt := range sorted {
		total += rt
	}
	var avg time.Duration
	if len(sorted) > 0 {
		avg = total / time.Duration(len(sorted))
	}

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Transfers:     %d\n", stats.TotalRequests)
	fmt.Printf("Completed:           %d\n", stats.Completed)
	fmt.Printf("Refused (4xx):       %d\n", stats.Refused)
	fmt.Printf("Failed:              %d\n", stats.Failed)
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())
	fmt.Printf("Throughput:          %.2f transfers/s\n", float64(stats.TotalRequests)/stats.TotalTime.Seconds())

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average Response:    %v\n", avg)
	if len(sorted) > 0 {
		fmt.Printf("Minimum Response:    %v\n", sorted[0])
		fmt.Printf("Maximum Response:    %v\n", sorted[len(sorted)-1])
	}
	fmt.Printf("P50 Response:        %v\n", percentile(sorted, 50))
	fmt.Printf("P95 Response:        %v\n", percentile(sorted, 95))
	fmt.Printf("P99 Response:        %v\n", percentile(sorted, 99))

	fmt.Println("\n----------------- STATUS CODES -----------------")
	for status, count := range stats.StatusCounts {
		fmt.Printf("%d: %d\n", status, count)
	}

	fmt.Println("\n----------------- SCENARIOS -----------------")
	for scenario, count := range stats.ScenarioStats {
		fmt.Printf("%-15s: %d\n", scenario, count)
	}

	if len(stats.ErrorCounts) > 0 {
		fmt.Println("\n----------------- ERRORS -----------------")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d\n", errMsg, count)
		}
	}

	fmt.Println("\n================= CONSERVATION =================")
	fmt.Printf("Sum before: %s\n", stats.BalanceBefore.StringFixed(2))
	fmt.Printf("Sum after:  %s\n", stats.BalanceAfter.StringFixed(2))
	if stats.BalanceBefore.Equal(stats.BalanceAfter) {
		fmt.Println("✅ Funds conserved across all transfers")
	} else {
		fmt.Println("❌ Funds NOT conserved")
	}
	fmt.Println("================================================")
}
