package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/hibiken/asynq"
	"github.com/spf13/cobra"

	"github.com/isabitech/branchbooks/internal/jobs"
)

var (
	baseURL  string
	token    string
	redisURL string
	timeout  time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "branchbooks-cli",
		Short: "BranchBooks CLI tool",
		Long:  `A command line interface for the BranchBooks back-office API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the BranchBooks API")
	rootCmd.PersistentFlags().StringVar(&token, "token", "", "Bearer token for authenticated deployments")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	var branchID, date string
	var refresh bool

	// Summary commands
	summaryCmd := &cobra.Command{
		Use:   "summary",
		Short: "Daily summary operations",
	}

	dailyCmd := &cobra.Command{
		Use:   "daily",
		Short: "Fetch the daily summary for a branch-day",
		Run: func(cmd *cobra.Command, args []string) {
			q := url.Values{"branchId": {branchID}}
			if date != "" {
				q.Set("date", date)
			}
			if refresh {
				q.Set("refresh", "true")
			}
			getAndPrint("/api/v1/summaries/daily?" + q.Encode())
		},
	}
	dailyCmd.Flags().StringVar(&branchID, "branch", "", "Branch ID (required)")
	dailyCmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD, defaults to today)")
	dailyCmd.Flags().BoolVar(&refresh, "refresh", false, "Bypass the cache")
	dailyCmd.MarkFlagRequired("branch")
	summaryCmd.AddCommand(dailyCmd)
	rootCmd.AddCommand(summaryCmd)

	// Branch directory
	branchesCmd := &cobra.Command{
		Use:   "branches",
		Short: "List branches",
		Run: func(cmd *cobra.Command, args []string) {
			getAndPrint("/api/v1/branches")
		},
	}
	rootCmd.AddCommand(branchesCmd)

	// Operation commands
	operationCmd := &cobra.Command{
		Use:   "operation",
		Short: "Daily operation commands",
	}

	var submitBranch, submitDate string
	submitCmd := &cobra.Command{
		Use:   "submit <operationId>",
		Short: "Submit (freeze) a branch-day",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			submitOperation(args[0], submitBranch, submitDate)
		},
	}
	submitCmd.Flags().StringVar(&submitBranch, "branch", "", "Branch ID (required)")
	submitCmd.Flags().StringVar(&submitDate, "date", "", "Date (YYYY-MM-DD, required)")
	submitCmd.MarkFlagRequired("branch")
	submitCmd.MarkFlagRequired("date")
	operationCmd.AddCommand(submitCmd)
	rootCmd.AddCommand(operationCmd)

	// Cache warmup
	var warmupDate string
	warmupCmd := &cobra.Command{
		Use:   "warmup",
		Short: "Enqueue a daily summary cache warmup",
		Run: func(cmd *cobra.Command, args []string) {
			enqueueWarmup(warmupDate)
		},
	}
	warmupCmd.Flags().StringVar(&redisURL, "redis", "redis://localhost:6379", "Redis URL for the job queue")
	warmupCmd.Flags().StringVar(&warmupDate, "date", "", "Date to warm (defaults to today)")
	rootCmd.AddCommand(warmupCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func getAndPrint(path string) {
	req, err := http.NewRequest(http.MethodGet, baseURL+path, nil)
	if err != nil {
		fmt.Printf("Error building request: %v\n", err)
		os.Exit(1)
	}
	body, status := doRequest(req)

	if status != http.StatusOK {
		fmt.Printf("Request FAILED (Status: %d)\nResponse: %s\n", status, string(body))
		os.Exit(1)
	}

	var result any
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}
	printJSON(result)
}

func submitOperation(operationID, branchID, date string) {
	payload, _ := json.Marshal(map[string]string{"branchId": branchID, "date": date})

	req, err := http.NewRequest(http.MethodPatch,
		baseURL+"/api/v1/operations/daily/"+operationID+"/submit",
		bytes.NewReader(payload))
	if err != nil {
		fmt.Printf("Error building request: %v\n", err)
		os.Exit(1)
	}
	req.Header.Set("Content-Type", "application/json")

	body, status := doRequest(req)

	switch status {
	case http.StatusOK:
		fmt.Printf("Operation %s submitted\n", operationID)
	case http.StatusConflict:
		fmt.Printf("Operation %s was already submitted\n", operationID)
		os.Exit(1)
	default:
		fmt.Printf("Submit FAILED (Status: %d)\nResponse: %s\n", status, string(body))
		os.Exit(1)
	}
}

func enqueueWarmup(date string) {
	opts, err := asynq.ParseRedisURI(redisURL)
	if err != nil {
		fmt.Printf("Invalid redis URL: %v\n", err)
		os.Exit(1)
	}
	redisOpts, ok := opts.(asynq.RedisClientOpt)
	if !ok {
		fmt.Println("Unsupported redis configuration")
		os.Exit(1)
	}

	client := jobs.NewClient(redisOpts, "")
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	info, err := client.EnqueueWarmDaily(ctx, jobs.WarmDailyPayload{Date: date})
	if err != nil {
		fmt.Printf("Failed to enqueue warmup: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Warmup enqueued (task %s, queue %s)\n", info.ID, info.Queue)
}

func doRequest(req *http.Request) ([]byte, int) {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	return body, resp.StatusCode
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("Failed to render: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
