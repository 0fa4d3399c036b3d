package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"
)

// registerAPISteps registers request building and sending steps.
func registerAPISteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the API server is running$`, theAPIServerIsRunning)
	ctx.Step(`^the current date is "([^"]*)"$`, theCurrentDateIs)
	ctx.Step(`^I am registered as "([^"]*)"$`, iAmRegisteredAs)
	ctx.Step(`^I am not authenticated$`, iAmNotAuthenticated)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, iSendARequestToWithBody)
	ctx.Step(`^I request the monthly stats for the current month$`, iRequestTheMonthlyStatsForTheCurrentMonth)
}

// registerResponseSteps registers response validation steps.
func registerResponseSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
	ctx.Step(`^the response should contain "([^"]*)"$`, theResponseShouldContain)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, theResponseFieldShouldExist)
	ctx.Step(`^the response field "([^"]*)" should have (\d+) elements?$`, theResponseFieldShouldHaveElements)
}

func theAPIServerIsRunning(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil || tc.server == nil {
		return fmt.Errorf("test server is not running")
	}
	return nil
}

func theCurrentDateIs(ctx context.Context, date string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return fmt.Errorf("failed to parse date %q: %w", date, err)
	}
	tc.clock.SetCurrentTime(parsed.UTC())
	return nil
}

// iAmRegisteredAs registers a fresh user through the API and stores the
// returned tokens for subsequent requests.
func iAmRegisteredAs(ctx context.Context, email string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	body := map[string]string{
		"email":    email,
		"name":     "Test User",
		"password": "integration-pass",
	}
	payload, _ := json.Marshal(body)

	resp, err := http.Post(tc.server.URL+"/api/v1/auth/register", "application/json", bytes.NewReader(payload))
	if err != nil {
		return ctx, fmt.Errorf("failed to register: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		raw, _ := io.ReadAll(resp.Body)
		return ctx, fmt.Errorf("registration failed with status %d: %s", resp.StatusCode, string(raw))
	}

	var authResp struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&authResp); err != nil {
		return ctx, fmt.Errorf("failed to decode registration response: %w", err)
	}

	tc.accessToken = authResp.AccessToken
	tc.refreshToken = authResp.RefreshToken
	return SetTestContext(ctx, tc), nil
}

func iAmNotAuthenticated(ctx context.Context) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	tc.accessToken = ""
	tc.refreshToken = ""
	return SetTestContext(ctx, tc), nil
}

func iSendARequestTo(ctx context.Context, method, endpoint string) (context.Context, error) {
	return doRequest(ctx, method, endpoint, nil)
}

func iSendARequestToWithBody(ctx context.Context, method, endpoint string, body *godog.DocString) (context.Context, error) {
	return doRequest(ctx, method, endpoint, bytes.NewBufferString(body.Content))
}

// iRequestTheMonthlyStatsForTheCurrentMonth queries the stats endpoint for
// the real wall-clock month, since transactions are stamped with time.Now.
func iRequestTheMonthlyStatsForTheCurrentMonth(ctx context.Context) (context.Context, error) {
	now := time.Now().UTC()
	endpoint := fmt.Sprintf("/api/v1/analytics/monthly-stats?year=%d&month=%d", now.Year(), int(now.Month())-1)
	return doRequest(ctx, "GET", endpoint, nil)
}

func doRequest(ctx context.Context, method, endpoint string, body io.Reader) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	req, err := http.NewRequest(method, tc.server.URL+endpoint, body)
	if err != nil {
		return ctx, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range tc.requestHeaders {
		req.Header.Set(key, value)
	}
	if tc.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+tc.accessToken)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return ctx, fmt.Errorf("failed to send request: %w", err)
	}
	tc.response = resp
	tc.responseBody, err = io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return ctx, fmt.Errorf("failed to read response body: %w", err)
	}

	return SetTestContext(ctx, tc), nil
}

func theResponseStatusShouldBe(ctx context.Context, expectedStatus int) error {
	tc := GetTestContext(ctx)
	if tc == nil || tc.response == nil {
		return fmt.Errorf("no response received")
	}
	if tc.response.StatusCode != expectedStatus {
		return fmt.Errorf("expected status %d, got %d. Body: %s", expectedStatus, tc.response.StatusCode, string(tc.responseBody))
	}
	return nil
}

func theResponseShouldContain(ctx context.Context, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if !strings.Contains(string(tc.responseBody), expected) {
		return fmt.Errorf("response does not contain %q. Body: %s", expected, string(tc.responseBody))
	}
	return nil
}

// lookupField resolves a dot-separated path like "groups.0.name" in the
// parsed response body.
func lookupField(body []byte, path string) (any, error) {
	var data any
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("failed to parse response JSON: %w", err)
	}

	current := data
	for _, part := range strings.Split(path, ".") {
		switch v := current.(type) {
		case map[string]any:
			value, ok := v[part]
			if !ok {
				return nil, fmt.Errorf("field %q not found in response", path)
			}
			current = value
		case []any:
			index, err := strconv.Atoi(part)
			if err != nil || index < 0 || index >= len(v) {
				return nil, fmt.Errorf("index %q out of range in field %q", part, path)
			}
			current = v[index]
		default:
			return nil, fmt.Errorf("field %q not found in response", path)
		}
	}
	return current, nil
}

func theResponseFieldShouldBe(ctx context.Context, field, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	value, err := lookupField(tc.responseBody, field)
	if err != nil {
		return fmt.Errorf("%w. Body: %s", err, string(tc.responseBody))
	}

	actual := fmt.Sprintf("%v", value)
	if actual != expected {
		return fmt.Errorf("field %q expected %q, got %q. Body: %s", field, expected, actual, string(tc.responseBody))
	}
	return nil
}

func theResponseFieldShouldExist(ctx context.Context, field string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if _, err := lookupField(tc.responseBody, field); err != nil {
		return fmt.Errorf("%w. Body: %s", err, string(tc.responseBody))
	}
	return nil
}

func theResponseFieldShouldHaveElements(ctx context.Context, field string, count int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	value, err := lookupField(tc.responseBody, field)
	if err != nil {
		return fmt.Errorf("%w. Body: %s", err, string(tc.responseBody))
	}
	list, ok := value.([]any)
	if !ok {
		return fmt.Errorf("field %q is not an array. Body: %s", field, string(tc.responseBody))
	}
	if len(list) != count {
		return fmt.Errorf("field %q expected %d elements, got %d. Body: %s", field, count, len(list), string(tc.responseBody))
	}
	return nil
}
