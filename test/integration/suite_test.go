//go:build integration

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/cucumber/godog"

	"github.com/jsamuelsen/quote-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/quote-service/internal/platform/config"
)

// testContext holds state shared across step definitions within a scenario.
type testContext struct {
	baseURL      string
	client       *http.Client
	server       *httptest.Server
	stop         func()
	response     *http.Response
	responseBody []byte
}

// newTestContext targets BASE_URL when set, otherwise an in-process service
// started by a Given step.
func newTestContext() *testContext {
	return &testContext{
		baseURL: os.Getenv("BASE_URL"),
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// reset clears response state and stops any in-process service.
func (tc *testContext) reset() {
	if tc.stop != nil {
		tc.stop()
	}

	tc.server = nil
	tc.stop = nil
	tc.response = nil
	tc.responseBody = nil
}

// InitializeScenario registers step definitions for each scenario.
func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := newTestContext()
	external := tc.baseURL

	ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		tc.reset()
		tc.baseURL = external
		return ctx, nil
	})

	ctx.After(func(ctx context.Context, _ *godog.Scenario, _ error) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	ctx.Step(`^the service is running$`, tc.theServiceIsRunning)
	ctx.Step(`^an empty quote service$`, tc.anEmptyQuoteService)
	ctx.Step(`^I request (GET|POST|DELETE) "([^"]*)"$`, tc.iRequest)
	ctx.Step(`^I add the quote "([^"]*)" attributed to "([^"]*)" about "([^"]*)"$`, tc.iAddTheQuote)
	ctx.Step(`^the response status should be (\d+)$`, tc.theResponseStatusShouldBe)
	ctx.Step(`^the response should contain "(.*)"$`, tc.theResponseShouldContain)
	ctx.Step(`^the response should list (\d+) quotes$`, tc.theResponseShouldListQuotes)
}

// anEmptyQuoteService starts an in-process service over an empty memory
// store, unless the suite targets an external service.
func (tc *testContext) anEmptyQuoteService() error {
	if tc.baseURL != "" && tc.server == nil {
		return godog.ErrSkip
	}

	dir, err := os.MkdirTemp("", "quote-service-*")
	if err != nil {
		return err
	}

	server, stop, err := startService(config.VariantMemory, dir)
	if err != nil {
		_ = os.RemoveAll(dir)
		return err
	}

	tc.server = server
	tc.baseURL = server.URL
	tc.stop = func() {
		stop()
		_ = os.RemoveAll(dir)
	}

	return nil
}

// theServiceIsRunning verifies the service is reachable.
func (tc *testContext) theServiceIsRunning() error {
	if tc.baseURL == "" {
		if err := tc.anEmptyQuoteService(); err != nil {
			return err
		}
	}

	if err := tc.iRequest(http.MethodGet, "/-/live"); err != nil {
		return fmt.Errorf("service is not running at %s: %w", tc.baseURL, err)
	}

	return tc.theResponseStatusShouldBe(http.StatusOK)
}

func (tc *testContext) iRequest(method, path string) error {
	return tc.do(method, path, nil)
}

func (tc *testContext) iAddTheQuote(text, attributedTo, subjects string) error {
	req := dto.QuoteRequest{Text: text, AttributedTo: attributedTo, Subjects: []string{}}
	for _, s := range strings.Split(subjects, ",") {
		if s = strings.TrimSpace(s); s != "" {
			req.Subjects = append(req.Subjects, s)
		}
	}

	body, err := json.Marshal(req)
	if err != nil {
		return err
	}

	return tc.do(http.MethodPost, "/quote", body)
}

func (tc *testContext) do(method, path string, body []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, tc.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := tc.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	tc.response = resp

	tc.responseBody, err = io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	return nil
}

// theResponseStatusShouldBe asserts the response status code.
func (tc *testContext) theResponseStatusShouldBe(expectedCode int) error {
	if tc.response == nil {
		return errors.New("no response received")
	}

	if tc.response.StatusCode != expectedCode {
		return fmt.Errorf("expected status %d, got %d. Body: %s",
			expectedCode, tc.response.StatusCode, string(tc.responseBody))
	}

	return nil
}

// theResponseShouldContain asserts the response body contains the given
// text. Escaped quotes in the step are matched literally.
func (tc *testContext) theResponseShouldContain(text string) error {
	if tc.responseBody == nil {
		return errors.New("no response body")
	}

	text = strings.ReplaceAll(text, `\"`, `"`)
	if !strings.Contains(string(tc.responseBody), text) {
		return fmt.Errorf("response body does not contain %q.\nBody: %s", text, tc.responseBody)
	}

	return nil
}

func (tc *testContext) theResponseShouldListQuotes(n int) error {
	var quotes []dto.QuoteResponse
	if err := json.Unmarshal(tc.responseBody, &quotes); err != nil {
		return fmt.Errorf("response is not a quote list: %w.\nBody: %s", err, tc.responseBody)
	}

	if len(quotes) != n {
		return fmt.Errorf("expected %d quotes, got %d", n, len(quotes))
	}

	return nil
}

// TestFeatures runs the GoDog BDD test suite.
func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../features"},
			TestingT: t,
			Tags:     os.Getenv("GODOG_TAGS"),
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
