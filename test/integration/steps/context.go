// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"

	"github.com/expense-tracker/backend/config"
	"github.com/expense-tracker/backend/internal/infra/dependency"
	"github.com/expense-tracker/backend/test/integration/mock"
)

// TestContext holds the test state for each scenario.
type TestContext struct {
	// HTTP
	server       *httptest.Server
	response     *http.Response
	responseBody []byte

	// Request building
	requestHeaders map[string]string

	// Auth
	accessToken  string
	refreshToken string

	// Infra mocks
	clock *mock.Time
	cfg   *config.Config
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
		_ = os.Setenv("ENV", "test")
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		dbMock := mock.NewDb()
		if err := dbMock.Reset(); err != nil {
			return ctx, err
		}
		redisClient := mock.NewRedis()
		if err := mock.ClearRedis(redisClient); err != nil {
			return ctx, err
		}

		tc := &TestContext{
			requestHeaders: make(map[string]string),
			clock:          mock.NewTime(),
			cfg:            config.Load(),
		}

		injector := dependency.NewInjector(tc.cfg, dbMock.DbConn, redisClient, tc.clock)
		engine := injector.Router.Setup("test")
		tc.server = httptest.NewServer(engine)

		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc := GetTestContext(ctx)
		if tc != nil && tc.server != nil {
			tc.server.Close()
		}
		return ctx, nil
	})

	registerAPISteps(ctx)
	registerResponseSteps(ctx)
}
