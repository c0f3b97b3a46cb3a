package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/suite"

	"reward-lab/auth"
	"reward-lab/observability"
	"reward-lab/repositories"
	"reward-lab/runtime"
	"reward-lab/runtime/workers"
	"reward-lab/services"
	"reward-lab/sink"
	"reward-lab/transport"
)

// BaseHTTPSuite boots the full stack once per suite: engine, badger
// archive, event fan-out under supervision and the gin router behind
// an httptest server. Setting E2E_BASE_URL targets an external server
// instead.
type BaseHTTPSuite struct {
	suite.Suite
	Config Config

	baseURL string
	server  *httptest.Server
	cancel  context.CancelFunc
	db      *badger.DB
	Stats   *observability.EngagementStats
	Archive repositories.ISessionArchive
}

func (s *BaseHTTPSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)

	if s.Config.BaseURL != "" {
		s.baseURL = s.Config.BaseURL
		return
	}

	log := logs.GetLoggerFromString("ERROR")

	s.db, err = badger.Open(badger.DefaultOptions(s.T().TempDir()).
		WithLoggingLevel(badger.ERROR))
	s.Require().NoError(err)

	store := runtime.NewSessionStore()
	engine := runtime.NewEngine(log, store, 4096)

	s.Archive = repositories.NewSessionArchive(s.db, log)
	s.Stats = observability.NewEngagementStats()
	fanout := workers.NewEventFanout(log, engine.Events(),
		sink.NewArchiveSink(s.Archive, log),
		sink.NewStatsSink(s.Stats),
	)

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	sup := workers.NewSupervisor(log)
	sup.Add(fanout)
	go sup.Run(ctx)

	tiers := auth.NewStaticTierProvider([]string{"premium-e2e"}, []string{"dev-e2e"})
	svc := services.NewSessionService(engine, tiers, s.Archive)

	s.server = httptest.NewServer(transport.NewRouter(log, svc, time.Hour))
	s.baseURL = s.server.URL
}

func (s *BaseHTTPSuite) TearDownSuite() {
	if s.server != nil {
		s.server.Close()
	}
	if s.cancel != nil {
		s.cancel()
	}
	if s.db != nil {
		s.Require().NoError(s.db.Close())
	}
}

// Step prints a colorized header so scenarios read as a narrative in
// verbose output.
func (s *BaseHTTPSuite) Step(name string) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)
}

// BearerFor mints a short-lived token for a scenario user through the
// token endpoint, so external targets work the same as the in-process
// stack.
func (s *BaseHTTPSuite) BearerFor(userID string, roles ...string) string {
	var out struct {
		Token string `json:"token"`
	}
	response := s.Call(http.MethodPost, "/auth/token", "", map[string]any{"user_id": userID, "roles": roles}, &out)
	s.Require().Equal(http.StatusOK, response.StatusCode)
	s.Require().NotEmpty(out.Token)
	return "Bearer " + out.Token
}

// Call performs one JSON round trip and decodes the response body.
// A nil out pointer skips decoding.
func (s *BaseHTTPSuite) Call(method, path, token string, body any, out any) *http.Response {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}

	request, err := http.NewRequest(method, s.baseURL+path, &buf)
	s.Require().NoError(err)
	request.Header.Set("Content-Type", "application/json")
	if token != "" {
		request.Header.Set("Authorization", token)
	}

	start := time.Now()
	response, err := http.DefaultClient.Do(request)
	s.Require().NoError(err)
	defer response.Body.Close()

	logBuilder := strings.Builder{}
	fmt.Fprintf(&logBuilder, "HTTP %s %s [%d] in %v", method, path, response.StatusCode, time.Since(start))

	var raw json.RawMessage
	decodeErr := json.NewDecoder(response.Body).Decode(&raw)

	// Log full JSON bodies if E2E_DEBUG_JSON is enabled
	if s.Config.DebugJSON {
		if body != nil {
			pretty, _ := json.MarshalIndent(body, "", "  ")
			fmt.Fprintf(&logBuilder, "\nREQUEST:\n%s", pretty)
		}
		if decodeErr == nil {
			var indented bytes.Buffer
			_ = json.Indent(&indented, raw, "", "  ")
			fmt.Fprintf(&logBuilder, "\nRESPONSE:\n%s", indented.String())
		}
	}
	s.T().Log(logBuilder.String())

	if out != nil && decodeErr == nil {
		s.Require().NoError(json.Unmarshal(raw, out))
	}
	return response
}
