package transport

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"reward-lab/auth"
	"reward-lab/domain"
	"reward-lab/mocks"
	"reward-lab/runtime"
	"reward-lab/services"
)

func newTestServer(t *testing.T) (*httptest.Server, *mocks.MockISessionArchive) {
	t.Helper()
	ctrl := gomock.NewController(t)

	log := logs.GetLoggerFromString("ERROR")
	engine := runtime.NewEngine(log, runtime.NewSessionStore(), 4096)
	tiers := auth.NewStaticTierProvider([]string{"premium-user"}, nil)
	archive := mocks.NewMockISessionArchive(ctrl)
	svc := services.NewSessionService(engine, tiers, archive)

	server := httptest.NewServer(NewRouter(log, svc, time.Hour))
	t.Cleanup(server.Close)
	return server, archive
}

func bearerFor(t *testing.T, userID string, roles ...string) string {
	t.Helper()
	token, err := auth.GenerateToken(userID, roles, time.Hour)
	require.NoError(t, err)
	return "Bearer " + token
}

func doJSON(t *testing.T, server *httptest.Server, method, path, token string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	request, err := http.NewRequest(method, server.URL+path, &buf)
	require.NoError(t, err)
	if token != "" {
		request.Header.Set("Authorization", token)
	}
	request.Header.Set("Content-Type", "application/json")

	response, err := http.DefaultClient.Do(request)
	require.NoError(t, err)
	return response
}

func decodeBody(t *testing.T, response *http.Response) map[string]any {
	t.Helper()
	defer response.Body.Close()
	var payload map[string]any
	require.NoError(t, json.NewDecoder(response.Body).Decode(&payload))
	return payload
}

func TestHandler_Auth(t *testing.T) {
	server, _ := newTestServer(t)

	t.Run("should reject requests without a bearer token", func(t *testing.T) {
		req := require.New(t)

		response := doJSON(t, server, http.MethodPost, "/v1/sessions", "", StartSessionRequest{ChallengeID: "spring-cup"})

		req.Equal(http.StatusUnauthorized, response.StatusCode)
	})

	t.Run("should reject garbage tokens", func(t *testing.T) {
		req := require.New(t)

		response := doJSON(t, server, http.MethodPost, "/v1/sessions", "Bearer not-a-token", StartSessionRequest{ChallengeID: "spring-cup"})

		req.Equal(http.StatusUnauthorized, response.StatusCode)
	})

	t.Run("should issue a usable bearer token", func(t *testing.T) {
		req := require.New(t)

		response := doJSON(t, server, http.MethodPost, "/auth/token", "", TokenRequest{UserID: "alice", Roles: []string{auth.RoleUser}})
		req.Equal(http.StatusOK, response.StatusCode)
		token := decodeBody(t, response)["token"].(string)
		req.NotEmpty(token)

		response = doJSON(t, server, http.MethodGet, "/v1/progress", "Bearer "+token, nil)
		req.Equal(http.StatusNotFound, response.StatusCode)
	})

	t.Run("should refuse a token request with unknown roles", func(t *testing.T) {
		req := require.New(t)

		response := doJSON(t, server, http.MethodPost, "/auth/token", "", TokenRequest{UserID: "alice", Roles: []string{"root"}})

		req.Equal(http.StatusBadRequest, response.StatusCode)
	})

	t.Run("should leave health unauthenticated", func(t *testing.T) {
		req := require.New(t)

		response, err := http.Get(server.URL + "/health")

		req.NoError(err)
		req.Equal(http.StatusOK, response.StatusCode)
	})
}

func TestHandler_SessionLifecycle(t *testing.T) {
	server, _ := newTestServer(t)
	alice := bearerFor(t, "alice", auth.RoleUser)

	t.Run("should start a session and report zeroed counters", func(t *testing.T) {
		req := require.New(t)

		response := doJSON(t, server, http.MethodPost, "/v1/sessions", alice, StartSessionRequest{ChallengeID: "spring-cup"})

		req.Equal(http.StatusCreated, response.StatusCode)
		payload := decodeBody(t, response)
		req.Equal("alice", payload["user_id"])
		req.Equal("ACTIVE", payload["state"])
		req.Equal("PUBLIC", payload["visibility"])
		req.Zero(payload["total_engagement"])
	})

	t.Run("should refuse a second session for the same user", func(t *testing.T) {
		req := require.New(t)

		response := doJSON(t, server, http.MethodPost, "/v1/sessions", alice, StartSessionRequest{ChallengeID: "autumn-cup"})

		req.Equal(http.StatusConflict, response.StatusCode)
	})

	t.Run("should accumulate engagement and mirror it as stable currency", func(t *testing.T) {
		req := require.New(t)

		response := doJSON(t, server, http.MethodPost, "/v1/engagement", alice, RecordEngagementRequest{Delta: 1500})

		req.Equal(http.StatusOK, response.StatusCode)
		payload := decodeBody(t, response)
		req.EqualValues(1500, payload["total_engagement"])
		req.EqualValues(1500, payload["stable_currency_earned"])
	})

	t.Run("should reject a non positive delta", func(t *testing.T) {
		req := require.New(t)

		response := doJSON(t, server, http.MethodPost, "/v1/engagement", alice, map[string]any{"delta": -5})

		req.Equal(http.StatusBadRequest, response.StatusCode)
	})

	t.Run("should end the session and refuse further engagement", func(t *testing.T) {
		req := require.New(t)

		response := doJSON(t, server, http.MethodPost, "/v1/sessions/end", alice, nil)
		req.Equal(http.StatusOK, response.StatusCode)
		payload := decodeBody(t, response)
		req.Equal("ENDED", payload["state"])

		response = doJSON(t, server, http.MethodPost, "/v1/engagement", alice, RecordEngagementRequest{Delta: 10})
		req.Equal(http.StatusNotFound, response.StatusCode)
	})
}

func TestHandler_ProgressAndVisibility(t *testing.T) {
	server, _ := newTestServer(t)
	owner := bearerFor(t, "owner", auth.RoleUser)
	friend := bearerFor(t, "friend", auth.RoleUser)
	stranger := bearerFor(t, "stranger", auth.RoleUser)
	premium := bearerFor(t, "vip", auth.RolePremium)

	response := doJSON(t, server, http.MethodPost, "/v1/sessions", owner, StartSessionRequest{ChallengeID: "spring-cup", Visibility: "private"})
	require.Equal(t, http.StatusCreated, response.StatusCode)
	sessionID := decodeBody(t, response)["session_id"].(string)

	t.Run("should report partial window progress", func(t *testing.T) {
		req := require.New(t)

		response := doJSON(t, server, http.MethodPost, "/v1/engagement", owner, RecordEngagementRequest{Delta: 25_000})
		req.Equal(http.StatusOK, response.StatusCode)
		response.Body.Close()

		response = doJSON(t, server, http.MethodGet, "/v1/progress", owner, nil)
		req.Equal(http.StatusOK, response.StatusCode)
		payload := decodeBody(t, response)
		req.InDelta(0.25, payload["fraction"].(float64), 1e-9)
		req.Zero(payload["bonus_earned"])
		req.NotNil(payload["window_remaining_seconds"])
	})

	t.Run("should gate a private session behind the allow list", func(t *testing.T) {
		req := require.New(t)

		response := doJSON(t, server, http.MethodGet, "/v1/sessions/"+sessionID+"/access", stranger, nil)
		req.False(decodeBody(t, response)["can_view"].(bool))

		response = doJSON(t, server, http.MethodPost, "/v1/viewers", owner, GrantViewerRequest{ViewerID: "friend"})
		req.Equal(http.StatusNoContent, response.StatusCode)

		response = doJSON(t, server, http.MethodGet, "/v1/sessions/"+sessionID+"/access", friend, nil)
		req.True(decodeBody(t, response)["can_view"].(bool))
	})

	t.Run("should let premium viewers through regardless of the allow list", func(t *testing.T) {
		req := require.New(t)

		response := doJSON(t, server, http.MethodGet, "/v1/sessions/"+sessionID+"/access", premium, nil)

		req.True(decodeBody(t, response)["can_view"].(bool))
	})
}

func TestHandler_Leaderboard(t *testing.T) {
	server, archive := newTestServer(t)

	for i, user := range []string{"u1", "u2", "u3"} {
		token := bearerFor(t, user, auth.RoleUser)
		response := doJSON(t, server, http.MethodPost, "/v1/sessions", token, StartSessionRequest{ChallengeID: "spring-cup"})
		require.Equal(t, http.StatusCreated, response.StatusCode)
		response.Body.Close()

		response = doJSON(t, server, http.MethodPost, "/v1/engagement", token, RecordEngagementRequest{Delta: int64((i + 1) * 100)})
		require.Equal(t, http.StatusOK, response.StatusCode)
		response.Body.Close()
	}

	u3 := bearerFor(t, "u3", auth.RoleUser)
	response := doJSON(t, server, http.MethodPut, "/v1/audience", u3, SetAudienceRequest{Count: 50})
	require.Equal(t, http.StatusOK, response.StatusCode)
	response.Body.Close()

	viewer := bearerFor(t, "viewer", auth.RoleUser)

	t.Run("should rank the same session on both boards", func(t *testing.T) {
		req := require.New(t)

		response := doJSON(t, server, http.MethodGet, "/v1/challenges/spring-cup/leaderboard", viewer, nil)

		req.Equal(http.StatusOK, response.StatusCode)
		payload := decodeBody(t, response)
		top := payload["top_engagement"].(map[string]any)
		req.Equal("u3", top["user_id"])
		req.Equal("u3", payload["top_audience"].(map[string]any)["user_id"])
		req.Equal("u3", payload["cross_bonus_user"])
	})

	t.Run("should serve archived history for a challenge", func(t *testing.T) {
		req := require.New(t)
		archive.EXPECT().
			HistoryForChallenge(domain.ChallengeID("spring-cup")).
			Return([]domain.SessionSnapshot{{UserID: "old-timer", ChallengeID: "spring-cup", TotalEngagement: 9000}}, nil).
			Times(1)

		response := doJSON(t, server, http.MethodGet, "/v1/challenges/spring-cup/history", viewer, nil)

		req.Equal(http.StatusOK, response.StatusCode)
		payload := decodeBody(t, response)
		sessions := payload["sessions"].([]any)
		req.Len(sessions, 1)
		req.Equal("old-timer", sessions[0].(map[string]any)["user_id"])
	})

	t.Run("should return null leaders for an unknown challenge", func(t *testing.T) {
		req := require.New(t)

		response := doJSON(t, server, http.MethodGet, fmt.Sprintf("/v1/challenges/%s/leaderboard", "ghost-cup"), viewer, nil)

		req.Equal(http.StatusOK, response.StatusCode)
		payload := decodeBody(t, response)
		req.Nil(payload["top_engagement"])
		req.Nil(payload["top_audience"])
	})
}
