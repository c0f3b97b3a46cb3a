package e2e

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type testRewardFlowSuite struct {
	BaseHTTPSuite
}

func TestRewardFlowSuite(t *testing.T) {
	suite.Run(t, &testRewardFlowSuite{})
}

type sessionBody struct {
	SessionID            string `json:"session_id"`
	UserID               string `json:"user_id"`
	State                string `json:"state"`
	Visibility           string `json:"visibility"`
	TotalEngagement      int64  `json:"total_engagement"`
	StableCurrencyEarned int64  `json:"stable_currency_earned"`
	BonusCurrencyEarned  int64  `json:"bonus_currency_earned"`
	AudienceCount        int64  `json:"audience_count"`
}

type progressBody struct {
	BonusEarned            int64   `json:"bonus_earned"`
	Fraction               float64 `json:"fraction"`
	WindowRemainingSeconds *int64  `json:"window_remaining_seconds"`
}

func (s *testRewardFlowSuite) TestFullRewardFlow() {
	streamer := s.BearerFor("streamer")
	rival := s.BearerFor("rival")
	premium := s.BearerFor("premium-e2e", "premium")

	// --- STEP 1: SESSION START ---
	s.Step("Streamer goes live on the spring challenge")
	var session sessionBody
	response := s.Call(http.MethodPost, "/v1/sessions", streamer, map[string]any{"challenge_id": "spring-cup"}, &session)
	s.Require().Equal(http.StatusCreated, response.StatusCode)
	s.Require().Equal("ACTIVE", session.State)
	s.Require().Zero(session.TotalEngagement)

	s.Step("A second go-live for the same user is refused")
	response = s.Call(http.MethodPost, "/v1/sessions", streamer, map[string]any{"challenge_id": "spring-cup"}, nil)
	s.Require().Equal(http.StatusConflict, response.StatusCode)

	// --- STEP 2: ENGAGEMENT BELOW THE MINT THRESHOLD ---
	s.Step("Partial engagement moves the progress bar, mints nothing")
	response = s.Call(http.MethodPost, "/v1/engagement", streamer, map[string]any{"delta": 40_000}, &session)
	s.Require().Equal(http.StatusOK, response.StatusCode)
	s.Require().EqualValues(40_000, session.TotalEngagement)
	s.Require().EqualValues(40_000, session.StableCurrencyEarned)
	s.Require().Zero(session.BonusCurrencyEarned)

	var progress progressBody
	response = s.Call(http.MethodGet, "/v1/progress", streamer, nil, &progress)
	s.Require().Equal(http.StatusOK, response.StatusCode)
	s.Require().InDelta(0.4, progress.Fraction, 1e-9)
	s.Require().NotNil(progress.WindowRemainingSeconds)

	// --- STEP 3: CROSSING THE THRESHOLD ---
	s.Step("Crossing the threshold mints exactly one bonus unit")
	response = s.Call(http.MethodPost, "/v1/engagement", streamer, map[string]any{"delta": 60_000}, &session)
	s.Require().Equal(http.StatusOK, response.StatusCode)
	s.Require().EqualValues(1, session.BonusCurrencyEarned)

	response = s.Call(http.MethodGet, "/v1/progress", streamer, nil, &progress)
	s.Require().Equal(http.StatusOK, response.StatusCode)
	s.Require().EqualValues(1, progress.BonusEarned)
	s.Require().InDelta(1.0, progress.Fraction, 1e-9)

	s.Step("A jump far past the threshold still mints a single unit")
	response = s.Call(http.MethodPost, "/v1/engagement", streamer, map[string]any{"delta": 250_000}, &session)
	s.Require().Equal(http.StatusOK, response.StatusCode)
	s.Require().EqualValues(2, session.BonusCurrencyEarned)
	s.Require().EqualValues(350_000, session.StableCurrencyEarned)

	// --- STEP 4: PREMIUM BYPASS ---
	s.Step("Premium earns proportionally with no window")
	response = s.Call(http.MethodPost, "/v1/sessions", premium, map[string]any{"challenge_id": "spring-cup"}, nil)
	s.Require().Equal(http.StatusCreated, response.StatusCode)

	var premiumSession sessionBody
	response = s.Call(http.MethodPost, "/v1/engagement", premium, map[string]any{"delta": 250_000}, &premiumSession)
	s.Require().Equal(http.StatusOK, response.StatusCode)
	s.Require().EqualValues(2, premiumSession.BonusCurrencyEarned)

	progress = progressBody{}
	response = s.Call(http.MethodGet, "/v1/progress", premium, nil, &progress)
	s.Require().Equal(http.StatusOK, response.StatusCode)
	s.Require().Nil(progress.WindowRemainingSeconds)

	// --- STEP 5: VISIBILITY ---
	s.Step("A private session is gated behind its allow list")
	var privateSession sessionBody
	response = s.Call(http.MethodPost, "/v1/sessions", rival, map[string]any{"challenge_id": "spring-cup", "visibility": "private"}, &privateSession)
	s.Require().Equal(http.StatusCreated, response.StatusCode)

	var access struct {
		CanView bool `json:"can_view"`
	}
	response = s.Call(http.MethodGet, "/v1/sessions/"+privateSession.SessionID+"/access", streamer, nil, &access)
	s.Require().Equal(http.StatusOK, response.StatusCode)
	s.Require().False(access.CanView)

	response = s.Call(http.MethodPost, "/v1/viewers", rival, map[string]any{"viewer_id": "streamer"}, nil)
	s.Require().Equal(http.StatusNoContent, response.StatusCode)

	response = s.Call(http.MethodGet, "/v1/sessions/"+privateSession.SessionID+"/access", streamer, nil, &access)
	s.Require().Equal(http.StatusOK, response.StatusCode)
	s.Require().True(access.CanView)

	// --- STEP 6: RANKINGS ---
	s.Step("Audience and engagement leaders are reported per challenge")
	response = s.Call(http.MethodPut, "/v1/audience", streamer, map[string]any{"count": 120}, &session)
	s.Require().Equal(http.StatusOK, response.StatusCode)
	s.Require().EqualValues(120, session.AudienceCount)

	var board struct {
		TopEngagement *sessionBody `json:"top_engagement"`
		TopAudience   *sessionBody `json:"top_audience"`
		CrossBonus    string       `json:"cross_bonus_user"`
	}
	response = s.Call(http.MethodGet, "/v1/challenges/spring-cup/leaderboard", rival, nil, &board)
	s.Require().Equal(http.StatusOK, response.StatusCode)
	s.Require().NotNil(board.TopEngagement)
	s.Require().Equal("streamer", board.TopEngagement.UserID)
	s.Require().NotNil(board.TopAudience)
	s.Require().Equal("streamer", board.TopAudience.UserID)
	s.Require().Equal("streamer", board.CrossBonus)

	// --- STEP 7: SESSION END & WRITE-BEHIND ARCHIVE ---
	s.Step("Ending the session freezes counters and archives asynchronously")
	response = s.Call(http.MethodPost, "/v1/sessions/end", streamer, nil, &session)
	s.Require().Equal(http.StatusOK, response.StatusCode)
	s.Require().Equal("ENDED", session.State)
	s.Require().EqualValues(350_000, session.TotalEngagement)

	response = s.Call(http.MethodPost, "/v1/engagement", streamer, map[string]any{"delta": 10}, nil)
	s.Require().Equal(http.StatusNotFound, response.StatusCode)

	s.Require().Eventually(func() bool {
		var history struct {
			Sessions []sessionBody `json:"sessions"`
		}
		response := s.Call(http.MethodGet, "/v1/challenges/spring-cup/history", rival, nil, &history)
		if response.StatusCode != http.StatusOK {
			return false
		}
		for _, archived := range history.Sessions {
			if archived.UserID == "streamer" && archived.TotalEngagement == 350_000 && archived.BonusCurrencyEarned == 2 {
				return true
			}
		}
		return false
	}, 5*time.Second, 100*time.Millisecond, "Archived session not visible within timeout")
}
