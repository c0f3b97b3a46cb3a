package transport

import (
	stderrors "errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"reward-lab/auth"
	"reward-lab/domain"
	"reward-lab/errors"
	"reward-lab/services"
)

// Handler exposes the reward engine over HTTP. Every route below the
// /v1 group runs behind RequireAuth, so callerID and callerTier are
// always populated when a handler executes.
type Handler struct {
	log           *slog.Logger
	svc           services.ISessionService
	tokenDuration time.Duration
}

func NewHandler(log *slog.Logger, svc services.ISessionService, tokenDuration time.Duration) *Handler {
	return &Handler{log: log, svc: svc, tokenDuration: tokenDuration}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.POST("/auth/token", h.issueToken)

	v1 := r.Group("/v1")
	v1.Use(RequireAuth())

	v1.POST("/sessions", h.startSession)
	v1.POST("/sessions/end", h.endSession)
	v1.POST("/engagement", h.recordEngagement)
	v1.PUT("/audience", h.setAudience)
	v1.POST("/viewers", h.grantViewer)
	v1.GET("/progress", h.progress)
	v1.GET("/sessions/:id/access", h.canView)
	v1.GET("/challenges/:id/leaderboard", h.leaderboard)
	v1.GET("/challenges/:id/history", h.history)
}

// issueToken mints a signed bearer token. Identity verification is a
// collaborator's concern; in this deployment the caller vouches for
// the user id, which is acceptable inside the operator network only.
func (h *Handler) issueToken(c *gin.Context) {
	var req TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed body"})
		return
	}
	if err := validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := auth.GenerateToken(req.UserID, req.Roles, h.tokenDuration)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (h *Handler) startSession(c *gin.Context) {
	var req StartSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed body"})
		return
	}
	if err := validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	visibility, err := parseVisibility(req.Visibility)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	snapshot, err := h.svc.StartSession(callerID(c), domain.ChallengeID(req.ChallengeID), visibility)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toSessionResponse(snapshot))
}

func (h *Handler) endSession(c *gin.Context) {
	snapshot, err := h.svc.EndSession(callerID(c))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSessionResponse(snapshot))
}

func (h *Handler) recordEngagement(c *gin.Context) {
	var req RecordEngagementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed body"})
		return
	}

	snapshot, err := h.svc.RecordEngagement(callerID(c), req.Delta)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSessionResponse(snapshot))
}

func (h *Handler) setAudience(c *gin.Context) {
	var req SetAudienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed body"})
		return
	}

	snapshot, err := h.svc.SetAudience(callerID(c), req.Count)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSessionResponse(snapshot))
}

func (h *Handler) grantViewer(c *gin.Context) {
	var req GrantViewerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed body"})
		return
	}
	if err := validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.svc.GrantViewer(callerID(c), req.ViewerID); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) progress(c *gin.Context) {
	progress, err := h.svc.Progress(callerID(c))
	if err != nil {
		h.writeError(c, err)
		return
	}

	resp := gin.H{
		"bonus_earned": progress.Earned,
		"fraction":     progress.Fraction,
	}
	if progress.TimeRemaining != nil {
		resp["window_remaining_seconds"] = int64(progress.TimeRemaining.Seconds())
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) canView(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed session id"})
		return
	}

	allowed := h.svc.CanView(callerID(c), sessionID, callerTier(c))
	c.JSON(http.StatusOK, gin.H{"can_view": allowed})
}

func (h *Handler) leaderboard(c *gin.Context) {
	challengeID := domain.ChallengeID(c.Param("id"))

	resp := gin.H{
		"top_engagement": toLeaderResponse(h.svc.TopByEngagement(challengeID)),
		"top_audience":   toLeaderResponse(h.svc.TopByAudience(challengeID)),
	}
	if winner := h.svc.CrossBonusEligible(challengeID); winner != nil {
		resp["cross_bonus_user"] = *winner
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) history(c *gin.Context) {
	challengeID := domain.ChallengeID(c.Param("id"))

	snapshots, err := h.svc.HistoryForChallenge(challengeID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"sessions": lo.Map(snapshots, func(s domain.SessionSnapshot, _ int) sessionResponse {
			return toSessionResponse(s)
		}),
	})
}

// writeError maps domain sentinels to HTTP statuses. Anything
// unrecognized is a 500 and gets logged; the sentinels are expected
// outcomes and stay at debug level.
func (h *Handler) writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case stderrors.Is(err, errors.ErrAlreadyStreaming),
		stderrors.Is(err, errors.ErrNotPrivate):
		status = http.StatusConflict
	case stderrors.Is(err, errors.ErrNoActiveSession),
		stderrors.Is(err, errors.ErrSessionNotFound):
		status = http.StatusNotFound
	case stderrors.Is(err, errors.ErrInvalidDelta),
		stderrors.Is(err, errors.ErrInvalidAudience):
		status = http.StatusBadRequest
	case stderrors.Is(err, errors.ErrInvalidToken):
		status = http.StatusUnauthorized
	}

	if status == http.StatusInternalServerError {
		h.log.Error("unhandled service error", slog.Any("error", err))
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

type sessionResponse struct {
	SessionID            string     `json:"session_id"`
	UserID               string     `json:"user_id"`
	ChallengeID          string     `json:"challenge_id"`
	State                string     `json:"state"`
	StartedAt            time.Time  `json:"started_at"`
	EndedAt              *time.Time `json:"ended_at,omitempty"`
	TotalEngagement      int64      `json:"total_engagement"`
	StableCurrencyEarned int64      `json:"stable_currency_earned"`
	BonusCurrencyEarned  int64      `json:"bonus_currency_earned"`
	Visibility           string     `json:"visibility"`
	AudienceCount        int64      `json:"audience_count"`
}

func toSessionResponse(s domain.SessionSnapshot) sessionResponse {
	return sessionResponse{
		SessionID:            s.SessionID.String(),
		UserID:               s.UserID,
		ChallengeID:          string(s.ChallengeID),
		State:                s.State.String(),
		StartedAt:            s.StartedAt,
		EndedAt:              s.EndedAt,
		TotalEngagement:      s.TotalEngagement,
		StableCurrencyEarned: s.StableCurrencyEarned,
		BonusCurrencyEarned:  s.BonusCurrencyEarned,
		Visibility:           s.Visibility.String(),
		AudienceCount:        s.AudienceCount,
	}
}

func toLeaderResponse(s *domain.SessionSnapshot) any {
	if s == nil {
		return nil
	}
	return toSessionResponse(*s)
}
