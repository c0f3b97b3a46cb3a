package transport

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"reward-lab/domain"
)

var validate = validator.New()

type TokenRequest struct {
	UserID string   `json:"user_id" validate:"required"`
	Roles  []string `json:"roles" validate:"dive,oneof=user premium developer"`
}

type StartSessionRequest struct {
	ChallengeID string `json:"challenge_id" validate:"required"`
	Visibility  string `json:"visibility" validate:"omitempty,oneof=public private"`
}

type RecordEngagementRequest struct {
	Delta int64 `json:"delta" validate:"required"`
}

type SetAudienceRequest struct {
	Count int64 `json:"count"`
}

type GrantViewerRequest struct {
	ViewerID string `json:"viewer_id" validate:"required"`
}

func parseVisibility(s string) (domain.Visibility, error) {
	switch s {
	case "", "public":
		return domain.Public, nil
	case "private":
		return domain.Private, nil
	default:
		return domain.Public, fmt.Errorf("unknown visibility %q", s)
	}
}
