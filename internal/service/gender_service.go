package service

import (
	"Inkwell/internal/api/config"
	"context"
	log "log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

// GenderProbabilityThreshold 低于该置信度时不采信推断结果
const GenderProbabilityThreshold = 0.6

// GenderFallback 推断失败或不可信时的默认值
const GenderFallback = "Other"

type GenderService interface {
	InferGender(ctx context.Context, fullName string) string
}

type genderServiceImpl struct {
	client *resty.Client
}

func NewGenderService(cfg *config.GenderConfig) GenderService {
	client := resty.New().
		SetBaseURL(cfg.URL).
		SetTimeout(time.Duration(cfg.Timeout) * time.Second)

	return &genderServiceImpl{client: client}
}

type genderizeResponse struct {
	Name        string  `json:"name"`
	Gender      string  `json:"gender"`
	Probability float64 `json:"probability"`
}

// InferGender 按名字的第一个词查询性别推断接口。
// 任何失败（超时、非 200、低置信度）都回落到 Other，注册流程不因此失败。
func (s *genderServiceImpl) InferGender(ctx context.Context, fullName string) string {
	firstName := strings.Fields(strings.TrimSpace(fullName))
	if len(firstName) == 0 {
		return GenderFallback
	}

	gender, err := s.lookup(ctx, firstName[0])
	if err != nil {
		log.WarnContext(ctx, "gender inference failed, falling back", "name", firstName[0], "err", err)
		return GenderFallback
	}
	return gender
}

func (s *genderServiceImpl) lookup(ctx context.Context, firstName string) (string, error) {
	var body genderizeResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParam("name", firstName).
		SetResult(&body).
		Get("")
	if err != nil {
		return "", errors.Wrap(err, "genderize request failed")
	}
	if resp.StatusCode() != http.StatusOK {
		return "", errors.Errorf("genderize returned %s", resp.Status())
	}

	if body.Gender == "" || body.Probability <= GenderProbabilityThreshold {
		return GenderFallback, nil
	}

	return strings.ToUpper(body.Gender[:1]) + body.Gender[1:], nil
}
