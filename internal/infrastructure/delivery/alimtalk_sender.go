package delivery

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var ErrAlimtalkNotConfigured = errors.New("missing KAKAO_API_KEY or KAKAO_SENDER_KEY")

const defaultAlimtalkEndpoint = "https://api.solapi.com"

// AlimtalkMessage is one outgoing Kakao alimtalk notification.
type AlimtalkMessage struct {
	Phone        string
	CustomerName string
	DocLabel     string
	DownloadURL  string
}

// MessageSender abstracts the alimtalk transport.
type MessageSender interface {
	Send(ctx context.Context, msg AlimtalkMessage) error
}

// AlimtalkSender delivers alimtalk notifications through a relay provider
// using an approved message template.
type AlimtalkSender struct {
	apiKey       string
	apiSecret    string
	senderKey    string
	templateCode string
	endpoint     string
	client       *http.Client
	log          zerolog.Logger
}

var _ MessageSender = (*AlimtalkSender)(nil)

// NewAlimtalkSenderFromEnv builds the sender from KAKAO_* environment
// variables. Missing credentials return ErrAlimtalkNotConfigured so the
// caller can degrade the channel instead of failing startup.
func NewAlimtalkSenderFromEnv(log zerolog.Logger) (*AlimtalkSender, error) {
	apiKey := getenvDefault("KAKAO_API_KEY", "")
	senderKey := getenvDefault("KAKAO_SENDER_KEY", "")
	if apiKey == "" || senderKey == "" {
		return nil, ErrAlimtalkNotConfigured
	}

	return &AlimtalkSender{
		apiKey:       apiKey,
		apiSecret:    getenvDefault("KAKAO_API_SECRET", ""),
		senderKey:    senderKey,
		templateCode: getenvDefault("KAKAO_TEMPLATE_CODE", ""),
		endpoint:     strings.TrimRight(getenvDefault("ALIMTALK_ENDPOINT", defaultAlimtalkEndpoint), "/"),
		client:       &http.Client{Timeout: 10 * time.Second},
		log:          log,
	}, nil
}

// Send posts one templated message to the relay provider.
func (s *AlimtalkSender) Send(ctx context.Context, msg AlimtalkMessage) error {
	phone := NormalizePhone(msg.Phone)

	customerName := msg.CustomerName
	if customerName == "" {
		customerName = "고객"
	}

	payload := map[string]any{
		"message": map[string]any{
			"to": phone,
			"kakaoOptions": map[string]any{
				"pfId":       s.senderKey,
				"templateId": s.templateCode,
				"variables": map[string]string{
					"#{고객명}":  customerName,
					"#{문서유형}": msg.DocLabel,
					"#{다운로드}": msg.DownloadURL,
				},
			},
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint+"/messages/v4/send", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", s.authorization())

	resp, err := s.client.Do(req)
	if err != nil {
		s.log.Error().Err(err).Str("to", phone).Msg("alimtalk send failed")
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		s.log.Error().Int("status", resp.StatusCode).Str("to", phone).Msg("alimtalk provider rejected message")
		return fmt.Errorf("alimtalk provider returned %d: %s", resp.StatusCode, strings.TrimSpace(string(detail)))
	}
	s.log.Info().Str("to", phone).Msg("alimtalk sent")
	return nil
}

// authorization builds the provider's HMAC-SHA256 request signature.
func (s *AlimtalkSender) authorization() string {
	date := time.Now().UTC().Format(time.RFC3339)
	salt := uuid.NewString()
	mac := hmac.New(sha256.New, []byte(s.apiSecret))
	mac.Write([]byte(date + salt))
	signature := hex.EncodeToString(mac.Sum(nil))
	return fmt.Sprintf("HMAC-SHA256 apiKey=%s, date=%s, salt=%s, signature=%s", s.apiKey, date, salt, signature)
}

// NormalizePhone strips separators and converts a domestic 010 number to the
// international 82 prefix expected by the provider.
func NormalizePhone(phone string) string {
	phone = strings.ReplaceAll(phone, "-", "")
	phone = strings.ReplaceAll(phone, " ", "")
	if strings.HasPrefix(phone, "010") {
		phone = "82" + phone[1:]
	}
	return phone
}
