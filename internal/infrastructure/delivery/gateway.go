package delivery

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"wiz_adquote/internal/domain/entities"
	"wiz_adquote/internal/usecase/interfaces"
)

const (
	emailNotConfiguredMsg    = "이메일 설정이 완료되지 않았습니다. 환경변수를 확인해주세요."
	alimtalkNotConfiguredMsg = "카카오 알림톡 설정이 완료되지 않았습니다. 환경변수를 확인해주세요."
)

// Gateway fans one delivery request out to the selected channels and merges
// the per-channel results. A channel that was not requested produces no
// outcome entry at all; a configured-but-failing channel produces a failed
// outcome without affecting the other channels.
type Gateway struct {
	email        EmailSender
	alimtalk     MessageSender
	proposalPath string
	baseURL      string
	log          zerolog.Logger
}

var _ interfaces.IDeliveryGateway = (*Gateway)(nil)

// NewGateway wires the channel senders. Either sender may be nil when its
// transport is not configured; the channel then reports a configuration
// failure instead of being silently skipped. PROPOSAL_PDF_PATH points at the
// fixed company proposal attached whenever the proposal kind was selected.
func NewGateway(email EmailSender, alimtalk MessageSender, log zerolog.Logger) *Gateway {
	return &Gateway{
		email:        email,
		alimtalk:     alimtalk,
		proposalPath: getenvDefault("PROPOSAL_PDF_PATH", ""),
		baseURL:      strings.TrimRight(getenvDefault("PUBLIC_BASE_URL", "http://localhost:8080"), "/"),
		log:          log,
	}
}

func (g *Gateway) Dispatch(_ context.Context, req entities.DeliveryRequest) (map[entities.Channel]entities.DeliveryOutcome, error) {
	// Dispatch runs the channels itself; the background context keeps an
	// operator-side disconnect from aborting a half-finished fan-out.
	ctx := context.Background()

	outcomes := make(map[entities.Channel]entities.DeliveryOutcome, len(req.Channels))
	docLabel := entities.DocLabel(req.DocTypes)
	attachments := g.attachments(req)

	downloadURL := ""
	if len(req.Artifacts) > 0 {
		downloadURL = g.baseURL + "/v1/quotes/artifacts/" + req.Artifacts[0].ID
	}

	for _, ch := range req.Channels {
		switch ch {
		case entities.ChannelEmail:
			outcomes[ch] = g.sendEmail(ctx, req, docLabel, attachments)
		case entities.ChannelMessaging:
			outcomes[ch] = g.sendAlimtalk(ctx, req, docLabel, downloadURL)
		default:
			g.log.Warn().Str("channel", string(ch)).Msg("unknown channel requested")
		}
	}
	return outcomes, nil
}

func (g *Gateway) sendEmail(ctx context.Context, req entities.DeliveryRequest, docLabel string, attachments []string) entities.DeliveryOutcome {
	outcome := entities.DeliveryOutcome{Channel: entities.ChannelEmail}
	if g.email == nil {
		outcome.Error = emailNotConfiguredMsg
		return outcome
	}

	err := g.email.Send(ctx, EmailMessage{
		To:          req.Customer.Email,
		ToName:      req.Customer.Name,
		Subject:     fmt.Sprintf("[%s] %s 송부드립니다", req.Customer.Company, docLabel),
		Attachments: attachments,
	})
	if err != nil {
		outcome.Error = err.Error()
		return outcome
	}
	outcome.Success = true
	return outcome
}

func (g *Gateway) sendAlimtalk(ctx context.Context, req entities.DeliveryRequest, docLabel, downloadURL string) entities.DeliveryOutcome {
	outcome := entities.DeliveryOutcome{Channel: entities.ChannelMessaging}
	if g.alimtalk == nil {
		outcome.Error = alimtalkNotConfiguredMsg
		return outcome
	}

	err := g.alimtalk.Send(ctx, AlimtalkMessage{
		Phone:        req.Customer.Phone,
		CustomerName: req.Customer.Name,
		DocLabel:     docLabel,
		DownloadURL:  downloadURL,
	})
	if err != nil {
		outcome.Error = err.Error()
		return outcome
	}
	outcome.Success = true
	return outcome
}

// attachments lists the files for email delivery: the fixed proposal first
// when selected and present on disk, then every generated artifact.
func (g *Gateway) attachments(req entities.DeliveryRequest) []string {
	paths := make([]string, 0, len(req.Artifacts)+1)
	if g.proposalPath != "" && hasDocType(req.DocTypes, entities.DocTypeProposal) {
		if _, err := os.Stat(g.proposalPath); err == nil {
			paths = append(paths, g.proposalPath)
		} else {
			g.log.Warn().Str("path", g.proposalPath).Msg("proposal pdf missing, skipped")
		}
	}
	for _, a := range req.Artifacts {
		paths = append(paths, a.Path)
	}
	return paths
}

func hasDocType(docTypes []entities.DocType, d entities.DocType) bool {
	for _, sel := range docTypes {
		if sel == d {
			return true
		}
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
