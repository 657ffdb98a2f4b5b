package delivery

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"wiz_adquote/internal/domain/entities"
)

type stubEmailSender struct {
	err  error
	sent []EmailMessage
}

func (s *stubEmailSender) Send(_ context.Context, msg EmailMessage) error {
	s.sent = append(s.sent, msg)
	return s.err
}

type stubMessageSender struct {
	err  error
	sent []AlimtalkMessage
}

func (s *stubMessageSender) Send(_ context.Context, msg AlimtalkMessage) error {
	s.sent = append(s.sent, msg)
	return s.err
}

func deliveryRequest(channels ...entities.Channel) entities.DeliveryRequest {
	return entities.DeliveryRequest{
		Artifacts: []entities.Artifact{
			{ID: "art-1", FileName: "견적서_한빛_20260829.pdf", Path: "/tmp/견적서_한빛_20260829.pdf"},
		},
		Customer: entities.Customer{
			Company: "한빛상사",
			Name:    "김담당",
			Email:   "kim@hanbit.co.kr",
			Phone:   "010-1234-5678",
		},
		Channels: channels,
		DocTypes: []entities.DocType{entities.DocTypeEstimate},
	}
}

func TestGatewayDispatch(t *testing.T) {
	t.Run("both channels succeed", func(t *testing.T) {
		email := &stubEmailSender{}
		alimtalk := &stubMessageSender{}
		gw := NewGateway(email, alimtalk, zerolog.Nop())

		outcomes, err := gw.Dispatch(context.Background(), deliveryRequest(entities.ChannelEmail, entities.ChannelMessaging))
		if err != nil {
			t.Fatalf("Dispatch() error = %v", err)
		}
		if len(outcomes) != 2 {
			t.Fatalf("expected 2 outcomes, got %d", len(outcomes))
		}
		for ch, o := range outcomes {
			if !o.Success || o.Error != "" {
				t.Fatalf("channel %s: expected success, got %+v", ch, o)
			}
		}
		if len(email.sent) != 1 {
			t.Fatalf("expected 1 email, got %d", len(email.sent))
		}
		if got, want := email.sent[0].Subject, "[한빛상사] 견적서 송부드립니다"; got != want {
			t.Fatalf("subject = %q, want %q", got, want)
		}
		if len(alimtalk.sent) != 1 {
			t.Fatalf("expected 1 alimtalk message, got %d", len(alimtalk.sent))
		}
		if got := alimtalk.sent[0].DownloadURL; !strings.HasSuffix(got, "/v1/quotes/artifacts/art-1") {
			t.Fatalf("download url = %q", got)
		}
	})

	t.Run("partial failure keeps other channel", func(t *testing.T) {
		email := &stubEmailSender{}
		alimtalk := &stubMessageSender{err: errors.New("timeout")}
		gw := NewGateway(email, alimtalk, zerolog.Nop())

		outcomes, err := gw.Dispatch(context.Background(), deliveryRequest(entities.ChannelEmail, entities.ChannelMessaging))
		if err != nil {
			t.Fatalf("Dispatch() error = %v", err)
		}
		if !outcomes[entities.ChannelEmail].Success {
			t.Fatalf("email outcome = %+v", outcomes[entities.ChannelEmail])
		}
		msg := outcomes[entities.ChannelMessaging]
		if msg.Success || msg.Error != "timeout" {
			t.Fatalf("messaging outcome = %+v", msg)
		}
	})

	t.Run("unrequested channel is skipped", func(t *testing.T) {
		email := &stubEmailSender{}
		alimtalk := &stubMessageSender{}
		gw := NewGateway(email, alimtalk, zerolog.Nop())

		outcomes, err := gw.Dispatch(context.Background(), deliveryRequest(entities.ChannelEmail))
		if err != nil {
			t.Fatalf("Dispatch() error = %v", err)
		}
		if _, ok := outcomes[entities.ChannelMessaging]; ok {
			t.Fatal("messaging outcome present though not requested")
		}
		if len(alimtalk.sent) != 0 {
			t.Fatalf("alimtalk sent %d messages", len(alimtalk.sent))
		}
	})

	t.Run("nil senders report configuration failures", func(t *testing.T) {
		gw := NewGateway(nil, nil, zerolog.Nop())

		outcomes, err := gw.Dispatch(context.Background(), deliveryRequest(entities.ChannelEmail, entities.ChannelMessaging))
		if err != nil {
			t.Fatalf("Dispatch() error = %v", err)
		}
		if o := outcomes[entities.ChannelEmail]; o.Success || o.Error != emailNotConfiguredMsg {
			t.Fatalf("email outcome = %+v", o)
		}
		if o := outcomes[entities.ChannelMessaging]; o.Success || o.Error != alimtalkNotConfiguredMsg {
			t.Fatalf("messaging outcome = %+v", o)
		}
	})
}

func TestGatewayProposalAttachment(t *testing.T) {
	dir := t.TempDir()
	proposal := filepath.Join(dir, "제안서.pdf")
	if err := os.WriteFile(proposal, []byte("%PDF-1.4"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PROPOSAL_PDF_PATH", proposal)

	email := &stubEmailSender{}
	gw := NewGateway(email, nil, zerolog.Nop())

	req := deliveryRequest(entities.ChannelEmail)
	req.DocTypes = []entities.DocType{entities.DocTypeProposal, entities.DocTypeEstimate}

	if _, err := gw.Dispatch(context.Background(), req); err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}
	if len(email.sent) != 1 {
		t.Fatalf("expected 1 email, got %d", len(email.sent))
	}
	atts := email.sent[0].Attachments
	if len(atts) != 2 {
		t.Fatalf("expected 2 attachments, got %v", atts)
	}
	if atts[0] != proposal {
		t.Fatalf("proposal should come first, got %v", atts)
	}
}

func TestGatewayProposalMissingFile(t *testing.T) {
	t.Setenv("PROPOSAL_PDF_PATH", "/nonexistent/제안서.pdf")

	email := &stubEmailSender{}
	gw := NewGateway(email, nil, zerolog.Nop())

	req := deliveryRequest(entities.ChannelEmail)
	req.DocTypes = []entities.DocType{entities.DocTypeProposal}

	if _, err := gw.Dispatch(context.Background(), req); err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}
	if atts := email.sent[0].Attachments; len(atts) != 1 {
		t.Fatalf("missing proposal must be skipped, got %v", atts)
	}
}

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"010-1234-5678", "8212345678"},
		{"01012345678", "8212345678"},
		{"010 1234 5678", "8212345678"},
		{"02-123-4567", "021234567"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := NormalizePhone(tc.in); got != tc.want {
			t.Fatalf("NormalizePhone(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
