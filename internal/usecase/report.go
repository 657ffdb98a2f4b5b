package usecase

import (
	"wiz_adquote/internal/domain/entities"
)

// ArtifactDownloadPath is the route prefix a generated artifact resolves to.
const ArtifactDownloadPath = "/v1/quotes/artifacts/"

var channelSuccessMessages = map[entities.Channel]string{
	entities.ChannelEmail:     "이메일 발송 완료",
	entities.ChannelMessaging: "카카오톡 알림톡 발송 완료",
}

const fallbackErrorMessage = "알 수 없는 오류"

// ReportLine is one channel's user-facing delivery result.
type ReportLine struct {
	Channel entities.Channel
	Success bool
	Message string
}

// ArtifactLink points at a downloadable generated document.
type ArtifactLink struct {
	ID       string
	FileName string
	URL      string
}

// ReportView is the merged per-channel delivery report shown to the operator
// after a Send, however many channels were attempted.
type ReportView struct {
	Lines     []ReportLine
	Artifacts []ArtifactLink
}

// BuildReport merges per-channel outcomes and artifact references into one
// report. Channels without an outcome entry were not attempted and render
// nothing. Empty or nil input is fine: validation upstream should prevent a
// zero-channel send, but the report must not rely on that.
func BuildReport(outcomes map[entities.Channel]entities.DeliveryOutcome, artifacts []entities.Artifact) ReportView {
	view := ReportView{}

	for _, ch := range entities.AllChannels {
		outcome, ok := outcomes[ch]
		if !ok {
			continue
		}
		line := ReportLine{Channel: ch, Success: outcome.Success}
		if outcome.Success {
			line.Message = channelSuccessMessages[ch]
		} else if outcome.Error != "" {
			line.Message = outcome.Error
		} else {
			line.Message = fallbackErrorMessage
		}
		view.Lines = append(view.Lines, line)
	}

	for _, a := range artifacts {
		view.Artifacts = append(view.Artifacts, ArtifactLink{
			ID:       a.ID,
			FileName: a.FileName,
			URL:      ArtifactDownloadPath + a.ID,
		})
	}

	return view
}
