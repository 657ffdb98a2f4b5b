package response

import (
	"wiz_adquote/internal/usecase"
)

type ReportLineResponse struct {
	Channel string `json:"channel"`
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// SendResponse is the per-channel delivery report returned after a send,
// successful or not per channel.
type SendResponse struct {
	Report    []ReportLineResponse `json:"report"`
	Artifacts []ArtifactResponse   `json:"artifacts"`
}

func FromReport(view usecase.ReportView) SendResponse {
	out := SendResponse{
		Report:    make([]ReportLineResponse, 0, len(view.Lines)),
		Artifacts: make([]ArtifactResponse, 0, len(view.Artifacts)),
	}
	for _, line := range view.Lines {
		out.Report = append(out.Report, ReportLineResponse{
			Channel: string(line.Channel),
			Success: line.Success,
			Message: line.Message,
		})
	}
	for _, a := range view.Artifacts {
		out.Artifacts = append(out.Artifacts, ArtifactResponse{
			ID:       a.ID,
			FileName: a.FileName,
			URL:      a.URL,
		})
	}
	return out
}
