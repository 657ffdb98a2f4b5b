package response

import (
	"wiz_adquote/internal/domain/entities"
	"wiz_adquote/internal/usecase"
)

type ArtifactResponse struct {
	ID       string `json:"id"`
	FileName string `json:"file_name"`
	URL      string `json:"url"`
}

// GenerateResponse lists the documents produced by a generation run.
type GenerateResponse struct {
	Success   bool               `json:"success"`
	Artifacts []ArtifactResponse `json:"artifacts"`
}

func FromGeneration(res entities.GenerationResult) GenerateResponse {
	out := GenerateResponse{
		Success:   res.Success,
		Artifacts: make([]ArtifactResponse, 0, len(res.Artifacts)),
	}
	for _, a := range res.Artifacts {
		out.Artifacts = append(out.Artifacts, ArtifactResponse{
			ID:       a.ID,
			FileName: a.FileName,
			URL:      usecase.ArtifactDownloadPath + a.ID,
		})
	}
	return out
}
