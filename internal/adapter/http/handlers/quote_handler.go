package handlers

import (
	"errors"
	"net/http"

	request "wiz_adquote/internal/adapter/http/dto/request"
	response "wiz_adquote/internal/adapter/http/dto/response"
	"wiz_adquote/internal/usecase"
	"wiz_adquote/internal/usecase/interfaces"
	"wiz_adquote/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "잘못된 요청 형식입니다", http.StatusBadRequest)
	errArtifactNotFound    = pkg.NewDomainErrorSimple("ARTIFACT_NOT_FOUND", "문서를 찾을 수 없습니다", http.StatusNotFound)
)

// QuoteHandler handles the quote workflow endpoints: preview, generate, send
// and artifact download. All three workflow endpoints accept the same full
// form snapshot; the handler never holds form state between requests.
type QuoteHandler struct {
	workflow  usecase.IWorkflowUseCase
	artifacts interfaces.IArtifactRepository
}

func NewQuoteHandler(workflow usecase.IWorkflowUseCase, artifacts interfaces.IArtifactRepository) *QuoteHandler {
	return &QuoteHandler{workflow: workflow, artifacts: artifacts}
}

func (h *QuoteHandler) Preview(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	result, err := h.workflow.Preview(c.Request.Context(), payload.ToQuote())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPreview(result.Quote, result.Totals))
}

func (h *QuoteHandler) Generate(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	result, err := h.workflow.Generate(c.Request.Context(), payload.ToQuote())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromGeneration(result))
}

func (h *QuoteHandler) Send(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	report, err := h.workflow.Send(c.Request.Context(), payload.ToQuote())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromReport(report))
}

// DownloadArtifact serves a generated document looked up by registry ID. The
// file path always comes from the registry record, never from the request, so
// the endpoint can not be steered at arbitrary files.
func (h *QuoteHandler) DownloadArtifact(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(errArtifactNotFound.HTTPStatus, errArtifactNotFound.ToHTTPError())
		return
	}

	artifact, err := h.artifacts.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if artifact.ID == "" {
		c.JSON(errArtifactNotFound.HTTPStatus, errArtifactNotFound.ToHTTPError())
		return
	}

	c.FileAttachment(artifact.Path, artifact.FileName)
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingDocType):
		return pkg.NewDomainErrorSimple("MISSING_DOC_TYPE", "문서 종류를 선택해주세요", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrMissingLineItems):
		return pkg.NewDomainErrorSimple("MISSING_LINE_ITEMS", "아파트 정보를 입력해주세요", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrMissingSendChannel):
		return pkg.NewDomainErrorSimple("MISSING_SEND_CHANNEL", "발송 방법을 선택해주세요", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrMissingEmail):
		return pkg.NewDomainErrorSimple("MISSING_EMAIL", "이메일 주소를 입력해주세요", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrMissingPhone):
		return pkg.NewDomainErrorSimple("MISSING_PHONE", "휴대폰 번호를 입력해주세요", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrNothingGenerated):
		return pkg.NewDomainErrorSimple("NOTHING_GENERATED", "먼저 문서를 생성해주세요", http.StatusConflict)
	case errors.Is(err, usecase.ErrGenerationFailed):
		return pkg.NewDomainError("GENERATION_FAILED", "문서 생성에 실패했습니다", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrDeliveryFailed):
		return pkg.NewDomainError("DELIVERY_FAILED", "문서 발송에 실패했습니다", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
