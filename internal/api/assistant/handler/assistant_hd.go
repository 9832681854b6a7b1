package assistantHandler

import (
	"time"

	"SonicSavor/internal/api/assistant"
	"SonicSavor/internal/entity"
	contextPkg "SonicSavor/pkg/context"
	"SonicSavor/pkg/handlerUtil"
	"SonicSavor/pkg/utils"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

// answers go through an LLM, so they get more time than plain CRUD calls
const answerTimeout = 30 * time.Second

func (h *AssistantHandler) HandleMenuInquiry(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), answerTimeout)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	var req assistant.MenuInquiryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	answer, err := h.assistantService.MenuInquiry(c, req.Question)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "menu_inquiry")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, assistant.AnswerResponse{Response: answer})
	}
}

func (h *AssistantHandler) HandleResolveIssue(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), answerTimeout)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	var req assistant.ResolveIssueRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	answer, err := h.assistantService.ResolveIssue(c, req.Text)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "resolve_issue")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, assistant.AnswerResponse{Response: answer})
	}
}

func (h *AssistantHandler) HandleLocation(ctx *fiber.Ctx) error {
	return handlerUtil.New(h.log).HandleSuccess(ctx, fiber.StatusOK, h.assistantService.Location())
}

func (h *AssistantHandler) HandleUploadDocument(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), answerTimeout)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	file, err := ctx.FormFile("file")
	if err != nil {
		return errHandler.Handle(ctx, requestID, utils.ErrNoFile, ctx.Path(), "parse_form_file")
	}

	kind := entity.DocumentKind(ctx.FormValue("kind"))

	res, err := h.assistantService.UploadDocument(c, kind, file)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "upload_document")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, assistant.UploadDocumentResponse{
			Message: "Document uploaded and indexed",
			Result:  res,
		})
	}
}
