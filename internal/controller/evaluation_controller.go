package controller

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ingunnnaevdal/masterevaluering/internal/dto"
	"github.com/ingunnnaevdal/masterevaluering/internal/pkg/serverutils"
	"github.com/ingunnnaevdal/masterevaluering/internal/service"
)

type IEvaluationController interface {
	RegisterRoutes(r fiber.Router)
	Current(ctx *fiber.Ctx) error
	Submit(ctx *fiber.Ctx) error
}

type evaluationController struct {
	service service.IEvaluationService
}

func NewEvaluationController(service service.IEvaluationService) IEvaluationController {
	return &evaluationController{service: service}
}

func (c *evaluationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/evaluation/v1")
	h.Get("/current", c.Current)
	h.Post("", c.Submit)
}

func (c *evaluationController) Current(ctx *fiber.Ctx) error {
	brukerID := ctx.Query("bruker_id")
	if brukerID == "" {
		return serverutils.NewBadRequestError("bruker_id er påkrevd")
	}

	res, err := c.service.Current(ctx.Context(), brukerID)
	if err != nil {
		return err
	}
	if res == nil {
		return ctx.JSON(serverutils.SuccessResponse("Alle artikler er evaluert", &dto.SessionStateResponse{
			State: dto.StateComplete,
		}))
	}

	return ctx.JSON(serverutils.SuccessResponse("Current article", res))
}

func (c *evaluationController) Submit(ctx *fiber.Ctx) error {
	var req dto.SubmitEvaluationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewBadRequestError("ugyldig forespørsel")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Submit(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Evaluering lagret", res))
}
