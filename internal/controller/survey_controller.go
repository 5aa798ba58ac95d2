package controller

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ingunnnaevdal/masterevaluering/internal/dto"
	"github.com/ingunnnaevdal/masterevaluering/internal/pkg/serverutils"
	"github.com/ingunnnaevdal/masterevaluering/internal/service"
)

type ISurveyController interface {
	RegisterRoutes(r fiber.Router)
	Questions(ctx *fiber.Ctx) error
	Submit(ctx *fiber.Ctx) error
}

type surveyController struct {
	service service.ISurveyService
}

func NewSurveyController(service service.ISurveyService) ISurveyController {
	return &surveyController{service: service}
}

func (c *surveyController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/survey/v1")
	h.Get("/questions", c.Questions)
	h.Post("", c.Submit)
}

func (c *surveyController) Questions(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Intake questions", c.service.Questions()))
}

func (c *surveyController) Submit(ctx *fiber.Ctx) error {
	var req dto.SubmitSurveyRequest
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

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Takk for at du svarte", res))
}
