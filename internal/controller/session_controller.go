package controller

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ingunnnaevdal/masterevaluering/internal/pkg/serverutils"
	"github.com/ingunnnaevdal/masterevaluering/internal/service"
)

type ISessionController interface {
	RegisterRoutes(r fiber.Router)
	State(ctx *fiber.Ctx) error
}

type sessionController struct {
	service service.ISessionService
}

func NewSessionController(service service.ISessionService) ISessionController {
	return &sessionController{service: service}
}

func (c *sessionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/session/v1")
	h.Get("/state", c.State)
}

func (c *sessionController) State(ctx *fiber.Ctx) error {
	brukerID := ctx.Query("bruker_id")
	if brukerID == "" {
		return serverutils.NewBadRequestError("bruker_id er påkrevd")
	}

	res, err := c.service.State(ctx.Context(), brukerID)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Session state", res))
}
