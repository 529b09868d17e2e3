package controller

import (
	"errors"

	"github.com/benbeisheim/checkers-backend/internal/middleware"
	"github.com/benbeisheim/checkers-backend/internal/model"
	"github.com/benbeisheim/checkers-backend/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

type AnalysisController struct {
	analysisService *service.AnalysisService
}

func NewAnalysisController(analysisService *service.AnalysisService) *AnalysisController {
	return &AnalysisController{analysisService: analysisService}
}

type analyzeRequest struct {
	Layout map[string]string `json:"layout"`
	Player string            `json:"player"`
}

// Register mounts the analysis routes on the given router.
func (ac *AnalysisController) Register(api fiber.Router) {
	api.Get("/health", ac.Health)

	positions := api.Group("/positions")
	positions.Get("/start", ac.Start)
	positions.Post("/analyze", ac.Analyze)
}

func (ac *AnalysisController) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
	})
}

func (ac *AnalysisController) Start(c *fiber.Ctx) error {
	return c.JSON(ac.analysisService.Start())
}

func (ac *AnalysisController) Analyze(c *fiber.Ctx) error {
	var req analyzeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	result, err := ac.analysisService.Analyze(req.Layout, req.Player)
	if err != nil {
		if errors.Is(err, model.ErrInvalidLayout) || errors.Is(err, model.ErrUnknownPlayer) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		log.Error().Err(err).Str("requestID", middleware.RequestID(c)).Msg("analysis failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to analyse position",
		})
	}

	return c.JSON(result)
}
