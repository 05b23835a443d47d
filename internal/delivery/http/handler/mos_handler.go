package handler

import (
	"errors"
	"fmt"

	"mos-translator/internal/delivery/http/dto"
	"mos-translator/internal/delivery/http/middleware"
	"mos-translator/internal/usecase/lookup"

	"github.com/gofiber/fiber/v3"
)

type MOSHandler struct {
	uc lookup.LookupUsecase
}

func NewMOSHandler(uc lookup.LookupUsecase) *MOSHandler {
	return &MOSHandler{uc: uc}
}

func (h *MOSHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/mos")
	grp.Get("/", h.ListOccupations)
	grp.Get("/:mos_code", h.GetSkills)
}

func (h *MOSHandler) GetSkills(c fiber.Ctx) error {
	mosCode := c.Params("mos_code")

	res, err := h.uc.GetSkills(c.Context(), mosCode)
	if err != nil {
		if errors.Is(err, lookup.ErrNotFound) {
			return &middleware.ProblemError{
				Status:   fiber.StatusNotFound,
				Title:    "Not Found",
				Detail:   fmt.Sprintf("The requested MOS code '%s' was not found.", mosCode),
				Instance: c.Path(),
			}
		}
		return &middleware.ProblemError{
			Status:   fiber.StatusInternalServerError,
			Title:    "Internal Server Error",
			Instance: c.Path(),
			Cause:    err,
		}
	}

	return c.Status(fiber.StatusOK).JSON(dto.MOSSkillsResponse{Title: res.Title, Skills: res.Skills})
}

func (h *MOSHandler) ListOccupations(c fiber.Ctx) error {
	items, err := h.uc.ListOccupations(c.Context())
	if err != nil {
		return &middleware.ProblemError{
			Status:   fiber.StatusInternalServerError,
			Title:    "Internal Server Error",
			Instance: c.Path(),
			Cause:    err,
		}
	}

	res := make([]dto.OccupationResponse, 0, len(items))
	for _, it := range items {
		res = append(res, dto.OccupationResponse{MOSCode: it.MOSCode, Title: it.Title})
	}
	return c.Status(fiber.StatusOK).JSON(res)
}
