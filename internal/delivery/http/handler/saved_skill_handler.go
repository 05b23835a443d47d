package handler

import (
	"errors"
	"strconv"

	"mos-translator/internal/delivery/http/dto"
	"mos-translator/internal/delivery/http/middleware"
	"mos-translator/internal/pkg/response"
	"mos-translator/internal/usecase/savedskills"

	"github.com/gofiber/fiber/v3"
)

type SavedSkillHandler struct {
	uc savedskills.SavedSkillUsecase
}

type saveSkillRequest struct {
	SkillDescription string `json:"skill_description"`
}

func NewSavedSkillHandler(uc savedskills.SavedSkillUsecase) *SavedSkillHandler {
	return &SavedSkillHandler{uc: uc}
}

// RegisterRoutes expects r to already carry the session guard.
func (h *SavedSkillHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
	r.Post("/", h.Save)
	r.Delete("/:id", h.Delete)
}

func (h *SavedSkillHandler) List(c fiber.Ctx) error {
	u, ok := middleware.UserFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageUnauthorized, nil)
	}

	items, err := h.uc.List(c.Context(), u.ID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}

	res := make([]dto.SavedSkillResponse, 0, len(items))
	for _, it := range items {
		res = append(res, dto.SavedSkillResponse{ID: it.ID, SkillDescription: it.SkillDescription})
	}
	return c.Status(fiber.StatusOK).JSON(res)
}

func (h *SavedSkillHandler) Save(c fiber.Ctx) error {
	u, ok := middleware.UserFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageUnauthorized, nil)
	}

	var req saveSkillRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, savedskills.ErrMissingField.Error(), err)
	}

	if _, err := h.uc.Save(c.Context(), u.ID, req.SkillDescription); err != nil {
		if errors.Is(err, savedskills.ErrMissingField) {
			return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}

	return response.Message(c, fiber.StatusCreated, "skill saved")
}

func (h *SavedSkillHandler) Delete(c fiber.Ctx) error {
	u, ok := middleware.UserFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageUnauthorized, nil)
	}

	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "invalid skill id", err)
	}

	if err := h.uc.Delete(c.Context(), u.ID, id); err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}

	return response.Message(c, fiber.StatusOK, "skill deleted")
}
