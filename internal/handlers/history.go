package handlers

import (
	"errors"

	"solsight/internal/models"
	"solsight/internal/repositories"
	"solsight/internal/utils"
	"solsight/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type HistoryHandler struct {
	scanRepo repositories.ScanRepository
}

func NewHistoryHandler(scanRepo repositories.ScanRepository) *HistoryHandler {
	return &HistoryHandler{
		scanRepo: scanRepo,
	}
}

func (h *HistoryHandler) ListScans(c *fiber.Ctx) error {
	limit := validation.ClampLimit(c.QueryInt("limit"), 20, 100)
	offset := c.QueryInt("offset")
	if offset < 0 {
		offset = 0
	}

	address := c.Query("address")
	var (
		scans []models.ScanRecord
		total int64
		err   error
	)
	if address != "" {
		if err := validation.ValidateAddress(address); err != nil {
			return utils.BadRequest(c, "invalid wallet address")
		}
		scans, total, err = h.scanRepo.ListByAddress(address, offset, limit)
	} else {
		scans, total, err = h.scanRepo.List(offset, limit)
	}
	if err != nil {
		return utils.InternalError(c, "failed to list scans")
	}

	return utils.Success(c, fiber.Map{
		"scans":  scans,
		"total":  total,
		"limit":  limit,
		"offset": offset,
	})
}

func (h *HistoryHandler) GetScan(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return utils.BadRequest(c, "invalid scan id")
	}

	record, err := h.scanRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrScanNotFound) {
			return utils.NotFound(c, "scan not found")
		}
		return utils.InternalError(c, "failed to load scan")
	}

	return utils.Success(c, fiber.Map{
		"scan": record,
	})
}
