package handlers

import (
	"solsight/internal/services/intel"
	"solsight/internal/utils"
	"solsight/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type WalletHandler struct {
	intelService *intel.Service
}

func NewWalletHandler(intelService *intel.Service) *WalletHandler {
	return &WalletHandler{
		intelService: intelService,
	}
}

// walletAddress validates the :address route param before any upstream call.
func walletAddress(c *fiber.Ctx) (string, error) {
	address := c.Params("address")
	if err := validation.ValidateAddress(address); err != nil {
		return "", err
	}
	return address, nil
}

func (h *WalletHandler) GetWallet(c *fiber.Ctx) error {
	address, err := walletAddress(c)
	if err != nil {
		return utils.BadRequest(c, "invalid wallet address")
	}

	overview, err := h.intelService.Overview(c.Context(), address)
	if err != nil {
		return utils.BadGateway(c, "failed to fetch wallet state")
	}

	return utils.Success(c, fiber.Map{
		"address":  address,
		"overview": overview,
	})
}

func (h *WalletHandler) GetActivity(c *fiber.Ctx) error {
	address, err := walletAddress(c)
	if err != nil {
		return utils.BadRequest(c, "invalid wallet address")
	}

	limit := validation.ClampLimit(c.QueryInt("limit"), intel.DefaultActivityLimit, intel.MaxActivityLimit)

	activity, err := h.intelService.Activity(c.Context(), address, limit)
	if err != nil {
		return utils.BadGateway(c, "failed to fetch activity")
	}

	return utils.Success(c, fiber.Map{
		"address":  address,
		"limit":    limit,
		"activity": activity,
	})
}

func (h *WalletHandler) GetRisk(c *fiber.Ctx) error {
	address, err := walletAddress(c)
	if err != nil {
		return utils.BadRequest(c, "invalid wallet address")
	}

	assessment, err := h.intelService.AssessRisk(c.Context(), address)
	if err != nil {
		return utils.BadGateway(c, "failed to assess wallet")
	}

	return utils.Success(c, fiber.Map{
		"address": address,
		"risk":    assessment,
	})
}

func (h *WalletHandler) GetAnomalies(c *fiber.Ctx) error {
	address, err := walletAddress(c)
	if err != nil {
		return utils.BadRequest(c, "invalid wallet address")
	}

	report, err := h.intelService.ScanAnomalies(c.Context(), address)
	if err != nil {
		return utils.BadGateway(c, "failed to scan wallet")
	}

	return utils.Success(c, fiber.Map{
		"address":   address,
		"anomalies": report,
	})
}

func (h *WalletHandler) Analyze(c *fiber.Ctx) error {
	address, err := walletAddress(c)
	if err != nil {
		return utils.BadRequest(c, "invalid wallet address")
	}

	analysis, err := h.intelService.Analyze(c.Context(), address)
	if err != nil {
		return utils.BadGateway(c, "failed to analyze wallet")
	}

	return utils.Success(c, fiber.Map{
		"address":  address,
		"analysis": analysis,
	})
}
