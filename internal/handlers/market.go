package handlers

import (
	"errors"

	apperrors "solsight/internal/errors"
	"solsight/internal/registry"
	"solsight/internal/services/market"
	"solsight/internal/utils"
	"solsight/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type MarketHandler struct {
	marketService *market.Service
}

func NewMarketHandler(marketService *market.Service) *MarketHandler {
	return &MarketHandler{
		marketService: marketService,
	}
}

func (h *MarketHandler) GetPrice(c *fiber.Ctx) error {
	symbol := c.Params("symbol")
	quote, err := h.marketService.GetPrice(c.Context(), symbol)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnknownSymbol) {
			return utils.NotFound(c, "no price feed for symbol")
		}
		return utils.BadGateway(c, "failed to fetch price")
	}

	return utils.Success(c, fiber.Map{
		"price": quote,
	})
}

// ListPriceSymbols exposes the registered feed symbols for discovery.
func (h *MarketHandler) ListPriceSymbols(c *fiber.Ctx) error {
	return utils.Success(c, fiber.Map{
		"symbols": registry.PriceSymbols(),
	})
}

func (h *MarketHandler) GetQuote(c *fiber.Ctx) error {
	inputMint := c.Query("inputMint")
	outputMint := c.Query("outputMint")
	if validation.ValidateAddress(inputMint) != nil || validation.ValidateAddress(outputMint) != nil {
		return utils.BadRequest(c, "invalid input or output mint")
	}

	amount := c.QueryInt("amount")
	if amount <= 0 {
		return utils.BadRequest(c, "amount must be a positive integer in raw units")
	}

	slippageBps := c.QueryInt("slippageBps", 50)
	if slippageBps < 0 || slippageBps > 10_000 {
		return utils.BadRequest(c, "slippageBps out of range")
	}

	quote, err := h.marketService.GetQuote(c.Context(), market.QuoteRequest{
		InputMint:   inputMint,
		OutputMint:  outputMint,
		Amount:      uint64(amount),
		SlippageBps: slippageBps,
	})
	if err != nil {
		return utils.BadGateway(c, "failed to fetch quote")
	}

	return utils.Success(c, fiber.Map{
		"quote": quote,
	})
}

func (h *MarketHandler) GetToken(c *fiber.Ctx) error {
	mint := c.Params("mint")
	if err := validation.ValidateAddress(mint); err != nil {
		return utils.BadRequest(c, "invalid mint address")
	}

	meta, err := h.marketService.GetTokenMetadata(c.Context(), mint)
	if err != nil {
		if errors.Is(err, apperrors.ErrTokenNotFound) {
			return utils.NotFound(c, "token not found")
		}
		return utils.BadGateway(c, "failed to fetch token metadata")
	}

	return utils.Success(c, fiber.Map{
		"token": meta,
	})
}
