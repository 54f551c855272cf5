package handlers

import (
	"errors"
	"log"

	"kora/internal/models"
	"kora/internal/repositories"
	"kora/internal/services/ledger"
	"kora/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type WalletHandler struct {
	ledger     ledger.Service
	ledgerRepo repositories.LedgerRepository
}

func NewWalletHandler(ledgerSvc ledger.Service, ledgerRepo repositories.LedgerRepository) *WalletHandler {
	return &WalletHandler{
		ledger:     ledgerSvc,
		ledgerRepo: ledgerRepo,
	}
}

// claimsFromContext pulls the authenticated user's claims set by the auth
// middleware.
func claimsFromContext(c *fiber.Ctx) (*models.UserClaims, error) {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok || claims == nil {
		return nil, fiber.ErrUnauthorized
	}
	return claims, nil
}

func (h *WalletHandler) GetWallet(c *fiber.Ctx) error {
	claims, err := claimsFromContext(c)
	if err != nil {
		return response.Unauthorized(c)
	}

	wallet, err := h.ledgerRepo.GetWalletByUserID(c.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrWalletNotFound) {
			return response.NotFound(c, "Wallet not found for the logged-in user")
		}
		return response.ServerError(c, "Failed to get wallet")
	}

	return response.Success(c, "Wallet retrieved", wallet)
}

func (h *WalletHandler) InitiateDeposit(c *fiber.Ctx) error {
	claims, err := claimsFromContext(c)
	if err != nil {
		return response.Unauthorized(c)
	}

	var input struct {
		Amount float64 `json:"amount"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	intent, err := h.ledger.InitiateDeposit(c.Context(), claims.UserID, input.Amount)
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrInvalidAmount):
			return response.BadRequest(c, "Invalid deposit amount")
		case errors.Is(err, ledger.ErrUserNotFound):
			return response.NotFound(c, "User not found")
		default:
			return response.ServerError(c, "Failed to initiate deposit")
		}
	}

	return response.Success(c, "Deposit initiated", intent)
}

func (h *WalletHandler) VerifyDeposit(c *fiber.Ctx) error {
	claims, err := claimsFromContext(c)
	if err != nil {
		return response.Unauthorized(c)
	}

	var input struct {
		Reference string `json:"reference"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}
	if input.Reference == "" {
		return response.BadRequest(c, "Reference is required")
	}

	result, err := h.ledger.VerifyDeposit(c.Context(), input.Reference, claims.UserID)
	if err != nil {
		log.Printf("verify deposit for user %d: %v", claims.UserID, err)
	}
	switch result {
	case ledger.DepositSuccess:
		return response.Success(c, "Deposit successful", nil)
	case ledger.DepositUserNotFound:
		return response.NotFound(c, "User not found")
	case ledger.DepositTransactionNotFound:
		return response.NotFound(c, "Transaction not found")
	case ledger.DepositInvalidAmount:
		return response.BadRequest(c, "Invalid deposit amount")
	case ledger.DepositPaymentFailed:
		return response.BadRequest(c, "Payment failed")
	default:
		return response.ServerError(c, "An unexpected error occurred")
	}
}

func (h *WalletHandler) Transfer(c *fiber.Ctx) error {
	claims, err := claimsFromContext(c)
	if err != nil {
		return response.Unauthorized(c)
	}

	var input struct {
		RecipientID    uint    `json:"recipient_id"`
		Amount         float64 `json:"amount"`
		IdempotencyKey string  `json:"idempotency_key"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}
	if input.IdempotencyKey == "" {
		return response.BadRequest(c, "Idempotency key is required")
	}

	result, err := h.ledger.Transfer(c.Context(), claims.UserID, input.RecipientID, input.Amount, input.IdempotencyKey)
	if err != nil {
		log.Printf("transfer from user %d: %v", claims.UserID, err)
	}
	switch result {
	case ledger.TransferSuccess:
		return response.Success(c, "Transfer successful", nil)
	case ledger.TransferAlreadyProcessed:
		return response.Success(c, "Transfer already processed", nil)
	case ledger.TransferSenderNotFound:
		return response.NotFound(c, "Sender not found")
	case ledger.TransferRecipientNotFound:
		return response.NotFound(c, "Recipient not found")
	case ledger.TransferSameWalletTransfer:
		return response.BadRequest(c, "Transfer to the same wallet is prohibited")
	case ledger.TransferInsufficientFunds:
		return response.BadRequest(c, "Insufficient funds")
	case ledger.TransferInvalidAmount:
		return response.BadRequest(c, "Invalid transfer amount")
	default:
		return response.ServerError(c, "An unexpected error occurred")
	}
}

func (h *WalletHandler) GetDepositTransactions(c *fiber.Ctx) error {
	claims, err := claimsFromContext(c)
	if err != nil {
		return response.Unauthorized(c)
	}

	deposits, err := h.ledger.DepositHistory(c.Context(), claims.UserID)
	if err != nil {
		return response.ServerError(c, "Failed to get deposit transactions")
	}
	return response.Success(c, "Deposit transactions", deposits)
}

func (h *WalletHandler) GetDebitTransactions(c *fiber.Ctx) error {
	claims, err := claimsFromContext(c)
	if err != nil {
		return response.Unauthorized(c)
	}

	transfers, err := h.ledger.DebitHistory(c.Context(), claims.UserID)
	if err != nil {
		return response.ServerError(c, "Failed to get debit transactions")
	}
	return response.Success(c, "Debit transactions", transfers)
}

func (h *WalletHandler) GetCreditTransactions(c *fiber.Ctx) error {
	claims, err := claimsFromContext(c)
	if err != nil {
		return response.Unauthorized(c)
	}

	transfers, err := h.ledger.CreditHistory(c.Context(), claims.UserID)
	if err != nil {
		return response.ServerError(c, "Failed to get credit transactions")
	}
	return response.Success(c, "Credit transactions", transfers)
}
