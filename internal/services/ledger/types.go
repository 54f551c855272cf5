package ledger

// DepositResult is the outcome of a deposit verification.
type DepositResult string

const (
	DepositSuccess             DepositResult = "Success"
	DepositUserNotFound        DepositResult = "UserNotFound"
	DepositInvalidAmount       DepositResult = "InvalidAmount"
	DepositTransactionNotFound DepositResult = "TransactionNotFound"
	DepositPaymentFailed       DepositResult = "PaymentFailed"
	DepositUnknownError        DepositResult = "UnknownError"
)

// TransferResult is the outcome of a wallet-to-wallet transfer.
type TransferResult string

const (
	TransferSuccess            TransferResult = "Success"
	TransferSenderNotFound     TransferResult = "SenderNotFound"
	TransferRecipientNotFound  TransferResult = "RecipientNotFound"
	TransferSameWalletTransfer TransferResult = "SameWalletTransfer"
	TransferInsufficientFunds  TransferResult = "InsufficientFunds"
	TransferInvalidAmount      TransferResult = "InvalidAmount"
	TransferAlreadyProcessed   TransferResult = "AlreadyProcessed"
	TransferUnknownError       TransferResult = "UnknownError"
)

// DepositIntent is handed back from InitiateDeposit. The plaintext reference
// appears here once; afterwards it only exists encrypted at rest.
type DepositIntent struct {
	AuthorizationURL string `json:"payment_url"`
	Reference        string `json:"reference"`
}
