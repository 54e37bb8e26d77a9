package domain

import "errors"

// Ledger failures. Every one of them rejects the whole operation; nothing
// is committed when they are returned.
var (
	ErrInvalidParameters = errors.New("invalid parameters")
	ErrNotFound          = errors.New("campaign not found")
	ErrAlreadyFinalized  = errors.New("campaign already finalized")
	ErrCampaignEnded     = errors.New("campaign ended")
	ErrNotEnded          = errors.New("campaign not ended")
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrNotRefundable     = errors.New("campaign not refundable")
	ErrNothingToRefund   = errors.New("nothing to refund")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrTransferFailed    = errors.New("transfer failed")
	ErrReentrantCall     = errors.New("reentrant ledger call")
	ErrInvalidDeposit    = errors.New("invalid deposit")
	ErrDepositClaimed    = errors.New("deposit already claimed")
)

var rejections = []error{
	ErrInvalidParameters,
	ErrNotFound,
	ErrAlreadyFinalized,
	ErrCampaignEnded,
	ErrNotEnded,
	ErrInvalidAmount,
	ErrNotRefundable,
	ErrNothingToRefund,
	ErrUnauthorized,
	ErrReentrantCall,
	ErrInvalidDeposit,
	ErrDepositClaimed,
}

// IsRejection reports whether err is a ledger rule violation as opposed to
// an infrastructure or transfer failure.
func IsRejection(err error) bool {
	for _, target := range rejections {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
