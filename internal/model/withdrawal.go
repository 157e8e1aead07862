package model

import "encoding/json"

// WithdrawalStatus enumerates the possible states of a withdrawal request.
type WithdrawalStatus string

const (
	WithdrawalStatusPending   WithdrawalStatus = "pending"
	WithdrawalStatusApproved  WithdrawalStatus = "approved"
	WithdrawalStatusRejected  WithdrawalStatus = "rejected"
	WithdrawalStatusCompleted WithdrawalStatus = "completed"
)

// Withdrawal represents a teacher payout request as owned by the platform.
type Withdrawal struct {
	ID              string           `json:"_id"`
	User            *WithdrawalUser  `json:"userId,omitempty"`
	Amount          float64          `json:"amount"`
	PaymentMethod   string           `json:"paymentMethod"`
	BankDetails     json.RawMessage  `json:"bankDetails,omitempty"`
	UpiID           string           `json:"upiId,omitempty"`
	Status          WithdrawalStatus `json:"status"`
	RejectionReason string           `json:"rejectionReason,omitempty"`
	TransactionID   string           `json:"transactionId,omitempty"`
	Remarks         string           `json:"remarks,omitempty"`
	CreatedAt       string           `json:"createdAt,omitempty"`
	ProcessedAt     string           `json:"processedAt,omitempty"`
	ProcessedBy     string           `json:"processedBy,omitempty"`
}

// WithdrawalUser is the populated requester reference on a withdrawal.
type WithdrawalUser struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// RejectWithdrawalRequest carries the mandatory rejection reason.
type RejectWithdrawalRequest struct {
	RejectionReason string `json:"rejectionReason" binding:"required,min=1"`
}

// CompleteWithdrawalRequest records the external payment transaction.
type CompleteWithdrawalRequest struct {
	TransactionID string `json:"transactionId" binding:"required,min=1"`
	Remarks       string `json:"remarks" binding:"omitempty,max=500"`
}
