package models

// Share request approval states
const (
	ShareStatusRequested = "REQUESTED"
	ShareStatusApproved  = "APPROVED"
	ShareStatusRejected  = "REJECTED"
)

type ShareRequest struct {
	Meta
	ID             string `json:"id"`
	Approver       string `json:"approver"`
	Requester      string `json:"requester"`
	ApprovalStatus string `json:"approvalStatus"`
}

type ShareRequestUpdate struct {
	Approver       *string `json:"approver,omitempty" validate:"omitnil,email"`
	ApprovalStatus *string `json:"approvalStatus,omitempty" validate:"omitnil,oneof=REQUESTED APPROVED REJECTED"`
}
