package entities

import "errors"

var (
	ErrUnknownOrderStatus         = errors.New("unknown order status")
	ErrUnknownApprovalStatus      = errors.New("unknown admin approval status")
	ErrUnknownServingStyle        = errors.New("unknown serving style")
	ErrUnknownChangeRequestStatus = errors.New("unknown change request status")
)
