package model

import "errors"

var (
	ErrStore                 = errors.New("store error")              // 500
	ErrValidation            = errors.New("validation error")         // 400
	ErrPurchaseOrderNotFound = errors.New("purchase order not found") // 404
	ErrTotalCostOverflow     = errors.New("total cost is not finite") // 422
)
