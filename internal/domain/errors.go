package domain

import "errors"

var ErrRecordNotFound = errors.New("record not found")
var ErrInsufficientBalance = errors.New("insufficient balance")
var ErrInvalidPayment = errors.New("payment amount exceeds outstanding balance")
