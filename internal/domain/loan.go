package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type LoanType string

const (
	LoanTypePersonal  LoanType = "personal"
	LoanTypeHome      LoanType = "home"
	LoanTypeAuto      LoanType = "auto"
	LoanTypeEducation LoanType = "education"
	LoanTypeBusiness  LoanType = "business"
)

type LoanStatus string

const (
	LoanStatusPending   LoanStatus = "pending"
	LoanStatusApproved  LoanStatus = "approved"
	LoanStatusActive    LoanStatus = "active"
	LoanStatusPaid      LoanStatus = "paid"
	LoanStatusDefaulted LoanStatus = "defaulted"
)

type Loan struct {
	ID                 string
	UserID             string
	LoanNumber         string
	LoanType           LoanType
	Amount             decimal.Decimal
	InterestRate       decimal.Decimal
	TermMonths         int
	MonthlyPayment     decimal.Decimal
	OutstandingBalance decimal.Decimal
	Status             LoanStatus
	DisbursementDate   *time.Time
	NextPaymentDate    *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (t LoanType) Valid() bool {
	switch t {
	case LoanTypePersonal, LoanTypeHome, LoanTypeAuto, LoanTypeEducation, LoanTypeBusiness:
		return true
	}
	return false
}

func (s LoanStatus) Valid() bool {
	switch s {
	case LoanStatusPending, LoanStatusApproved, LoanStatusActive, LoanStatusPaid, LoanStatusDefaulted:
		return true
	}
	return false
}
