package validate

// Payment methods accepted for deposits and repayments.
const (
	MethodCash         = "cash"
	MethodBankTransfer = "bank_transfer"
	MethodMobileMoney  = "mobile_money"
)

// Member account statuses. A flat set: any status may move to any other.
const (
	MemberStatusActive      = "active"
	MemberStatusPartTime    = "part-time"
	MemberStatusDeactivated = "deactivated"
	MemberStatusFrozen      = "frozen"
)

func IsPaymentMethod(s string) bool {
	switch s {
	case MethodCash, MethodBankTransfer, MethodMobileMoney:
		return true
	}
	return false
}

func IsMemberStatus(s string) bool {
	switch s {
	case MemberStatusActive, MemberStatusPartTime, MemberStatusDeactivated, MemberStatusFrozen:
		return true
	}
	return false
}

func IsPositiveAmount(amount float64) bool {
	return amount > 0
}
