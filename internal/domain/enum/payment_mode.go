package enum

// PaymentMode represents how a bill was settled
type PaymentMode string

const (
	PaymentModeCash PaymentMode = "Cash"
	PaymentModeUPI  PaymentMode = "UPI"
	PaymentModeCard PaymentMode = "Card"
)

// Valid reports whether the payment mode is one of the known modes.
func (m PaymentMode) Valid() bool {
	switch m {
	case PaymentModeCash, PaymentModeUPI, PaymentModeCard:
		return true
	}
	return false
}

func (m PaymentMode) String() string {
	return string(m)
}
