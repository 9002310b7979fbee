package fix

// Mul returns a * b.
//
// The product is formed in float64 and converted back with FromFloat, so
// a result beyond ±32767.0 saturates with ErrRange exactly as FromFloat does.
func Mul(a, b Fixed) (Fixed, error) {
	return FromFloat(ToFloat(a) * ToFloat(b))
}

// Div returns a / b.
//
// Division by zero returns ErrRange and the sentinel matching the sign of a:
// MaxFixed for a >= 0 (including 0/0), MinFixed for a < 0. Other quotients
// are formed in float64 and converted back with FromFloat.
func Div(a, b Fixed) (Fixed, error) {
	if b == 0 {
		if a < 0 {
			return MinFixed, ErrRange
		}
		return MaxFixed, ErrRange
	}
	return FromFloat(ToFloat(a) / ToFloat(b))
}
