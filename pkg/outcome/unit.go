package outcome

// Unit is the empty payload type. A payload-free outcome is the
// generic outcome specialized to Unit.
type Unit struct{}

// Plain is a payload-free outcome: a success/failure flag, a message
// and an optional cause, nothing else.
type Plain = Outcome[Unit]

func Succeed() Plain {
	return Success(Unit{})
}

func SucceedWith(message string) Plain {
	return SuccessWith(Unit{}, message)
}
