package model

// ConfirmationChoice is the operator's answer to the import prompt.
type ConfirmationChoice int

const (
	ChoiceCancel ConfirmationChoice = iota
	ChoiceFull
	ChoiceTestSubset
)

func (c ConfirmationChoice) String() string {
	switch c {
	case ChoiceFull:
		return "full"
	case ChoiceTestSubset:
		return "test"
	default:
		return "cancel"
	}
}
