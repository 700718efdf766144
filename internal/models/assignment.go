package models

// Assignment is identified inside its classroom by Details.
type Assignment struct {
	Details   string `json:"details"`
	submitted bool
}

func NewAssignment(details string) *Assignment {
	return &Assignment{Details: details}
}

func (a *Assignment) Submitted() bool {
	return a.submitted
}

// Submit marks the assignment as submitted. There is no way back.
func (a *Assignment) Submit() {
	a.submitted = true
}
