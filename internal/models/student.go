package models

type Student struct {
	ID string `json:"id"`
}

func NewStudent(id string) *Student {
	return &Student{ID: id}
}
