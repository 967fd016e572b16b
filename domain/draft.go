package domain

// Draft 一次编辑会话中的表单状态
type Draft struct {
	Id           string
	StudentName  string
	Entries      []CourseEntry
	LastResultId int64
	Utime        int64
}

type ActionType string

const (
	ActionAddEntry       ActionType = "addEntry"
	ActionRemoveEntry    ActionType = "removeEntry"
	ActionUpdateEntry    ActionType = "updateEntry"
	ActionSetStudentName ActionType = "setStudentName"
)

type EntryField string

const (
	FieldName    EntryField = "nom"
	FieldCredits EntryField = "credits"
	FieldScore   EntryField = "note"
)

type Action struct {
	Type  ActionType
	Index int
	Field EntryField
	Value string
	Name  string
}
