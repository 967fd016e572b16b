package domain

// LetterGrade 单门 UE 的等级（cote）
type LetterGrade string

const (
	GradeA LetterGrade = "A"
	GradeB LetterGrade = "B"
	GradeC LetterGrade = "C"
	GradeD LetterGrade = "D"
	GradeF LetterGrade = "F"
)

// CourseEntry 一门 UE 的输入
type CourseEntry struct {
	Name    string
	Credits int
	// Score 百分制，允许小数
	Score float64
}

type GradedEntry struct {
	CourseEntry
	Letter LetterGrade
}

type Aggregate struct {
	Average      float64
	TotalPoints  float64
	TotalCredits int
	Entries      []GradedEntry
}

// Result 一次计算的完整结果，Id 由计算服务分配
type Result struct {
	Id               int64
	StudentName      string
	Average          float64
	FormattedAverage string
	Mention          string
	Admitted         bool
	Entries          []GradedEntry
	TotalCredits     int
	TotalPoints      float64
	CourseCount      int
	ValidatedCount   int
	FailedCount      int
	SuccessRate      float64
	// Ctime 毫秒时间戳
	Ctime int64
}

type Transcript struct {
	Filename string
	Content  []byte
}
