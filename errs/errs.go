package errs

const (
	// InternalServerError 一个非常含糊的错误码。代表系统内部错误
	InternalServerError = 500001
)

// MGP 计算部分，模块代码使用 01
const (
	// MGPInvalidInput 一个非常含糊的错误码，代表计算相关的API参数不对
	MGPInvalidInput = 401001
	// MGPNoValidEntries 过滤掉空白 UE 之后什么都不剩
	MGPNoValidEntries = 401002
	// MGPInvalidEntries 分数或者学分不合法，data 里有具体字段
	MGPInvalidEntries     = 401003
	MGPServiceUnavailable = 401004
	MGPResultNotFound     = 401005
)

// 成绩单
const (
	TranscriptExportFailed = 402001
)

// 草稿
const (
	DraftInvalidAction      = 403001
	DraftNotFound           = 403002
	DraftSubmissionInFlight = 403003
	DraftInvalidInput       = 403004
)
