package consts

// 笔记类型
const (
	NoteTypeNormal = "normal" // 图文
	NoteTypeVideo  = "video"  // 视频
)

const (
	// TitleMaxLen 标题入库截断长度
	TitleMaxLen = 200
	// DescMaxLen 正文描述入库截断长度
	DescMaxLen = 2000
)

const DefaultCatAvatarURL = "default_cat.png"
