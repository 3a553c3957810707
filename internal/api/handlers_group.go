package api

import "Islet/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	SyncHandler    *handler.SyncHandler
	NoteHandler    *handler.NoteHandler
	AccountHandler *handler.AccountHandler
	WeeklyHandler  *handler.WeeklyHandler
	CatHandler     *handler.CatHandler
	AgentHandler   *handler.AgentHandler
}
