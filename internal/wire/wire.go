package wire

import (
	"Islet/internal/api"
	"Islet/internal/api/config"
	"Islet/internal/api/handler"
	"Islet/internal/job"
	"Islet/internal/pkg/cron"
	"Islet/internal/pkg/llm"
	pkgmongo "Islet/internal/pkg/mongo"
	"Islet/internal/pkg/spider"
	"Islet/internal/repository"
	"Islet/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router  *gin.Engine
	DB      *gorm.DB
	CronMgr *cron.Manager
}

func BuildApplication(db *gorm.DB, mongoDB *mongo.Database, cfg *config.Config) (*ApplicationContainer, error) {
	noteRepo := repository.NewNoteRepo(db)
	commentRepo := repository.NewCommentRepo(db)
	accountRepo := repository.NewAccountRepo(db)
	weeklyRepo := repository.NewWeeklyRepo(db)
	catRepo := repository.NewCatRepo(db)
	chatRepo := pkgmongo.NewChatMessageRepo(mongoDB)

	fetcher := spider.NewClient(cfg.Spider)
	tools := llm.NewToolHandler()

	syncService := service.NewSyncService(fetcher, noteRepo, commentRepo, accountRepo, cfg.Sync, cfg.Spider)
	noteService := service.NewNoteService(noteRepo, commentRepo)
	accountService := service.NewAccountService(accountRepo)
	weeklyService := service.NewWeeklyService(weeklyRepo)
	catService := service.NewCatService(catRepo)
	agentService := service.NewAgentService(chatRepo, noteRepo, tools)

	handlers := &api.HandlersGroup{
		SyncHandler:    handler.NewSyncHandler(syncService),
		NoteHandler:    handler.NewNoteHandler(noteService),
		AccountHandler: handler.NewAccountHandler(accountService),
		WeeklyHandler:  handler.NewWeeklyHandler(weeklyService),
		CatHandler:     handler.NewCatHandler(catService),
		AgentHandler:   handler.NewAgentHandler(agentService),
	}

	router := api.SetupRouter(handlers)

	syncJob := job.NewSyncJob(syncService)
	cronMgr := cron.NewCronManager(syncJob, cfg.Sync.CronSpec)

	return &ApplicationContainer{
		Router:  router,
		DB:      db,
		CronMgr: cronMgr,
	}, nil
}
