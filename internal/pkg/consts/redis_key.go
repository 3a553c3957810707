package consts

const (
	SyncStatusKey    = "sync:status"
	SyncRunningLock  = "sync:running:lock"
	AccountLatestKey = "account:latest"
)
