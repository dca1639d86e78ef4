package main

func main() {
	InitFlag()
	InitSafeExit()
	InitConf(configPath)
	InitLog()
	// spawned render worker processes re-enter here with -worker-id set
	if workerID >= 0 {
		InitWorker()
		return
	}
	InitTask()
}
