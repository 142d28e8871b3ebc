package handlers

// AppHandlers holds every HTTP handler the application wires at startup.
type AppHandlers struct {
	AuthHandler        *AuthHandler
	UserHandler        *UserHandler
	JobHandler         *JobHandler
	ApplicationHandler *ApplicationHandler
	InterviewHandler   *InterviewHandler
	FileHandler        *FileHandler
}
