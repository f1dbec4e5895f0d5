package server

// Server groups the HTTP handlers of each resource behind one router.
type Server struct {
	ProfessorServer
	HealthServer
}

func NewServer(
	professorServer ProfessorServer,
	healthServer HealthServer,
) Server {
	return Server{
		ProfessorServer: professorServer,
		HealthServer:    healthServer,
	}
}
