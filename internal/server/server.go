package server

// Server joins the HTTP servers of every resource. There is only the
// profile resource so far.
type Server struct {
	ProfileServer
}

func NewServer(
	profileServer ProfileServer,
) Server {
	return Server{
		ProfileServer: profileServer,
	}
}
