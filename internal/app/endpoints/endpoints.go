package endpoints

// Endpoints groups every endpoint the HTTP transport exposes.
type Endpoints struct {
	PlannerEndpoint PlannerEndpoint
}

func MakeEndpoints(service PlannerService) Endpoints {
	return Endpoints{
		PlannerEndpoint: MakePlannerEndpoint(service),
	}
}
