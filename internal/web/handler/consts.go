package handler

const (
	// RootPath is the root path of a route group.
	RootPath = "/"

	// APIPath is the prefix of all JSON endpoints.
	APIPath = "/api"

	// CheckAlivePath answers load balancer health checks.
	CheckAlivePath = "/checkalive"

	// MetricsPath exposes prometheus metrics.
	MetricsPath = "/metrics"

	// ParamClubID names the club id route parameter.
	ParamClubID = "clubId"
	// ParamEventID names the event id route parameter.
	ParamEventID = "eventId"
	// ParamUserID names the user id route parameter.
	ParamUserID = "userId"
	// ParamGenericID names a generic id route parameter.
	ParamGenericID = "id"

	// MsgInternalServerError is sent for unexpected failures; details are only logged.
	MsgInternalServerError = "internal server error"
)
