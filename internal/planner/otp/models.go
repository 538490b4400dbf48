package otp

// PlanResponse is the body of GET /otp/routers/{router}/plan.
type PlanResponse struct {
	Plan  *Plan      `json:"plan"`
	Error *PlanError `json:"error"`
}

// Plan holds the candidate itineraries.
type Plan struct {
	Date        int64          `json:"date"`
	From        Place          `json:"from"`
	To          Place          `json:"to"`
	Itineraries []RawItinerary `json:"itineraries"`
}

// PlanError is the planner's explicit error payload, e.g.
// {"id":404,"msg":"No trip found.","message":"PATH_NOT_FOUND"}.
type PlanError struct {
	ID      int    `json:"id"`
	Msg     string `json:"msg"`
	Message string `json:"message"`
}

func (e *PlanError) text() string {
	switch {
	case e.Message != "" && e.Msg != "":
		return e.Message + ": " + e.Msg
	case e.Message != "":
		return e.Message
	case e.Msg != "":
		return e.Msg
	default:
		return "planner returned an error"
	}
}

// RawItinerary is an itinerary as the planner sends it. Durations are
// seconds, distances meters, times epoch milliseconds.
type RawItinerary struct {
	Duration  float64  `json:"duration"`
	StartTime int64    `json:"startTime"`
	EndTime   int64    `json:"endTime"`
	WalkTime  *float64 `json:"walkTime"`
	Transfers int      `json:"transfers"`
	Legs      []RawLeg `json:"legs"`
}

// RawLeg is one planner leg.
type RawLeg struct {
	Mode           string    `json:"mode"`
	StartTime      int64     `json:"startTime"`
	EndTime        int64     `json:"endTime"`
	Duration       float64   `json:"duration"`
	Distance       float64   `json:"distance"`
	TransitLeg     bool      `json:"transitLeg"`
	From           *Place    `json:"from"`
	To             *Place    `json:"to"`
	Route          string    `json:"route"`
	RouteShortName string    `json:"routeShortName"`
	RouteLongName  string    `json:"routeLongName"`
	Headsign       string    `json:"headsign"`
	AgencyName     string    `json:"agencyName"`
	RouteType      *int      `json:"routeType"`
	LegGeometry    *Geometry `json:"legGeometry"`
}

// Place is a leg endpoint.
type Place struct {
	Name   string  `json:"name"`
	Lat    float64 `json:"lat"`
	Lon    float64 `json:"lon"`
	StopID string  `json:"stopId"`
}

// Geometry is an encoded polyline.
type Geometry struct {
	Points string `json:"points"`
	Length int    `json:"length"`
}
