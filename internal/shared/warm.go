package shared

// WarmTarget is one popular search to pre-cache at startup.
type WarmTarget struct {
	Vertical string
	From     string
	To       string
	Location string
}

// WarmTargets are the highest-traffic routes and cities from last quarter's
// search logs.
var WarmTargets = []WarmTarget{
	{Vertical: "flights", From: "Delhi", To: "Mumbai"},
	{Vertical: "flights", From: "Mumbai", To: "Bengaluru"},
	{Vertical: "flights", From: "Delhi", To: "Goa"},
	{Vertical: "buses", From: "Delhi", To: "Jaipur"},
	{Vertical: "buses", From: "Mumbai", To: "Pune"},
	{Vertical: "trains", From: "Delhi", To: "Agra"},
	{Vertical: "trains", From: "Mumbai", To: "Ahmedabad"},
	{Vertical: "hotels", Location: "Goa"},
	{Vertical: "hotels", Location: "Jaipur"},
	{Vertical: "homestays", Location: "Manali"},
	{Vertical: "holiday-packages", Location: "Kerala"},
}
