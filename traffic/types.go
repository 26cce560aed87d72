package traffic

import "github.com/RobJacobson/wsdot-api-client/datetime"

// RoadwayLocation pins a record to a milepost on a state route.
type RoadwayLocation struct {
	Description string  `json:"Description"`
	RoadName    string  `json:"RoadName"`
	Direction   string  `json:"Direction"`
	MilePost    float64 `json:"MilePost"`
	Latitude    float64 `json:"Latitude"`
	Longitude   float64 `json:"Longitude"`
}

// Camera is one highway camera.
type Camera struct {
	CameraID         int             `json:"CameraID"`
	Region           string          `json:"Region"`
	CameraLocation   RoadwayLocation `json:"CameraLocation"`
	Title            string          `json:"Title"`
	ImageURL         string          `json:"ImageURL"`
	ImageWidth       int             `json:"ImageWidth"`
	ImageHeight      int             `json:"ImageHeight"`
	IsActive         bool            `json:"IsActive"`
	OwnerURL         string          `json:"OwnerURL"`
	CameraOwner      string          `json:"CameraOwner"`
	DisplayLatitude  float64         `json:"DisplayLatitude"`
	DisplayLongitude float64         `json:"DisplayLongitude"`
	SortOrder        int             `json:"SortOrder"`
}

// TravelTimeRoute is one monitored travel-time corridor.
type TravelTimeRoute struct {
	TravelTimeID int             `json:"TravelTimeID"`
	Name         string          `json:"Name"`
	Description  string          `json:"Description"`
	TimeUpdated  datetime.Time   `json:"TimeUpdated"`
	StartPoint   RoadwayLocation `json:"StartPoint"`
	EndPoint     RoadwayLocation `json:"EndPoint"`
	Distance     float64         `json:"Distance"`
	AverageTime  int             `json:"AverageTime"`
	CurrentTime  int             `json:"CurrentTime"`
}

// HighwayAlert is one active incident or closure.
type HighwayAlert struct {
	AlertID              int             `json:"AlertID"`
	County               string          `json:"County"`
	Region               string          `json:"Region"`
	StartRoadwayLocation RoadwayLocation `json:"StartRoadwayLocation"`
	EndRoadwayLocation   RoadwayLocation `json:"EndRoadwayLocation"`
	EventCategory        string          `json:"EventCategory"`
	EventStatus          string          `json:"EventStatus"`
	HeadlineDescription  string          `json:"HeadlineDescription"`
	ExtendedDescription  string          `json:"ExtendedDescription"`
	Priority             string          `json:"Priority"`
	StartTime            datetime.Time   `json:"StartTime"`
	EndTime              datetime.Time   `json:"EndTime"`
	LastUpdatedTime      datetime.Time   `json:"LastUpdatedTime"`
}

// BorderCrossingData is the reported wait at one border crossing.
type BorderCrossingData struct {
	Time                   datetime.Time   `json:"Time"`
	CrossingName           string          `json:"CrossingName"`
	BorderCrossingLocation RoadwayLocation `json:"BorderCrossingLocation"`
	WaitTime               int             `json:"WaitTime"`
}
