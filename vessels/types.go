package vessels

import "github.com/RobJacobson/wsdot-api-client/datetime"

// VesselClass groups vessels built to the same design.
type VesselClass struct {
	ClassID           int    `json:"ClassID"`
	ClassName         string `json:"ClassName"`
	SortSeq           int    `json:"SortSeq"`
	DrawingImg        string `json:"DrawingImg"`
	SilhouetteImg     string `json:"SilhouetteImg"`
	PublicDisplayName string `json:"PublicDisplayName"`
}

// VesselBasic is the name, class, and service status of one vessel.
type VesselBasic struct {
	VesselID     int         `json:"VesselID"`
	VesselName   string      `json:"VesselName"`
	VesselAbbrev string      `json:"VesselAbbrev"`
	Class        VesselClass `json:"Class"`
	Status       int         `json:"Status"`
	OwnedByWSF   bool        `json:"OwnedByWSF"`
}

// VesselLocation is a real-time position report for one vessel.
type VesselLocation struct {
	VesselID                int           `json:"VesselID"`
	VesselName              string        `json:"VesselName"`
	Mmsi                    int           `json:"Mmsi"`
	DepartingTerminalID     int           `json:"DepartingTerminalID"`
	DepartingTerminalName   string        `json:"DepartingTerminalName"`
	DepartingTerminalAbbrev string        `json:"DepartingTerminalAbbrev"`
	ArrivingTerminalID      int           `json:"ArrivingTerminalID"`
	ArrivingTerminalName    string        `json:"ArrivingTerminalName"`
	ArrivingTerminalAbbrev  string        `json:"ArrivingTerminalAbbrev"`
	Latitude                float64       `json:"Latitude"`
	Longitude               float64       `json:"Longitude"`
	Speed                   float64       `json:"Speed"`
	Heading                 float64       `json:"Heading"`
	InService               bool          `json:"InService"`
	AtDock                  bool          `json:"AtDock"`
	LeftDock                datetime.Time `json:"LeftDock"`
	Eta                     datetime.Time `json:"Eta"`
	ScheduledDeparture      datetime.Time `json:"ScheduledDeparture"`
	OpRouteAbbrev           []string      `json:"OpRouteAbbrev"`
	VesselPositionNum       int           `json:"VesselPositionNum"`
	TimeStamp               datetime.Time `json:"TimeStamp"`
}

// VesselAccommodation describes passenger amenities aboard one vessel.
type VesselAccommodation struct {
	VesselID          int    `json:"VesselID"`
	VesselName        string `json:"VesselName"`
	CarDeckRestroom   bool   `json:"CarDeckRestroom"`
	CarDeckShelter    bool   `json:"CarDeckShelter"`
	Elevator          bool   `json:"Elevator"`
	ADAAccessible     bool   `json:"ADAAccessible"`
	MainCabinGalley   bool   `json:"MainCabinGalley"`
	MainCabinRestroom bool   `json:"MainCabinRestroom"`
	PublicWifi        bool   `json:"PublicWifi"`
	ADAInfo           string `json:"ADAInfo"`
	AdditionalInfo    string `json:"AdditionalInfo"`
}

// VesselStats describes the physical specifications of one vessel.
type VesselStats struct {
	VesselID          int    `json:"VesselID"`
	VesselName        string `json:"VesselName"`
	VesselNameDesc    string `json:"VesselNameDesc"`
	VesselHistory     string `json:"VesselHistory"`
	Beam              string `json:"Beam"`
	CityBuilt         string `json:"CityBuilt"`
	SpeedInKnots      int    `json:"SpeedInKnots"`
	Draft             string `json:"Draft"`
	EngineCount       int    `json:"EngineCount"`
	Horsepower        int    `json:"Horsepower"`
	Length            string `json:"Length"`
	MaxPassengerCount int    `json:"MaxPassengerCount"`
	PassengerOnly     bool   `json:"PassengerOnly"`
	FastFerry         bool   `json:"FastFerry"`
	PropulsionInfo    string `json:"PropulsionInfo"`
	TallDeckClearance int    `json:"TallDeckClearance"`
	RegDeckSpace      int    `json:"RegDeckSpace"`
	TallDeckSpace     int    `json:"TallDeckSpace"`
	Tonnage           int    `json:"Tonnage"`
	Displacement      int    `json:"Displacement"`
	YearBuilt         int    `json:"YearBuilt"`
	YearRebuilt       int    `json:"YearRebuilt"`
	SolasCertified    bool   `json:"SolasCertified"`
}

// VesselVerbose is the full per-vessel record: the basic fields plus
// the accommodation and specification detail the service folds into
// one response. Kept flat so the shared identity fields decode once.
type VesselVerbose struct {
	VesselID          int         `json:"VesselID"`
	VesselName        string      `json:"VesselName"`
	VesselAbbrev      string      `json:"VesselAbbrev"`
	Class             VesselClass `json:"Class"`
	Status            int         `json:"Status"`
	OwnedByWSF        bool        `json:"OwnedByWSF"`
	CarDeckRestroom   bool        `json:"CarDeckRestroom"`
	Elevator          bool        `json:"Elevator"`
	ADAAccessible     bool        `json:"ADAAccessible"`
	MainCabinGalley   bool        `json:"MainCabinGalley"`
	MainCabinRestroom bool        `json:"MainCabinRestroom"`
	PublicWifi        bool        `json:"PublicWifi"`
	Beam              string      `json:"Beam"`
	CityBuilt         string      `json:"CityBuilt"`
	SpeedInKnots      int         `json:"SpeedInKnots"`
	Draft             string      `json:"Draft"`
	EngineCount       int         `json:"EngineCount"`
	Horsepower        int         `json:"Horsepower"`
	Length            string      `json:"Length"`
	MaxPassengerCount int         `json:"MaxPassengerCount"`
	PropulsionInfo    string      `json:"PropulsionInfo"`
	Tonnage           int         `json:"Tonnage"`
	YearBuilt         int         `json:"YearBuilt"`
	YearRebuilt       int         `json:"YearRebuilt"`
}

// VesselHistory is one recorded crossing.
type VesselHistory struct {
	VesselID        int           `json:"VesselId"`
	Vessel          string        `json:"Vessel"`
	Departing       string        `json:"Departing"`
	Arriving        string        `json:"Arriving"`
	ScheduledDepart datetime.Time `json:"ScheduledDepart"`
	ActualDepart    datetime.Time `json:"ActualDepart"`
	EstArrival      datetime.Time `json:"EstArrival"`
	Date            datetime.Time `json:"Date"`
}
