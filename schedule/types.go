package schedule

import "github.com/RobJacobson/wsdot-api-client/datetime"

// ValidDateRange is the span of trip dates the schedule API can answer for.
type ValidDateRange struct {
	DateFrom datetime.Time `json:"DateFrom"`
	DateThru datetime.Time `json:"DateThru"`
}

// ActiveSeason is a published schedule season.
type ActiveSeason struct {
	ScheduleID    int           `json:"ScheduleID"`
	ScheduleName  string        `json:"ScheduleName"`
	ScheduleStart datetime.Time `json:"ScheduleStart"`
	ScheduleEnd   datetime.Time `json:"ScheduleEnd"`
}

// Alert is a schedule bulletin published by WSF.
type Alert struct {
	BulletinID        int           `json:"BulletinID"`
	BulletinFlag      bool          `json:"BulletinFlag"`
	PublishDate       datetime.Time `json:"PublishDate"`
	AlertDescription  string        `json:"AlertDescription"`
	AlertFullTitle    string        `json:"AlertFullTitle"`
	AlertFullText     string        `json:"AlertFullText"`
	SortSeq           int           `json:"SortSeq"`
	AffectedRouteIDs  []int         `json:"AffectedRouteIDs"`
	CommunicationFlag bool          `json:"CommunicationFlag"`
}

// Route is a ferry route in service on a given trip date.
type Route struct {
	RouteID          int     `json:"RouteID"`
	RouteAbbrev      string  `json:"RouteAbbrev"`
	Description      string  `json:"Description"`
	RegionID         int     `json:"RegionID"`
	ServiceDisrupted bool    `json:"ServiceDisruptionFlag"`
	CrossingTime     string  `json:"CrossingTime"`
	Alerts           []Alert `json:"Alerts"`
}

// RouteDetails is the full description of one route.
type RouteDetails struct {
	RouteID              int     `json:"RouteID"`
	RouteAbbrev          string  `json:"RouteAbbrev"`
	Description          string  `json:"Description"`
	RegionID             int     `json:"RegionID"`
	CrossingTime         string  `json:"CrossingTime"`
	ReservationFlag      bool    `json:"ReservationFlag"`
	InternationalFlag    bool    `json:"InternationalFlag"`
	PassengerOnlyFlag    bool    `json:"PassengerOnlyFlag"`
	VesselWatchID        int     `json:"VesselWatchID"`
	GeneralRouteNotes    string  `json:"GeneralRouteNotes"`
	SeasonalRouteNotes   string  `json:"SeasonalRouteNotes"`
	AdaNotes             string  `json:"AdaNotes"`
	ServiceDisruptedFlag bool    `json:"ServiceDisruptionFlag"`
	Alerts               []Alert `json:"Alerts"`
}

// Terminal is a ferry terminal in service on a given trip date.
type Terminal struct {
	TerminalID  int    `json:"TerminalID"`
	Description string `json:"Description"`
}

// TerminalMate is a departing/arriving terminal pairing in service on a
// given trip date.
type TerminalMate struct {
	DepartingTerminalID  int    `json:"DepartingTerminalID"`
	DepartingDescription string `json:"DepartingDescription"`
	ArrivingTerminalID   int    `json:"ArrivingTerminalID"`
	ArrivingDescription  string `json:"ArrivingDescription"`
}

// SailingTime is one scheduled departure within a terminal combination.
type SailingTime struct {
	DepartingTime     datetime.Time `json:"DepartingTime"`
	ArrivingTime      datetime.Time `json:"ArrivingTime"`
	LoadingRule       int           `json:"LoadingRule"`
	VesselID          int           `json:"VesselID"`
	VesselName        string        `json:"VesselName"`
	VesselHandicapAcc bool          `json:"VesselHandicapAccessible"`
	Routes            []int         `json:"Routes"`
	AnnotationIndexes []int         `json:"AnnotationIndexes"`
}

// TerminalCombo groups the sailings between one departing/arriving
// terminal pair.
type TerminalCombo struct {
	DepartingTerminalID   int           `json:"DepartingTerminalID"`
	DepartingTerminalName string        `json:"DepartingTerminalName"`
	ArrivingTerminalID    int           `json:"ArrivingTerminalID"`
	ArrivingTerminalName  string        `json:"ArrivingTerminalName"`
	SailingNotes          string        `json:"SailingNotes"`
	Annotations           []string      `json:"Annotations"`
	Times                 []SailingTime `json:"Times"`
}

// ScheduleResult is the full sailing schedule for a route on a trip date.
type ScheduleResult struct {
	ScheduleID     int             `json:"ScheduleID"`
	ScheduleName   string          `json:"ScheduleName"`
	ScheduleSeason int             `json:"ScheduleSeason"`
	SchedulePDFUrl string          `json:"SchedulePDFUrl"`
	ScheduleStart  datetime.Time   `json:"ScheduleStart"`
	ScheduleEnd    datetime.Time   `json:"ScheduleEnd"`
	AllRoutes      []int           `json:"AllRoutes"`
	TerminalCombos []TerminalCombo `json:"TerminalCombos"`
}

// Sailing is one sailing of a scheduled route.
type Sailing struct {
	ScheduleID         int         `json:"ScheduleID"`
	SchedRouteID       int         `json:"SchedRouteID"`
	RouteID            int         `json:"RouteID"`
	SailingID          int         `json:"SailingID"`
	SailingDescription string      `json:"SailingDescription"`
	SailingNotes       string      `json:"SailingNotes"`
	DisplayColNum      int         `json:"DisplayColNum"`
	SailingDir         int         `json:"SailingDir"`
	DayOpDescription   string      `json:"DayOpDescription"`
	DayOpUseForHoliday bool        `json:"DayOpUseForHoliday"`
	ActiveDateRanges   []DateRange `json:"ActiveDateRanges"`
}

// DateRange is an inclusive span of calendar dates during which a
// sailing is active.
type DateRange struct {
	DateFrom         datetime.Time `json:"DateFrom"`
	DateThru         datetime.Time `json:"DateThru"`
	EventID          int           `json:"EventID"`
	EventDescription string        `json:"EventDescription"`
}

// TimeAdjustment is a tidal or event-driven change to a scheduled
// departure time.
type TimeAdjustment struct {
	ScheduleID         int           `json:"ScheduleID"`
	SchedRouteID       int           `json:"SchedRouteID"`
	RouteID            int           `json:"RouteID"`
	RouteDescription   string        `json:"RouteDescription"`
	SailingID          int           `json:"SailingID"`
	SailingDescription string        `json:"SailingDescription"`
	AdjDateFrom        datetime.Time `json:"AdjDateFrom"`
	AdjDateThru        datetime.Time `json:"AdjDateThru"`
	AdjType            int           `json:"AdjType"`
	TidalAdj           bool          `json:"TidalAdj"`
	DepartingTime      datetime.Time `json:"DepartingTime"`
	VesselID           int           `json:"VesselID"`
	VesselName         string        `json:"VesselName"`
}
