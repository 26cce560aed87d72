// Package vessels is the typed client for the WSF Vessels API
// (/ferries/api/vessels/rest): fleet metadata, real-time locations,
// accommodations, statistics, and crossing history.
package vessels

import (
	"context"
	"time"

	"github.com/RobJacobson/wsdot-api-client/config"
	"github.com/RobJacobson/wsdot-api-client/datetime"
	"github.com/RobJacobson/wsdot-api-client/endpoint"
)

const apiPath = "/ferries/api/vessels/rest"

// API exposes the WSF Vessels endpoints. Safe for concurrent use.
type API struct {
	cacheFlushDate       func(context.Context, ...endpoint.CallOption) (datetime.Time, error)
	vesselBasics         func(context.Context, ...endpoint.CallOption) ([]VesselBasic, error)
	vesselBasic          func(context.Context, endpoint.Params, ...endpoint.CallOption) (VesselBasic, error)
	vesselLocations      func(context.Context, ...endpoint.CallOption) ([]VesselLocation, error)
	vesselLocation       func(context.Context, endpoint.Params, ...endpoint.CallOption) (VesselLocation, error)
	vesselVerbose        func(context.Context, ...endpoint.CallOption) ([]VesselVerbose, error)
	vesselAccommodations func(context.Context, endpoint.Params, ...endpoint.CallOption) (VesselAccommodation, error)
	vesselStats          func(context.Context, endpoint.Params, ...endpoint.CallOption) (VesselStats, error)
	vesselHistory        func(context.Context, endpoint.Params, ...endpoint.CallOption) ([]VesselHistory, error)
}

// New builds the Vessels API from the declarative endpoint list.
func New(cfg config.Config, opts ...endpoint.Option) (*API, error) {
	f, err := endpoint.NewFactory(cfg, apiPath, opts...)
	if err != nil {
		return nil, err
	}

	return &API{
		cacheFlushDate:       endpoint.Define[datetime.Time](f, "/cacheflushdate"),
		vesselBasics:         endpoint.Define[[]VesselBasic](f, "/vesselbasics"),
		vesselBasic:          endpoint.DefineWithParams[VesselBasic](f, "/vesselbasics/{VesselID}"),
		vesselLocations:      endpoint.Define[[]VesselLocation](f, "/vessellocations"),
		vesselLocation:       endpoint.DefineWithParams[VesselLocation](f, "/vessellocations/{VesselID}"),
		vesselVerbose:        endpoint.Define[[]VesselVerbose](f, "/vesselverbose"),
		vesselAccommodations: endpoint.DefineWithParams[VesselAccommodation](f, "/vesselaccommodations/{VesselID}"),
		vesselStats:          endpoint.DefineWithParams[VesselStats](f, "/vesselstats/{VesselID}"),
		vesselHistory:        endpoint.DefineWithParams[[]VesselHistory](f, "/vesselhistory/{VesselName}/{DateStart}/{DateEnd}"),
	}, nil
}

// CacheFlushDate reports when the service last invalidated its cached
// data.
func (a *API) CacheFlushDate(ctx context.Context, opts ...endpoint.CallOption) (datetime.Time, error) {
	return a.cacheFlushDate(ctx, opts...)
}

// VesselBasics lists name, class, and status for every vessel in the
// fleet.
func (a *API) VesselBasics(ctx context.Context, opts ...endpoint.CallOption) ([]VesselBasic, error) {
	return a.vesselBasics(ctx, opts...)
}

// VesselBasic returns one vessel's basic record.
func (a *API) VesselBasic(ctx context.Context, vesselID int, opts ...endpoint.CallOption) (VesselBasic, error) {
	return a.vesselBasic(ctx, endpoint.Params{"VesselID": vesselID}, opts...)
}

// VesselLocations reports the real-time position of every vessel.
func (a *API) VesselLocations(ctx context.Context, opts ...endpoint.CallOption) ([]VesselLocation, error) {
	return a.vesselLocations(ctx, opts...)
}

// VesselLocation reports one vessel's real-time position.
func (a *API) VesselLocation(ctx context.Context, vesselID int, opts ...endpoint.CallOption) (VesselLocation, error) {
	return a.vesselLocation(ctx, endpoint.Params{"VesselID": vesselID}, opts...)
}

// VesselVerbose returns the full detail record for every vessel.
func (a *API) VesselVerbose(ctx context.Context, opts ...endpoint.CallOption) ([]VesselVerbose, error) {
	return a.vesselVerbose(ctx, opts...)
}

// VesselAccommodations describes one vessel's passenger amenities.
func (a *API) VesselAccommodations(ctx context.Context, vesselID int, opts ...endpoint.CallOption) (VesselAccommodation, error) {
	return a.vesselAccommodations(ctx, endpoint.Params{"VesselID": vesselID}, opts...)
}

// VesselStats describes one vessel's physical specifications.
func (a *API) VesselStats(ctx context.Context, vesselID int, opts ...endpoint.CallOption) (VesselStats, error) {
	return a.vesselStats(ctx, endpoint.Params{"VesselID": vesselID}, opts...)
}

// VesselHistory lists a vessel's crossings between two dates, inclusive.
func (a *API) VesselHistory(ctx context.Context, vesselName string, dateStart, dateEnd time.Time, opts ...endpoint.CallOption) ([]VesselHistory, error) {
	return a.vesselHistory(ctx, endpoint.Params{
		"VesselName": vesselName,
		"DateStart":  dateStart,
		"DateEnd":    dateEnd,
	}, opts...)
}
