// Package schedule is the typed client for the WSF Schedule API
// (/ferries/api/schedule/rest). Endpoints are declared once in [New]
// via the endpoint factory; the exported methods only supply typed
// parameters.
package schedule

import (
	"context"
	"time"

	"github.com/RobJacobson/wsdot-api-client/config"
	"github.com/RobJacobson/wsdot-api-client/datetime"
	"github.com/RobJacobson/wsdot-api-client/endpoint"
)

const apiPath = "/ferries/api/schedule/rest"

// API exposes the WSF Schedule endpoints. Safe for concurrent use.
type API struct {
	cacheFlushDate        func(context.Context, ...endpoint.CallOption) (datetime.Time, error)
	validDateRange        func(context.Context, ...endpoint.CallOption) (ValidDateRange, error)
	activeSeasons         func(context.Context, ...endpoint.CallOption) ([]ActiveSeason, error)
	alerts                func(context.Context, ...endpoint.CallOption) ([]Alert, error)
	timeAdjustments       func(context.Context, ...endpoint.CallOption) ([]TimeAdjustment, error)
	routes                func(context.Context, endpoint.Params, ...endpoint.CallOption) ([]Route, error)
	routesWithDisruptions func(context.Context, endpoint.Params, ...endpoint.CallOption) ([]Route, error)
	routeDetails          func(context.Context, endpoint.Params, ...endpoint.CallOption) (RouteDetails, error)
	terminals             func(context.Context, endpoint.Params, ...endpoint.CallOption) ([]Terminal, error)
	terminalsAndMates     func(context.Context, endpoint.Params, ...endpoint.CallOption) ([]TerminalMate, error)
	schedule              func(context.Context, endpoint.Params, ...endpoint.CallOption) (ScheduleResult, error)
	scheduleToday         func(context.Context, endpoint.Params, ...endpoint.CallOption) (ScheduleResult, error)
	sailings              func(context.Context, endpoint.Params, ...endpoint.CallOption) ([]Sailing, error)
}

// New builds the Schedule API from the declarative endpoint list.
func New(cfg config.Config, opts ...endpoint.Option) (*API, error) {
	f, err := endpoint.NewFactory(cfg, apiPath, opts...)
	if err != nil {
		return nil, err
	}

	return &API{
		cacheFlushDate:        endpoint.Define[datetime.Time](f, "/cacheflushdate"),
		validDateRange:        endpoint.Define[ValidDateRange](f, "/validdaterange"),
		activeSeasons:         endpoint.Define[[]ActiveSeason](f, "/activeseasons"),
		alerts:                endpoint.Define[[]Alert](f, "/alerts"),
		timeAdjustments:       endpoint.Define[[]TimeAdjustment](f, "/timeadj"),
		routes:                endpoint.DefineWithParams[[]Route](f, "/routes/{TripDate}"),
		routesWithDisruptions: endpoint.DefineWithParams[[]Route](f, "/routeshavingservicedisruptions/{TripDate}"),
		routeDetails:          endpoint.DefineWithParams[RouteDetails](f, "/routedetails/{TripDate}/{RouteID}"),
		terminals:             endpoint.DefineWithParams[[]Terminal](f, "/terminals/{TripDate}"),
		terminalsAndMates:     endpoint.DefineWithParams[[]TerminalMate](f, "/terminalsandmates/{TripDate}"),
		schedule:              endpoint.DefineWithParams[ScheduleResult](f, "/schedule/{TripDate}/{RouteID}"),
		scheduleToday:         endpoint.DefineWithParams[ScheduleResult](f, "/scheduletoday/{RouteID}/{OnlyRemainingTimes}"),
		sailings:              endpoint.DefineWithParams[[]Sailing](f, "/sailings/{SchedRouteID}"),
	}, nil
}

// CacheFlushDate reports when the service last invalidated its cached
// data. Callers holding responses older than this should refetch.
func (a *API) CacheFlushDate(ctx context.Context, opts ...endpoint.CallOption) (datetime.Time, error) {
	return a.cacheFlushDate(ctx, opts...)
}

// ValidDateRange reports the span of trip dates the API can answer for.
func (a *API) ValidDateRange(ctx context.Context, opts ...endpoint.CallOption) (ValidDateRange, error) {
	return a.validDateRange(ctx, opts...)
}

// ActiveSeasons lists the schedule seasons currently published.
func (a *API) ActiveSeasons(ctx context.Context, opts ...endpoint.CallOption) ([]ActiveSeason, error) {
	return a.activeSeasons(ctx, opts...)
}

// Alerts lists all published schedule bulletins.
func (a *API) Alerts(ctx context.Context, opts ...endpoint.CallOption) ([]Alert, error) {
	return a.alerts(ctx, opts...)
}

// TimeAdjustments lists tidal and other departure-time adjustments
// across all routes.
func (a *API) TimeAdjustments(ctx context.Context, opts ...endpoint.CallOption) ([]TimeAdjustment, error) {
	return a.timeAdjustments(ctx, opts...)
}

// Routes lists the routes in service on the given trip date.
func (a *API) Routes(ctx context.Context, tripDate time.Time, opts ...endpoint.CallOption) ([]Route, error) {
	return a.routes(ctx, endpoint.Params{"TripDate": tripDate}, opts...)
}

// RoutesHavingServiceDisruptions lists routes with active disruptions
// on the given trip date.
func (a *API) RoutesHavingServiceDisruptions(ctx context.Context, tripDate time.Time, opts ...endpoint.CallOption) ([]Route, error) {
	return a.routesWithDisruptions(ctx, endpoint.Params{"TripDate": tripDate}, opts...)
}

// RouteDetails describes one route on the given trip date.
func (a *API) RouteDetails(ctx context.Context, tripDate time.Time, routeID int, opts ...endpoint.CallOption) (RouteDetails, error) {
	return a.routeDetails(ctx, endpoint.Params{"TripDate": tripDate, "RouteID": routeID}, opts...)
}

// Terminals lists the terminals in service on the given trip date.
func (a *API) Terminals(ctx context.Context, tripDate time.Time, opts ...endpoint.CallOption) ([]Terminal, error) {
	return a.terminals(ctx, endpoint.Params{"TripDate": tripDate}, opts...)
}

// TerminalsAndMates lists every departing/arriving terminal pairing in
// service on the given trip date.
func (a *API) TerminalsAndMates(ctx context.Context, tripDate time.Time, opts ...endpoint.CallOption) ([]TerminalMate, error) {
	return a.terminalsAndMates(ctx, endpoint.Params{"TripDate": tripDate}, opts...)
}

// Schedule returns the full sailing schedule for a route on the given
// trip date.
func (a *API) Schedule(ctx context.Context, tripDate time.Time, routeID int, opts ...endpoint.CallOption) (ScheduleResult, error) {
	return a.schedule(ctx, endpoint.Params{"TripDate": tripDate, "RouteID": routeID}, opts...)
}

// ScheduleToday returns today's schedule for a route, optionally
// limited to sailings that have not yet departed.
func (a *API) ScheduleToday(ctx context.Context, routeID int, onlyRemaining bool, opts ...endpoint.CallOption) (ScheduleResult, error) {
	return a.scheduleToday(ctx, endpoint.Params{"RouteID": routeID, "OnlyRemainingTimes": onlyRemaining}, opts...)
}

// Sailings lists the sailings for a scheduled route.
func (a *API) Sailings(ctx context.Context, schedRouteID int, opts ...endpoint.CallOption) ([]Sailing, error) {
	return a.sailings(ctx, endpoint.Params{"SchedRouteID": schedRouteID}, opts...)
}
