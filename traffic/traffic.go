// Package traffic is the typed client for the WSDOT highway traveler
// APIs (/Traffic/api/...): cameras, travel times, highway alerts, and
// border crossing waits. These services authenticate with the
// AccessCode query parameter rather than the ferries' apiaccesscode.
package traffic

import (
	"context"

	"github.com/RobJacobson/wsdot-api-client/config"
	"github.com/RobJacobson/wsdot-api-client/endpoint"
)

// One REST facade per traveler service; each binds its own factory.
const (
	camerasPath         = "/Traffic/api/HighwayCameras/HighwayCamerasREST.svc"
	travelTimesPath     = "/Traffic/api/TravelTimes/TravelTimesREST.svc"
	alertsPath          = "/Traffic/api/HighwayAlerts/HighwayAlertsREST.svc"
	borderCrossingsPath = "/Traffic/api/BorderCrossings/BorderCrossingsREST.svc"
)

// API exposes the WSDOT traveler endpoints. Safe for concurrent use.
type API struct {
	cameras         func(context.Context, ...endpoint.CallOption) ([]Camera, error)
	camera          func(context.Context, endpoint.Params, ...endpoint.CallOption) (Camera, error)
	travelTimes     func(context.Context, ...endpoint.CallOption) ([]TravelTimeRoute, error)
	travelTime      func(context.Context, endpoint.Params, ...endpoint.CallOption) (TravelTimeRoute, error)
	alerts          func(context.Context, ...endpoint.CallOption) ([]HighwayAlert, error)
	alert           func(context.Context, endpoint.Params, ...endpoint.CallOption) (HighwayAlert, error)
	borderCrossings func(context.Context, ...endpoint.CallOption) ([]BorderCrossingData, error)
}

// New builds the traveler API. Each service family gets its own
// endpoint factory because the API path differs per family.
func New(cfg config.Config, opts ...endpoint.Option) (*API, error) {
	cameras, err := endpoint.NewFactory(cfg, camerasPath, opts...)
	if err != nil {
		return nil, err
	}
	travelTimes, err := endpoint.NewFactory(cfg, travelTimesPath, opts...)
	if err != nil {
		return nil, err
	}
	alerts, err := endpoint.NewFactory(cfg, alertsPath, opts...)
	if err != nil {
		return nil, err
	}
	borderCrossings, err := endpoint.NewFactory(cfg, borderCrossingsPath, opts...)
	if err != nil {
		return nil, err
	}

	return &API{
		cameras:         endpoint.Define[[]Camera](cameras, "/GetCamerasAsJson"),
		camera:          endpoint.DefineWithParams[Camera](cameras, "/GetCameraAsJson?CameraID={CameraID}"),
		travelTimes:     endpoint.Define[[]TravelTimeRoute](travelTimes, "/GetTravelTimesAsJson"),
		travelTime:      endpoint.DefineWithParams[TravelTimeRoute](travelTimes, "/GetTravelTimeAsJson?TravelTimeID={TravelTimeID}"),
		alerts:          endpoint.Define[[]HighwayAlert](alerts, "/GetAlertsAsJson"),
		alert:           endpoint.DefineWithParams[HighwayAlert](alerts, "/GetAlertAsJson?AlertID={AlertID}"),
		borderCrossings: endpoint.Define[[]BorderCrossingData](borderCrossings, "/GetBorderCrossingsAsJson"),
	}, nil
}

// Cameras lists every highway camera.
func (a *API) Cameras(ctx context.Context, opts ...endpoint.CallOption) ([]Camera, error) {
	return a.cameras(ctx, opts...)
}

// Camera returns one highway camera by ID.
func (a *API) Camera(ctx context.Context, cameraID int, opts ...endpoint.CallOption) (Camera, error) {
	return a.camera(ctx, endpoint.Params{"CameraID": cameraID}, opts...)
}

// TravelTimes lists every monitored travel-time route.
func (a *API) TravelTimes(ctx context.Context, opts ...endpoint.CallOption) ([]TravelTimeRoute, error) {
	return a.travelTimes(ctx, opts...)
}

// TravelTime returns one travel-time route by ID.
func (a *API) TravelTime(ctx context.Context, travelTimeID int, opts ...endpoint.CallOption) (TravelTimeRoute, error) {
	return a.travelTime(ctx, endpoint.Params{"TravelTimeID": travelTimeID}, opts...)
}

// Alerts lists every active highway alert.
func (a *API) Alerts(ctx context.Context, opts ...endpoint.CallOption) ([]HighwayAlert, error) {
	return a.alerts(ctx, opts...)
}

// Alert returns one highway alert by ID.
func (a *API) Alert(ctx context.Context, alertID int, opts ...endpoint.CallOption) (HighwayAlert, error) {
	return a.alert(ctx, endpoint.Params{"AlertID": alertID}, opts...)
}

// BorderCrossings reports wait times at the Canadian border crossings.
func (a *API) BorderCrossings(ctx context.Context, opts ...endpoint.CallOption) ([]BorderCrossingData, error) {
	return a.borderCrossings(ctx, opts...)
}
