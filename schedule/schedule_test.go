package schedule_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/RobJacobson/wsdot-api-client/config"
	"github.com/RobJacobson/wsdot-api-client/endpoint"
	"github.com/RobJacobson/wsdot-api-client/fetch"
	"github.com/RobJacobson/wsdot-api-client/schedule"
)

// newTestAPI spins up a fake WSF schedule service answering each path
// with a canned body, and an API wired to it over the native strategy.
func newTestAPI(t *testing.T, fixtures map[string]string) (*schedule.API, *http.Request) {
	t.Helper()

	var lastReq http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lastReq = *r
		body, ok := fixtures[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	strategy, err := fetch.Native()
	if err != nil {
		t.Fatalf("building native strategy: %v", err)
	}

	api, err := schedule.New(config.Config{
		BaseURL: srv.URL,
		APIKey:  "test-key",
	}, endpoint.WithStrategy(strategy))
	if err != nil {
		t.Fatalf("building schedule API: %v", err)
	}

	return api, &lastReq
}

func TestRoutes(t *testing.T) {
	api, lastReq := newTestAPI(t, map[string]string{
		"/ferries/api/schedule/rest/routes/2024-01-15": `[
			{"RouteID": 9, "RouteAbbrev": "sea-bi", "Description": "Seattle / Bainbridge Island", "RegionID": 1},
			{"RouteID": 5, "RouteAbbrev": "muk-cl", "Description": "Mukilteo / Clinton", "RegionID": 2}
		]`,
	})

	tripDate := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.Local)
	got, err := api.Routes(context.Background(), tripDate)
	if err != nil {
		t.Fatalf("Routes: %v", err)
	}

	want := []schedule.Route{
		{RouteID: 9, RouteAbbrev: "sea-bi", Description: "Seattle / Bainbridge Island", RegionID: 1},
		{RouteID: 5, RouteAbbrev: "muk-cl", Description: "Mukilteo / Clinton", RegionID: 2},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("routes mismatch (-want +got):\n%s", diff)
	}

	if got := lastReq.URL.Query().Get("apiaccesscode"); got != "test-key" {
		t.Errorf("apiaccesscode = %q, want %q", got, "test-key")
	}
}

func TestRouteDetails(t *testing.T) {
	api, _ := newTestAPI(t, map[string]string{
		"/ferries/api/schedule/rest/routedetails/2024-01-15/9": `{
			"RouteID": 9,
			"RouteAbbrev": "sea-bi",
			"Description": "Seattle / Bainbridge Island",
			"CrossingTime": "35",
			"ReservationFlag": false,
			"VesselWatchID": 5
		}`,
	})

	tripDate := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.Local)
	got, err := api.RouteDetails(context.Background(), tripDate, 9)
	if err != nil {
		t.Fatalf("RouteDetails: %v", err)
	}

	if got.RouteID != 9 || got.CrossingTime != "35" || got.VesselWatchID != 5 {
		t.Errorf("unexpected details: %+v", got)
	}
}

func TestCacheFlushDate(t *testing.T) {
	api, _ := newTestAPI(t, map[string]string{
		"/ferries/api/schedule/rest/cacheflushdate": `"\/Date(1705305600000-0800)\/"`,
	})

	got, err := api.CacheFlushDate(context.Background())
	if err != nil {
		t.Fatalf("CacheFlushDate: %v", err)
	}

	if want := int64(1705305600000); got.UnixMilli() != want {
		t.Errorf("UnixMilli = %d, want %d", got.UnixMilli(), want)
	}
}

func TestValidDateRange(t *testing.T) {
	api, _ := newTestAPI(t, map[string]string{
		"/ferries/api/schedule/rest/validdaterange": `{
			"DateFrom": "\/Date(1704096000000-0800)\/",
			"DateThru": "\/Date(1711954800000-0700)\/"
		}`,
	})

	got, err := api.ValidDateRange(context.Background())
	if err != nil {
		t.Fatalf("ValidDateRange: %v", err)
	}

	if !got.DateFrom.Before(got.DateThru.Time) {
		t.Errorf("DateFrom %v should precede DateThru %v", got.DateFrom, got.DateThru)
	}
}

func TestSchedule(t *testing.T) {
	api, _ := newTestAPI(t, map[string]string{
		"/ferries/api/schedule/rest/schedule/2024-01-15/9": `{
			"ScheduleID": 192,
			"ScheduleName": "Winter 2024",
			"TerminalCombos": [{
				"DepartingTerminalID": 7,
				"DepartingTerminalName": "Seattle",
				"ArrivingTerminalID": 3,
				"ArrivingTerminalName": "Bainbridge Island",
				"Times": [{
					"DepartingTime": "\/Date(1705305600000-0800)\/",
					"VesselID": 36,
					"VesselName": "Tacoma"
				}]
			}]
		}`,
	})

	tripDate := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.Local)
	got, err := api.Schedule(context.Background(), tripDate, 9)
	if err != nil {
		t.Fatalf("Schedule: %v", err)
	}

	if got.ScheduleID != 192 {
		t.Errorf("ScheduleID = %d, want 192", got.ScheduleID)
	}
	if len(got.TerminalCombos) != 1 || len(got.TerminalCombos[0].Times) != 1 {
		t.Fatalf("unexpected combos: %+v", got.TerminalCombos)
	}
	if got := got.TerminalCombos[0].Times[0].VesselName; got != "Tacoma" {
		t.Errorf("VesselName = %q, want %q", got, "Tacoma")
	}
}

func TestScheduleToday(t *testing.T) {
	api, lastReq := newTestAPI(t, map[string]string{
		"/ferries/api/schedule/rest/scheduletoday/9/true": `{"ScheduleID": 192}`,
	})

	got, err := api.ScheduleToday(context.Background(), 9, true)
	if err != nil {
		t.Fatalf("ScheduleToday: %v", err)
	}
	if got.ScheduleID != 192 {
		t.Errorf("ScheduleID = %d, want 192", got.ScheduleID)
	}
	if want := "/ferries/api/schedule/rest/scheduletoday/9/true"; lastReq.URL.Path != want {
		t.Errorf("path = %q, want %q", lastReq.URL.Path, want)
	}
}

func TestTerminalsAndMates(t *testing.T) {
	api, _ := newTestAPI(t, map[string]string{
		"/ferries/api/schedule/rest/terminalsandmates/2024-01-15": `[
			{"DepartingTerminalID": 7, "DepartingDescription": "Seattle", "ArrivingTerminalID": 3, "ArrivingDescription": "Bainbridge Island"}
		]`,
	})

	tripDate := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.Local)
	got, err := api.TerminalsAndMates(context.Background(), tripDate)
	if err != nil {
		t.Fatalf("TerminalsAndMates: %v", err)
	}

	want := []schedule.TerminalMate{{
		DepartingTerminalID:  7,
		DepartingDescription: "Seattle",
		ArrivingTerminalID:   3,
		ArrivingDescription:  "Bainbridge Island",
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestSailings(t *testing.T) {
	api, _ := newTestAPI(t, map[string]string{
		"/ferries/api/schedule/rest/sailings/2327": `[
			{"ScheduleID": 192, "SchedRouteID": 2327, "RouteID": 9, "SailingID": 101, "SailingDescription": "Leave Seattle"}
		]`,
	})

	got, err := api.Sailings(context.Background(), 2327)
	if err != nil {
		t.Fatalf("Sailings: %v", err)
	}
	if len(got) != 1 || got[0].SailingDescription != "Leave Seattle" {
		t.Errorf("unexpected sailings: %+v", got)
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	if _, err := schedule.New(config.Config{BaseURL: "https://example.com"}); err == nil {
		t.Fatal("expected error for missing API key")
	}
}
