package response

import (
	"encoding/json"
	"testing"
	"time"

	"car_maintenance/internal/domain/entities"
	"car_maintenance/internal/usecase"
)

func TestFromBooking(t *testing.T) {
	stars := 4
	b := entities.Booking{
		RecordKey: "-k", BookingID: "BK-1", Service: "Brakes", Date: "10/15/2026", Time: "9:30:00 AM",
		SenderEmail: "a@x.com", ReceiverEmail: "m@x.com", Status: entities.BookingStatusCompleted, Rating: &stars,
	}

	res := FromBooking(b)
	if res.RecordKey != "-k" || res.BookingID != "BK-1" || res.Status != "Completed" || !res.Terminal {
		t.Fatalf("unexpected mapping: %+v", res)
	}
	if res.Rating == nil || *res.Rating != 4 {
		t.Fatalf("unexpected rating: %v", res.Rating)
	}

	raw, _ := json.Marshal(FromBooking(entities.Booking{Status: entities.BookingStatusProcessing}))
	var body map[string]any
	_ = json.Unmarshal(raw, &body)
	if _, ok := body["rating"]; ok {
		t.Fatalf("unrated booking must omit rating: %s", raw)
	}
	if _, ok := body["comment"]; ok {
		t.Fatalf("empty comment must be omitted: %s", raw)
	}
}

func TestFromMechanic(t *testing.T) {
	res := FromMechanic(entities.Mechanic{Email: "m@x.com", Status: entities.MechanicStatusActive, ImageRef: "logos/a.png"}, "https://signed")
	if res.ImageURL != "https://signed" || res.ImageRef != "logos/a.png" || res.Status != "Active" {
		t.Fatalf("unexpected mapping: %+v", res)
	}
	if res.Services == nil {
		t.Fatalf("services must serialize as an empty list")
	}
}

func TestFromReportResult(t *testing.T) {
	now := time.Now().UTC()
	res := FromReportResult(usecase.ReportResult{
		Kind: entities.MediaKindImage, OutputURL: "https://scan/out/1.jpg", Persisted: true,
		Report: &entities.Report{RecordKey: "-r", Email: "a@x.com", Type: entities.MediaKindImage, Timestamp: now},
	})
	if !res.Persisted || res.Report == nil || res.Report.RecordKey != "-r" || !res.Report.Timestamp.Equal(now) {
		t.Fatalf("unexpected mapping: %+v", res)
	}

	anon := FromReportResult(usecase.ReportResult{Kind: entities.MediaKindVideo, OutputURL: "u"})
	if anon.Persisted || anon.Report != nil || anon.Kind != "video" {
		t.Fatalf("unexpected anonymous mapping: %+v", anon)
	}
}

func TestFromSession(t *testing.T) {
	login := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
	res := FromSession(entities.Session{Token: "tok", Identity: entities.Identity{Email: "a@x.com", LoginTime: login}})
	if res.Token != "tok" || res.Identity.Email != "a@x.com" || !res.Identity.LoginTime.Equal(login) {
		t.Fatalf("unexpected mapping: %+v", res)
	}
}
