package handlers

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func queryContext(rawQuery string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/api/audit-logs?"+rawQuery, nil)
	return c
}

func TestParseAuditLogQuery(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantPage  int
		wantLimit int
	}{
		{"defaults", "", 1, 50},
		{"explicit", "page=3&limit=20", 3, 20},
		{"limit too large", "limit=500", 1, 50},
		{"negative page", "page=-2", 1, 50},
		{"garbage", "page=x&limit=y", 1, 50},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			q := parseAuditLogQuery(queryContext(tc.query))
			if q.Page != tc.wantPage || q.Limit != tc.wantLimit {
				t.Fatalf("expected page %d limit %d, got %d/%d", tc.wantPage, tc.wantLimit, q.Page, q.Limit)
			}
		})
	}
}

func TestParseAuditLogQueryFilters(t *testing.T) {
	q := parseAuditLogQuery(queryContext("action=appointment_booked&entity=appointment&actor_id=7&from=2023-06-12&to=2023-06-12&entity_id=appt-1"))

	if q.Action != "appointment_booked" || q.Entity != "appointment" || q.EntityID != "appt-1" || q.ActorID != 7 {
		t.Fatalf("unexpected filters %+v", q)
	}
	if q.From == nil || !q.From.Equal(time.Date(2023, 6, 12, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected from %v", q.From)
	}
	// to is inclusive of the whole day.
	if q.To == nil || !q.To.Equal(time.Date(2023, 6, 13, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected to %v", q.To)
	}

	q = parseAuditLogQuery(queryContext("from=yesterday"))
	if q.From != nil {
		t.Fatalf("malformed from must be ignored, got %v", q.From)
	}
}

func TestCalendarDefaultsToToday(t *testing.T) {
	cal := Calendar{
		Timezone: "America/Sao_Paulo",
		Now:      func() time.Time { return time.Date(2023, 6, 13, 2, 0, 0, 0, time.UTC) },
	}
	if got := cal.dateQuery(queryContext("")); got != "2023-06-12" {
		t.Fatalf("expected the shop's local date, got %s", got)
	}
	if got := cal.dateQuery(queryContext("date=2024-01-01")); got != "2024-01-01" {
		t.Fatalf("expected explicit date, got %s", got)
	}
}
