package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wamalwa/event-ticketing-registry/internal/handler"
	"github.com/wamalwa/event-ticketing-registry/internal/middleware"
	"github.com/wamalwa/event-ticketing-registry/internal/model"
	"github.com/wamalwa/event-ticketing-registry/internal/router"
	"github.com/wamalwa/event-ticketing-registry/internal/service"
	"github.com/wamalwa/event-ticketing-registry/internal/store"
	"github.com/wamalwa/event-ticketing-registry/internal/utils"
)

const testSecret = "test-secret"

// newTestServer wires the full HTTP surface against in-memory stores,
// through the same route registration the server uses.
func newTestServer() *echo.Echo {
	events := store.NewMemoryStore[model.Event]()
	tickets := store.NewMemoryStore[model.Ticket]()
	users := store.NewMemoryStore[model.User]()
	members := store.NewMemoryStore[model.Member]()
	contributions := store.NewMemoryStore[model.Contribution]()

	eventSvc := service.NewEventService(events)
	userSvc := service.NewUserService(users)
	ticketSvc := service.NewTicketService(tickets, events, users, &store.MemoryRunner{})
	memberSvc := service.NewMemberService(members)
	contributionSvc := service.NewContributionService(contributions, members)
	investmentSvc := service.NewInvestmentService(store.NewMemoryStore[model.Investment]())
	groupSvc := service.NewGroupService(store.NewMemoryStore[model.Group]())

	e := echo.New()
	e.Use(middleware.CallerPrincipal(testSecret))

	router.Register(e, router.Handlers{
		Health:       handler.NewHealthHandler(nil),
		Auth:         handler.NewAuthHandler(testSecret, time.Hour),
		Event:        handler.NewEventHandler(eventSvc),
		Ticket:       handler.NewTicketHandler(ticketSvc, nil),
		User:         handler.NewUserHandler(userSvc, ticketSvc),
		Member:       handler.NewMemberHandler(memberSvc, contributionSvc),
		Contribution: handler.NewContributionHandler(contributionSvc),
		Investment:   handler.NewInvestmentHandler(investmentSvc),
		Group:        handler.NewGroupHandler(groupSvc),
	})
	return e
}

func doJSON(t *testing.T, e *echo.Echo, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestCreateEventRecordsSellerFromToken(t *testing.T) {
	e := newTestServer()

	token, err := utils.NewAccessToken(testSecret, "seller-42", time.Hour)
	require.NoError(t, err)

	rec := doJSON(t, e, http.MethodPost, "/v1/events",
		`{"title":"Food Fest","location":"Nairobi","maxSlots":100}`, token)
	require.Equal(t, http.StatusCreated, rec.Code)

	var ev model.Event
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ev))
	assert.NotEmpty(t, ev.ID)
	assert.Equal(t, "Food Fest", ev.Title)
	assert.Equal(t, "seller-42", ev.Seller)
	assert.Equal(t, uint64(0), ev.ReservedAmount)
}

func TestCreateEventWithoutTokenIsGuest(t *testing.T) {
	e := newTestServer()

	rec := doJSON(t, e, http.MethodPost, "/v1/events", `{"title":"Food Fest"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	var ev model.Event
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ev))
	assert.Equal(t, "guest", ev.Seller)
}

func TestGetEventNotFoundEnvelope(t *testing.T) {
	e := newTestServer()

	rec := doJSON(t, e, http.MethodGet, "/v1/events/ghost", "", "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	var body struct {
		Error struct {
			Kind    string `json:"kind"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "NotFound", body.Error.Kind)
	assert.Equal(t, "event with id=ghost not found", body.Error.Message)
}

func TestCreateMemberValidationEnvelope(t *testing.T) {
	e := newTestServer()

	rec := doJSON(t, e, http.MethodPost, "/v1/members", `{"phone":"0700000000"}`, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Error struct {
			Kind    string `json:"kind"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "InvalidPayload", body.Error.Kind)
	assert.Equal(t, "missing required fields: name, email", body.Error.Message)
}

func TestTicketFlowOverHTTP(t *testing.T) {
	e := newTestServer()

	rec := doJSON(t, e, http.MethodPost, "/v1/events", `{"title":"Food Fest","maxSlots":2}`, "")
	require.Equal(t, http.StatusCreated, rec.Code)
	var ev model.Event
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ev))

	rec = doJSON(t, e, http.MethodPost, "/v1/users", `{"name":"Alice","email":"alice@example.com"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code)
	var u model.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &u))

	rec = doJSON(t, e, http.MethodPost, "/v1/tickets",
		`{"eventId":"`+ev.ID+`","userId":"`+u.ID+`"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code)
	var detail model.TicketDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	assert.Equal(t, "Food Fest", detail.EventName)
	assert.Equal(t, "Alice", detail.UserName)

	// The ticket shows up on both join listings.
	rec = doJSON(t, e, http.MethodGet, "/v1/events/"+ev.ID+"/tickets", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var byEvent []model.TicketDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &byEvent))
	require.Len(t, byEvent, 1)
	assert.Equal(t, detail.ID, byEvent[0].ID)

	rec = doJSON(t, e, http.MethodGet, "/v1/users/"+u.ID+"/tickets", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var byUser []model.TicketDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &byUser))
	require.Len(t, byUser, 1)
}

func TestCreateTicketUnknownRefs(t *testing.T) {
	e := newTestServer()

	rec := doJSON(t, e, http.MethodPost, "/v1/tickets", `{"eventId":"e1","userId":"u1"}`, "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "user=u1 not found")
}

func TestAuthTokenMintAndUse(t *testing.T) {
	e := newTestServer()

	rec := doJSON(t, e, http.MethodPost, "/v1/auth/token", `{"principal":"dev-1"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Token     string `json:"token"`
		ExpiresIn int    `json:"expires_in"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, 3600, resp.ExpiresIn)

	rec = doJSON(t, e, http.MethodPost, "/v1/events", `{"title":"x"}`, resp.Token)
	require.Equal(t, http.StatusCreated, rec.Code)
	var ev model.Event
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ev))
	assert.Equal(t, "dev-1", ev.Seller)
}

func TestAuthTokenRequiresPrincipal(t *testing.T) {
	e := newTestServer()
	rec := doJSON(t, e, http.MethodPost, "/v1/auth/token", `{}`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestInvalidBearerTokenRejected(t *testing.T) {
	e := newTestServer()
	rec := doJSON(t, e, http.MethodPost, "/v1/events", `{"title":"x"}`, "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
