package controller_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"

	"pricebook-be/internal/controller"
	"pricebook-be/internal/dto"
	"pricebook-be/internal/pkg/serverutils"
	"pricebook-be/internal/repository/unitofwork"
	"pricebook-be/internal/service"
	"pricebook-be/pkg/database"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGroupApp(t *testing.T) *fiber.App {
	t.Helper()
	db, err := database.NewSqliteDB(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	svc := service.NewGroupService(unitofwork.NewRepositoryFactory(db))

	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	controller.NewGroupController(svc).RegisterRoutes(app.Group("/api"))
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) (*http.Response, []byte) {
	t.Helper()
	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, path, reqBody)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	return resp, raw
}

func TestGroupEndpoints(t *testing.T) {
	app := newGroupApp(t)

	// Create
	resp, raw := doJSON(t, app, http.MethodPost, "/api/group/v1", dto.CreateGroupRequest{Name: "Spirits"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode, string(raw))
	var created dto.GroupResponse
	require.NoError(t, json.Unmarshal(raw, &created))
	assert.Equal(t, "Spirits", created.Name)

	// Duplicate name is a 400
	resp, raw = doJSON(t, app, http.MethodPost, "/api/group/v1", dto.CreateGroupRequest{Name: "Spirits"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, string(raw))

	// Missing name fails validation
	resp, _ = doJSON(t, app, http.MethodPost, "/api/group/v1", fiber.Map{})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// Show
	resp, raw = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/group/v1/%s", created.Id), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var shown dto.GroupResponse
	require.NoError(t, json.Unmarshal(raw, &shown))
	assert.Equal(t, created.Id, shown.Id)

	// Malformed id
	resp, raw = doJSON(t, app, http.MethodGet, "/api/group/v1/not-a-uuid", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(raw), "invalid group id")

	// Membership
	resp, _ = doJSON(t, app, http.MethodPost, "/api/group/v1/items",
		dto.AddGroupItemRequest{GroupId: created.Id, ItemId: "77"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, raw = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/group/v1/%s/items", created.Id), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var items []string
	require.NoError(t, json.Unmarshal(raw, &items))
	assert.Equal(t, []string{"77"}, items)

	// Delete always answers 200, gone or not
	resp, _ = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/group/v1/%s", created.Id), nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp, _ = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/group/v1/%s", created.Id), nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// And the group is now a 404
	resp, _ = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/group/v1/%s", created.Id), nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
