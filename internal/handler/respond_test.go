package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"project-hub/internal/api"
	"project-hub/internal/apperr"
	"project-hub/internal/store"
	"project-hub/internal/validation"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func newJSONContext(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRespondError(t *testing.T) {
	cases := []struct {
		err    error
		status int
		body   string
	}{
		{apperr.Unauthorized(), http.StatusUnauthorized, `{"message":"Unauthorized"}`},
		{apperr.Forbidden(), http.StatusForbidden, `{"message":"Forbidden"}`},
		{apperr.NotFound("Task"), http.StatusNotFound, `{"message":"Task not found"}`},
		{apperr.Validation("title", "is required"), http.StatusBadRequest, `{"message":"title: is required"}`},
		{apperr.ExternalService(errors.New("quota")), http.StatusInternalServerError, `{"message":"Failed to generate suggestions"}`},
		{fmt.Errorf("wrapped: %w", apperr.Forbidden()), http.StatusForbidden, `{"message":"Forbidden"}`},
		{errors.New("secret detail"), http.StatusInternalServerError, `{"message":"Internal server error"}`},
	}
	e := echo.New()
	for _, tc := range cases {
		ctx, rec := newJSONContext(e, "")
		require.NoError(t, RespondError(ctx, tc.err))
		require.Equal(t, tc.status, rec.Code)
		require.JSONEq(t, tc.body, rec.Body.String())
		require.NotContains(t, rec.Body.String(), "secret detail")
	}
}

func TestBind(t *testing.T) {
	e := echo.New()
	e.Validator = validation.New()

	ctx, _ := newJSONContext(e, `{"title":`)
	var req api.CreateProjectRequest
	err := Bind(ctx, &req)
	require.Equal(t, "invalid request body", apperr.As(err).Message)
	require.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	ctx, _ = newJSONContext(e, `{"title":"T"}`)
	err = Bind(ctx, &req)
	require.Equal(t, "description", apperr.As(err).Field)

	ctx, _ = newJSONContext(e, `{"title":"T","description":"D"}`)
	require.NoError(t, Bind(ctx, &req))
	require.Equal(t, "T", req.Title)

	// 先去除空白再驗證
	ctx, _ = newJSONContext(e, `{"title":"   ","description":"D"}`)
	req = api.CreateProjectRequest{}
	err = Bind(ctx, &req)
	require.Equal(t, "title: is required", apperr.As(err).Message)

	ctx, _ = newJSONContext(e, `{"name":" a ","email":" A@B.co ","password":"secret1"}`)
	var reg api.RegisterRequest
	err = Bind(ctx, &reg)
	require.Equal(t, "name: must be at least 2 characters", apperr.As(err).Message)
	require.Equal(t, "a@b.co", reg.Email)

	// no validator registered
	ctx, _ = newJSONContext(echo.New(), `{}`)
	err = Bind(ctx, &req)
	require.Equal(t, apperr.KindInternal, apperr.KindOf(err))
}

func TestStoreError(t *testing.T) {
	err := StoreError("Project", fmt.Errorf("GetProjectByID: %w", store.ErrNotFound))
	require.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	require.Equal(t, "Project not found", apperr.As(err).Message)

	err = StoreError("Project", errors.New("conn"))
	require.Equal(t, apperr.KindInternal, apperr.KindOf(err))
}
