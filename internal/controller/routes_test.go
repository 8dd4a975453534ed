package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/anthonypiegaro/OA-Reporting-Backend/internal/db"
	"github.com/anthonypiegaro/OA-Reporting-Backend/internal/model"
	"github.com/anthonypiegaro/OA-Reporting-Backend/internal/repository"
	"github.com/anthonypiegaro/OA-Reporting-Backend/internal/service"
	"github.com/anthonypiegaro/OA-Reporting-Backend/utilities"
)

type apiFixture struct {
	router    *gin.Engine
	conn      *gorm.DB
	template  model.ReportTemplate
	broadJump model.Assessment
}

// newAPIFixture wires the full router against an in-memory database, with
// the JWT middleware in place, the way main assembles it.
func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(conn))

	userRepo := repository.NewUserRepository(conn)
	templateRepo := repository.NewTemplateRepository(conn)
	assessmentRepo := repository.NewAssessmentRepository(conn)
	reportRepo := repository.NewReportRepository(conn)
	pitchRepo := repository.NewPitchRepository(conn)

	f := &apiFixture{conn: conn}

	inches := "in"
	f.broadJump = model.Assessment{
		Name: "Broad Jump", Kind: model.KindQuantitative, Unit: &inches,
		QuantitativeDetail: &model.QuantitativeDetail{PassingScore: 115, PassingCondition: model.CondGte},
	}
	require.NoError(t, assessmentRepo.CreateAssessment(&f.broadJump))

	f.template = model.ReportTemplate{Name: "Physical Report"}
	require.NoError(t, templateRepo.CreateTemplate(&f.template))
	require.NoError(t, templateRepo.AddAssessment(f.template.ID, f.broadJump.ID, 1))

	r := gin.New()
	r.Use(utilities.AuthMiddleware())
	RegisterRoutes(r,
		service.NewAuthService(userRepo),
		service.NewUserService(userRepo),
		service.NewAssessmentService(assessmentRepo, templateRepo),
		service.NewReportService(conn, userRepo, templateRepo, assessmentRepo, reportRepo),
		service.NewPitchService(conn, userRepo, pitchRepo),
		service.NewExportService(t.TempDir()),
	)
	f.router = r
	return f
}

func (f *apiFixture) do(t *testing.T, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

// registerAndLogin creates an account and returns its access token and id.
// Staff status cannot be requested at registration, so staff accounts are
// promoted directly on the user record, the way an administrator would.
func (f *apiFixture) registerAndLogin(t *testing.T, email string, staff bool) (string, uint) {
	t.Helper()
	payload := fmt.Sprintf(`{"email": %q, "password": "hunter22", "first_name": "Test", "last_name": "User"}`, email)
	w := f.do(t, http.MethodPost, "/auth/register", "", payload)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	if staff {
		require.NoError(t, f.conn.Model(&model.User{}).
			Where("email = ?", email).
			Update("is_staff", true).Error)
	}

	w = f.do(t, http.MethodPost, "/auth/login", "", fmt.Sprintf(`{"email": %q, "password": "hunter22"}`, email))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		AccessToken string     `json:"access_token"`
		User        model.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.AccessToken, resp.User.ID
}

func TestRoutesRequireAuthentication(t *testing.T) {
	f := newAPIFixture(t)

	w := f.do(t, http.MethodGet, "/assessments", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = f.do(t, http.MethodGet, "/assessments", "garbage-token", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestBuildAndViewReportOverHTTP(t *testing.T) {
	f := newAPIFixture(t)
	token, _ := f.registerAndLogin(t, "jordan@example.com", false)

	body := fmt.Sprintf(`{
		"templateId": %d,
		"date": "2026-03-14",
		"assessments": {
			"field_1": {"id": %d, "type": "quantitative", "value": "117.5"}
		}
	}`, f.template.ID, f.broadJump.ID)
	w := f.do(t, http.MethodPost, "/build-report", token, body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = f.do(t, http.MethodGet, fmt.Sprintf("/user-report/%d/2026-03-14", f.template.ID), token, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var views []service.AssessmentView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &views))
	require.Len(t, views, 1)
	assert.Equal(t, "Broad Jump", views[0].Name)
	assert.True(t, views[0].Passed)
}

func TestBuildReportRejectsUnknownAssessmentType(t *testing.T) {
	f := newAPIFixture(t)
	token, _ := f.registerAndLogin(t, "jordan@example.com", false)

	body := fmt.Sprintf(`{
		"templateId": %d,
		"date": "2026-03-14",
		"assessments": {
			"field_1": {"id": %d, "type": "freeform", "value": "x"}
		}
	}`, f.template.ID, f.broadJump.ID)
	w := f.do(t, http.MethodPost, "/build-report", token, body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAthleteCannotBuildForAnotherUser(t *testing.T) {
	f := newAPIFixture(t)
	token, _ := f.registerAndLogin(t, "jordan@example.com", false)
	_, otherID := f.registerAndLogin(t, "sam@example.com", false)

	body := fmt.Sprintf(`{
		"userId": %d,
		"templateId": %d,
		"date": "2026-03-14",
		"assessments": {
			"field_1": {"id": %d, "type": "quantitative", "value": "117.5"}
		}
	}`, otherID, f.template.ID, f.broadJump.ID)
	w := f.do(t, http.MethodPost, "/build-report", token, body)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRegistrationCannotSelfGrantStaff(t *testing.T) {
	f := newAPIFixture(t)

	// A staff flag in the registration payload must be ignored end to end:
	// the issued token carries no staff claim and trainer endpoints stay
	// closed.
	payload := `{"email": "sneaky@example.com", "password": "hunter22", "is_staff": true}`
	w := f.do(t, http.MethodPost, "/auth/register", "", payload)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = f.do(t, http.MethodPost, "/auth/login", "", `{"email": "sneaky@example.com", "password": "hunter22"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		AccessToken string     `json:"access_token"`
		User        model.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.User.IsStaff)

	path := fmt.Sprintf("/trainer-user-report/%d/%d/2026-03-14", resp.User.ID, f.template.ID)
	w = f.do(t, http.MethodGet, path, resp.AccessToken, "")
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = f.do(t, http.MethodPost, "/pitch-arsenal/build-report", resp.AccessToken, `{}`)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestTrainerEndpointsRequireStaff(t *testing.T) {
	f := newAPIFixture(t)
	athleteToken, athleteID := f.registerAndLogin(t, "jordan@example.com", false)
	staffToken, _ := f.registerAndLogin(t, "coach@example.com", true)

	path := fmt.Sprintf("/trainer-user-report/%d/%d/2026-03-14", athleteID, f.template.ID)

	w := f.do(t, http.MethodGet, path, athleteToken, "")
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Staff get through the guard; there is no report yet, so 404.
	w = f.do(t, http.MethodGet, path, staffToken, "")
	assert.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
}

func TestReportViewNotFoundOverHTTP(t *testing.T) {
	f := newAPIFixture(t)
	token, _ := f.registerAndLogin(t, "jordan@example.com", false)

	w := f.do(t, http.MethodGet, fmt.Sprintf("/user-report/%d/2026-03-14", f.template.ID), token, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
