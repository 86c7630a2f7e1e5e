package routes

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/brightvault/rwa-console-backend/api/controllers"
	"github.com/brightvault/rwa-console-backend/internal/auth"
	"github.com/brightvault/rwa-console-backend/internal/documents"
	"github.com/brightvault/rwa-console-backend/internal/invitations"
	"github.com/brightvault/rwa-console-backend/internal/memberships"
	"github.com/brightvault/rwa-console-backend/internal/milestones"
	"github.com/brightvault/rwa-console-backend/internal/projects"
	"github.com/brightvault/rwa-console-backend/internal/tokens"
	pkgAuth "github.com/brightvault/rwa-console-backend/pkg/auth"
	"github.com/brightvault/rwa-console-backend/pkg/config"
	pkgerrors "github.com/brightvault/rwa-console-backend/pkg/errors"
	"github.com/brightvault/rwa-console-backend/pkg/logger"
	"github.com/brightvault/rwa-console-backend/pkg/metrics"
)

type stubPinger struct{}

func (stubPinger) Ping(context.Context) error {
	return nil
}

type stubSessionChecker struct{}

func (stubSessionChecker) HasSession(ctx context.Context, accessID string) (bool, error) {
	return true, nil
}

type stubAuthService struct{}

func (stubAuthService) Login(ctx context.Context, req auth.LoginRequest) (*auth.LoginResponse, error) {
	return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials")
}

func (stubAuthService) Logout(ctx context.Context, accessID string) error {
	return nil
}

type stubProjectService struct{}

func (stubProjectService) SaveBasics(ctx context.Context, userID, enterpriseID uuid.UUID, input projects.SaveBasicsInput) (*projects.ProjectDTO, error) {
	return &projects.ProjectDTO{ID: uuid.New()}, nil
}

func (stubProjectService) SaveBlockchain(ctx context.Context, userID, enterpriseID, projectID uuid.UUID, input projects.SaveBlockchainInput) (*projects.ProjectDTO, error) {
	return &projects.ProjectDTO{ID: projectID}, nil
}

func (stubProjectService) SaveAssetDetails(ctx context.Context, userID, enterpriseID, projectID uuid.UUID, input projects.SaveAssetDetailsInput) (*projects.ProjectDTO, error) {
	return &projects.ProjectDTO{ID: projectID}, nil
}

func (stubProjectService) SaveTokenSettings(ctx context.Context, userID, enterpriseID, projectID uuid.UUID, input projects.SaveTokenSettingsInput) (*projects.ProjectDTO, error) {
	return &projects.ProjectDTO{ID: projectID}, nil
}

func (stubProjectService) SaveRevenueModel(ctx context.Context, userID, enterpriseID, projectID uuid.UUID, input projects.SaveRevenueModelInput) (*projects.ProjectDTO, error) {
	return &projects.ProjectDTO{ID: projectID}, nil
}

func (stubProjectService) Finalize(ctx context.Context, userID, enterpriseID, projectID uuid.UUID) (*projects.ProjectDTO, error) {
	return &projects.ProjectDTO{ID: projectID}, nil
}

func (stubProjectService) Get(ctx context.Context, enterpriseID, projectID uuid.UUID) (*projects.ProjectDTO, error) {
	return &projects.ProjectDTO{ID: projectID}, nil
}

func (stubProjectService) List(ctx context.Context, enterpriseID uuid.UUID, input projects.ListInput) (*projects.ProjectListResult, error) {
	return &projects.ProjectListResult{Projects: []projects.ProjectDTO{}}, nil
}

func (stubProjectService) Delete(ctx context.Context, enterpriseID, projectID uuid.UUID) error {
	return nil
}

type stubDocumentService struct{}

func (stubDocumentService) Upload(ctx context.Context, userID, enterpriseID, projectID uuid.UUID, input documents.UploadInput) (*documents.DocumentDTO, error) {
	return &documents.DocumentDTO{ID: uuid.New()}, nil
}

func (stubDocumentService) List(ctx context.Context, enterpriseID, projectID uuid.UUID) ([]documents.DocumentDTO, error) {
	return nil, nil
}

func (stubDocumentService) Delete(ctx context.Context, enterpriseID, projectID, documentID uuid.UUID) error {
	return nil
}

type stubTokenService struct{}

func (stubTokenService) Upsert(ctx context.Context, enterpriseID, projectID uuid.UUID, input tokens.UpsertInput) (*tokens.TokenDTO, error) {
	return &tokens.TokenDTO{ID: uuid.New()}, nil
}

func (stubTokenService) List(ctx context.Context, enterpriseID, projectID uuid.UUID) ([]tokens.TokenDTO, error) {
	return nil, nil
}

type stubInvitationService struct{}

func (stubInvitationService) Create(ctx context.Context, enterpriseID uuid.UUID, input invitations.CreateInput) (*invitations.InvitationDTO, error) {
	return &invitations.InvitationDTO{ID: uuid.New()}, nil
}

func (stubInvitationService) List(ctx context.Context, enterpriseID, projectID uuid.UUID) ([]invitations.InvitationDTO, error) {
	return nil, nil
}

func (stubInvitationService) Accept(ctx context.Context, userID, enterpriseID uuid.UUID, userEmail string, invitationID uuid.UUID) (*invitations.InvitationDTO, error) {
	return &invitations.InvitationDTO{ID: invitationID}, nil
}

type stubMembershipService struct{}

func (stubMembershipService) ListMembers(ctx context.Context, enterpriseID, projectID uuid.UUID) ([]memberships.MemberWithUser, error) {
	return nil, nil
}

func (stubMembershipService) AddMember(ctx context.Context, enterpriseID, projectID uuid.UUID, input memberships.AddMemberInput) error {
	return nil
}

type stubMilestoneService struct{}

func (stubMilestoneService) List(ctx context.Context, enterpriseID, projectID uuid.UUID) ([]milestones.MilestoneDTO, error) {
	return nil, nil
}

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Env: "test", Port: "0"},
		JWT: config.JWTConfig{
			Secret:            "secret",
			Issuer:            "issuer",
			ExpirationMinutes: 60,
			SessionTTLMinutes: 120,
		},
	}
}

func newTestRouter(cfg *config.Config) http.Handler {
	logg := logger.New(logger.Options{ServiceName: "test-routing", Level: logger.ParseLevel("debug"), Output: io.Discard})
	registry := prometheus.NewRegistry()
	return NewRouter(Deps{
		Config:            cfg,
		Logger:            logg,
		Sessions:          stubSessionChecker{},
		Pingers:           map[string]controllers.Pinger{"db": stubPinger{}},
		MetricsRegistry:   registry,
		HTTPMetrics:       metrics.NewHTTPMetrics(registry),
		AuthService:       stubAuthService{},
		ProjectService:    stubProjectService{},
		DocumentService:   stubDocumentService{},
		TokenService:      stubTokenService{},
		InvitationService: stubInvitationService{},
		MembershipService: stubMembershipService{},
		MilestoneService:  stubMilestoneService{},
	})
}

func buildToken(t *testing.T, cfg *config.Config) string {
	t.Helper()
	token, err := pkgAuth.MintAccessToken(cfg.JWT, time.Now(), pkgAuth.AccessTokenPayload{
		UserID:       uuid.New(),
		EnterpriseID: uuid.New(),
		Email:        "issuer@example.com",
		JTI:          uuid.NewString(),
	})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	return token
}

func TestHealthLiveIsPublic(t *testing.T) {
	router := newTestRouter(testConfig())
	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for liveness got %d", resp.Code)
	}
}

func TestHealthReadyChecksPingers(t *testing.T) {
	router := newTestRouter(testConfig())
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for readiness got %d", resp.Code)
	}
}

func TestMetricsEndpointExposed(t *testing.T) {
	router := newTestRouter(testConfig())
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for metrics got %d", resp.Code)
	}
}

func TestProjectRoutesRejectMissingJWT(t *testing.T) {
	router := newTestRouter(testConfig())
	req := httptest.NewRequest(http.MethodGet, "/api/v1/projects", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token got %d", resp.Code)
	}
}

func TestProjectRoutesSucceedWithJWT(t *testing.T) {
	cfg := testConfig()
	router := newTestRouter(cfg)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/projects", nil)
	req.Header.Set("Authorization", "Bearer "+buildToken(t, cfg))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for project list got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestWizardStepRouteReachable(t *testing.T) {
	cfg := testConfig()
	router := newTestRouter(cfg)
	body := strings.NewReader(`{"wallet_address":"0x1111111111111111111111111111111111111111","network":"Ethereum"}`)
	req := httptest.NewRequest(http.MethodPut, "/api/v1/projects/"+uuid.NewString()+"/step2", body)
	req.Header.Set("Authorization", "Bearer "+buildToken(t, cfg))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for step2 got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestLoginRejectsMalformedBody(t *testing.T) {
	router := newTestRouter(testConfig())
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(`{"email":`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed login got %d", resp.Code)
	}
}

func TestInvitationListRequiresProjectID(t *testing.T) {
	cfg := testConfig()
	router := newTestRouter(cfg)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/invitations", nil)
	req.Header.Set("Authorization", "Bearer "+buildToken(t, cfg))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without project_id got %d", resp.Code)
	}
}
