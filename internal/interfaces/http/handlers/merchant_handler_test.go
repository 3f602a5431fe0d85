package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"merchant-portal.backend/internal/domain/entities"
	domainerrors "merchant-portal.backend/internal/domain/errors"
	"merchant-portal.backend/internal/interfaces/http/middleware"
	"merchant-portal.backend/internal/usecases"
	"merchant-portal.backend/pkg/logger"
	"merchant-portal.backend/pkg/utils"
)

func TestMain(m *testing.M) {
	logger.Init("development")
	m.Run()
}

// merchantRepoStub is an in-memory MerchantRecordRepository for handler tests.
type merchantRepoStub struct {
	records  map[uuid.UUID]*entities.MerchantRecord
	infos    map[uuid.UUID]*entities.BusinessInfo
	licenses map[uuid.UUID]*entities.BusinessLicense
	locs     map[uuid.UUID][]*entities.LocationInfo
	owners   map[uuid.UUID][]*entities.BusinessOwner
	contacts map[uuid.UUID][]*entities.ContactPerson
}

func newMerchantRepoStub() *merchantRepoStub {
	return &merchantRepoStub{
		records:  map[uuid.UUID]*entities.MerchantRecord{},
		infos:    map[uuid.UUID]*entities.BusinessInfo{},
		licenses: map[uuid.UUID]*entities.BusinessLicense{},
		locs:     map[uuid.UUID][]*entities.LocationInfo{},
		owners:   map[uuid.UUID][]*entities.BusinessOwner{},
		contacts: map[uuid.UUID][]*entities.ContactPerson{},
	}
}

func (s *merchantRepoStub) CreateRecord(_ context.Context, record *entities.MerchantRecord) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	record.RegistrationStatus = entities.RegistrationStatusDraft
	record.CreatedAt = time.Now()
	record.UpdatedAt = record.CreatedAt
	s.records[record.ID] = record
	return nil
}

func (s *merchantRepoStub) GetRecord(_ context.Context, id uuid.UUID) (*entities.MerchantRecord, error) {
	record, ok := s.records[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	copied := *record
	return &copied, nil
}

func (s *merchantRepoStub) GetAggregate(ctx context.Context, id uuid.UUID) (*entities.MerchantAggregate, error) {
	record, err := s.GetRecord(ctx, id)
	if err != nil {
		return nil, err
	}
	return &entities.MerchantAggregate{
		Record:       record,
		BusinessInfo: s.infos[id],
		License:      s.licenses[id],
		Locations:    s.locs[id],
		Owners:       s.owners[id],
		Contacts:     s.contacts[id],
	}, nil
}

func (s *merchantRepoStub) List(_ context.Context, status *entities.RegistrationStatus, _ utils.PaginationParams) ([]*entities.MerchantRecord, int64, error) {
	var out []*entities.MerchantRecord
	for _, r := range s.records {
		if status == nil || r.RegistrationStatus == *status {
			out = append(out, r)
		}
	}
	return out, int64(len(out)), nil
}

func (s *merchantRepoStub) UpsertBusinessInfo(_ context.Context, info *entities.BusinessInfo) error {
	s.infos[info.MerchantID] = info
	return nil
}

func (s *merchantRepoStub) UpsertLicense(_ context.Context, license *entities.BusinessLicense) error {
	s.licenses[license.MerchantID] = license
	return nil
}

func (s *merchantRepoStub) UpsertLocation(_ context.Context, location *entities.LocationInfo) error {
	s.locs[location.MerchantID] = []*entities.LocationInfo{location}
	return nil
}

func (s *merchantRepoStub) UpsertOwner(_ context.Context, owner *entities.BusinessOwner) error {
	s.owners[owner.MerchantID] = []*entities.BusinessOwner{owner}
	return nil
}

func (s *merchantRepoStub) UpsertContact(_ context.Context, contact *entities.ContactPerson) error {
	s.contacts[contact.MerchantID] = []*entities.ContactPerson{contact}
	return nil
}

func (s *merchantRepoStub) UpdateStatusGuarded(
	_ context.Context,
	id uuid.UUID,
	expected, next entities.RegistrationStatus,
	reason null.String,
	checkedBy uuid.NullUUID,
) error {
	record, ok := s.records[id]
	if !ok {
		return domainerrors.ErrNotFound
	}
	if record.RegistrationStatus != expected {
		return domainerrors.ErrConcurrencyConflict
	}
	record.RegistrationStatus = next
	record.RegistrationStatusReason = reason
	record.CheckedByID = checkedBy
	record.UpdatedAt = time.Now()
	return nil
}

func (s *merchantRepoStub) CountInReviewBefore(context.Context, time.Time) (int64, error) {
	return 0, nil
}

type uowStub struct{}

func (uowStub) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type auditStub struct {
	events []*entities.AuditEvent
}

func (s *auditStub) Record(_ context.Context, event *entities.AuditEvent) error {
	s.events = append(s.events, event)
	return nil
}

func withActorOf(actor *entities.Actor) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ActorKey, actor)
		c.Next()
	}
}

func makerActor() *entities.Actor {
	return &entities.Actor{
		ID:          uuid.New(),
		Email:       "maker@portal.io",
		Permissions: entities.RolePermissions(entities.RoleOperator),
	}
}

func newMerchantRouter(repo *merchantRepoStub, actor *entities.Actor) *gin.Engine {
	uc := usecases.NewRegistrationUsecase(repo, uowStub{}, &auditStub{})
	h := NewMerchantHandler(uc)

	r := gin.New()
	r.Use(withActorOf(actor))
	r.POST("/merchants", h.CreateDraft)
	r.PUT("/merchants/:id/business", h.SaveBusinessInfo)
	r.PUT("/merchants/:id/location", h.SaveLocation)
	r.PUT("/merchants/:id/owner", h.SaveOwner)
	r.PUT("/merchants/:id/contact", h.SaveContact)
	r.POST("/merchants/:id/submit", h.Submit)
	r.GET("/merchants/:id", h.Get)
	r.GET("/merchants", h.List)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestMerchantHandler_WizardAndSubmit_Success(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo := newMerchantRepoStub()
	r := newMerchantRouter(repo, makerActor())

	w := doJSON(t, r, http.MethodPost, "/merchants", "")
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
	}

	var created entities.MerchantAggregate
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("unmarshal draft: %v", err)
	}
	if created.Record.RegistrationStatus != entities.RegistrationStatusDraft {
		t.Fatalf("expected draft status, got %s", created.Record.RegistrationStatus)
	}
	id := created.Record.ID.String()

	steps := []struct {
		path string
		body string
	}{
		{"/business", `{"businessName":"Warung Sukses","currency":"IDR"}`},
		{"/location", `{"locationType":"physical","address":"Jalan Mawar 1","city":"Jakarta","country":"ID"}`},
		{"/owner", `{"name":"Ibu Siti","identificationType":"ktp","identificationNumber":"317012345","phoneNumber":"+62811111111"}`},
		{"/contact", `{"name":"Pak Budi","phoneNumber":"+62822222222"}`},
	}
	for _, step := range steps {
		w = doJSON(t, r, http.MethodPut, "/merchants/"+id+step.path, step.body)
		if w.Code != http.StatusOK {
			t.Fatalf("step %s: expected 200, got %d body=%s", step.path, w.Code, w.Body.String())
		}
	}

	w = doJSON(t, r, http.MethodPost, "/merchants/"+id+"/submit", "")
	if w.Code != http.StatusOK {
		t.Fatalf("submit: expected 200, got %d body=%s", w.Code, w.Body.String())
	}
	var submitted entities.MerchantRecord
	if err := json.Unmarshal(w.Body.Bytes(), &submitted); err != nil {
		t.Fatalf("unmarshal submitted record: %v", err)
	}
	if submitted.RegistrationStatus != entities.RegistrationStatusReview {
		t.Fatalf("expected review status, got %s", submitted.RegistrationStatus)
	}
}

func TestMerchantHandler_Submit_IncompleteDraft(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo := newMerchantRepoStub()
	r := newMerchantRouter(repo, makerActor())

	w := doJSON(t, r, http.MethodPost, "/merchants", "")
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	var created entities.MerchantAggregate
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("unmarshal draft: %v", err)
	}

	w = doJSON(t, r, http.MethodPost, "/merchants/"+created.Record.ID.String()+"/submit", "")
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d body=%s", w.Code, w.Body.String())
	}
	if !bytes.Contains(w.Body.Bytes(), []byte("missingSteps")) {
		t.Fatalf("expected missing steps in body: %s", w.Body.String())
	}
}

func TestMerchantHandler_SaveBusinessInfo_ForeignDraft(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo := newMerchantRepoStub()
	otherMaker := uuid.New()
	id := uuid.New()
	repo.records[id] = &entities.MerchantRecord{
		ID:                 id,
		RegistrationStatus: entities.RegistrationStatusDraft,
		MakerID:            otherMaker,
	}
	r := newMerchantRouter(repo, makerActor())

	w := doJSON(t, r, http.MethodPut, "/merchants/"+id.String()+"/business",
		`{"businessName":"Warung Sukses","currency":"IDR"}`)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestMerchantHandler_Get_InvalidAndMissingID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo := newMerchantRepoStub()
	r := newMerchantRouter(repo, makerActor())

	w := doJSON(t, r, http.MethodGet, "/merchants/not-a-uuid", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, "/merchants/"+uuid.NewString(), "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestMerchantHandler_List_StatusFilter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo := newMerchantRepoStub()
	id := uuid.New()
	repo.records[id] = &entities.MerchantRecord{
		ID:                 id,
		RegistrationStatus: entities.RegistrationStatusReview,
		MakerID:            uuid.New(),
	}
	r := newMerchantRouter(repo, makerActor())

	w := doJSON(t, r, http.MethodGet, "/merchants?status=review", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}
	if !bytes.Contains(w.Body.Bytes(), []byte(`"totalCount":1`)) {
		t.Fatalf("unexpected list body: %s", w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/merchants?status=bogus", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown status, got %d", w.Code)
	}
}
