package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"copytool-ai-api/internal/domain/entity"
	"copytool-ai-api/internal/domain/repository"
	"copytool-ai-api/internal/infrastructure/persistence/redis"
	pkgerrors "copytool-ai-api/pkg/errors"
)

// memBrandRepo 内存品牌仓储，记录 GetByID 调用次数
type memBrandRepo struct {
	brands  map[uuid.UUID]*entity.Brand
	getByID atomic.Int32
}

func newMemBrandRepo() *memBrandRepo {
	return &memBrandRepo{brands: make(map[uuid.UUID]*entity.Brand)}
}

func (m *memBrandRepo) Create(ctx context.Context, brand *entity.Brand) error {
	for _, existing := range m.brands {
		if existing.Slug == brand.Slug {
			return pkgerrors.New(pkgerrors.CodeConflict, "brand slug already exists")
		}
	}
	m.brands[brand.ID] = brand
	return nil
}

func (m *memBrandRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Brand, error) {
	m.getByID.Add(1)
	return m.brands[id], nil
}

func (m *memBrandRepo) GetBySlug(ctx context.Context, slug string) (*entity.Brand, error) {
	for _, brand := range m.brands {
		if brand.Slug == slug {
			return brand, nil
		}
	}
	return nil, nil
}

func (m *memBrandRepo) List(ctx context.Context, p repository.Pagination, activeOnly bool) (*repository.PagedResult[*entity.Brand], error) {
	var items []*entity.Brand
	for _, brand := range m.brands {
		if activeOnly && !brand.IsActive {
			continue
		}
		items = append(items, brand)
	}
	return repository.NewPagedResult(items, int64(len(items)), p), nil
}

func (m *memBrandRepo) Update(ctx context.Context, brand *entity.Brand) error {
	if _, ok := m.brands[brand.ID]; !ok {
		return pkgerrors.ErrBrandNotFound
	}
	m.brands[brand.ID] = brand
	return nil
}

func (m *memBrandRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(m.brands, id)
	return nil
}

type brandFixture struct {
	router *gin.Engine
	repo   *memBrandRepo
	h      *BrandHandler
	mr     *miniredis.Miniredis
}

func newBrandFixture(t *testing.T) *brandFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	cache := redis.NewCache(redis.NewClientFromRedis(rdb))

	repo := newMemBrandRepo()
	h := NewBrandHandler(repo, cache, time.Minute)

	engine := gin.New()
	engine.GET("/v1/brands", h.ListBrands)
	engine.POST("/v1/brands", h.CreateBrand)
	engine.GET("/v1/brands/:bid", h.GetBrand)
	engine.PUT("/v1/brands/:bid", h.UpdateBrand)
	engine.DELETE("/v1/brands/:bid", h.DeleteBrand)

	return &brandFixture{router: engine, repo: repo, h: h, mr: mr}
}

func TestBrandHandler_Create(t *testing.T) {
	fixture := newBrandFixture(t)

	payload := `{"name": "Acme Speelgoed", "description": "Speelgoedwinkel", "brand_guidelines": "Wees speels", "tone_of_voice": "Informeel"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/brands", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	fixture.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Data struct {
			ID       string `json:"id"`
			Slug     string `json:"slug"`
			IsActive bool   `json:"is_active"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "acme-speelgoed", resp.Data.Slug)
	assert.True(t, resp.Data.IsActive)
}

func TestBrandHandler_Create_Conflict(t *testing.T) {
	fixture := newBrandFixture(t)

	existing := entity.NewBrand("Acme", "", "", "")
	fixture.repo.brands[existing.ID] = existing

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/brands", strings.NewReader(`{"name": "Acme"}`))
	req.Header.Set("Content-Type", "application/json")
	fixture.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestBrandHandler_Get(t *testing.T) {
	fixture := newBrandFixture(t)

	brand := entity.NewBrand("Acme", "", "Wees speels", "")
	fixture.repo.brands[brand.ID] = brand

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/brands/"+brand.ID.String(), nil)
	fixture.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Name            string `json:"name"`
			BrandGuidelines string `json:"brand_guidelines"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Acme", resp.Data.Name)
	assert.Equal(t, "Wees speels", resp.Data.BrandGuidelines)
}

func TestBrandHandler_Get_NotFound(t *testing.T) {
	fixture := newBrandFixture(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/brands/"+uuid.NewString(), nil)
	fixture.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBrandHandler_Get_InvalidID(t *testing.T) {
	fixture := newBrandFixture(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/brands/niet-een-uuid", nil)
	fixture.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBrandHandler_ResolveBrand_CachesLookups(t *testing.T) {
	fixture := newBrandFixture(t)

	brand := entity.NewBrand("Acme", "", "", "")
	fixture.repo.brands[brand.ID] = brand

	ctx := context.Background()
	first, err := fixture.h.ResolveBrand(ctx, brand.ID)
	require.NoError(t, err)
	require.NotNil(t, first)

	second, err := fixture.h.ResolveBrand(ctx, brand.ID)
	require.NoError(t, err)
	require.NotNil(t, second)
	assert.Equal(t, first.Name, second.Name)

	// 第二次命中缓存，仓储只被读一次
	assert.Equal(t, int32(1), fixture.repo.getByID.Load())
}

func TestBrandHandler_Update_InvalidatesCache(t *testing.T) {
	fixture := newBrandFixture(t)

	brand := entity.NewBrand("Acme", "", "", "")
	fixture.repo.brands[brand.ID] = brand

	// 先通过 ResolveBrand 填充缓存
	_, err := fixture.h.ResolveBrand(context.Background(), brand.ID)
	require.NoError(t, err)
	assert.True(t, fixture.mr.Exists(redis.BrandKey(brand.ID)))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/v1/brands/"+brand.ID.String(),
		strings.NewReader(`{"name": "Acme Nieuw"}`))
	req.Header.Set("Content-Type", "application/json")
	fixture.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, fixture.mr.Exists(redis.BrandKey(brand.ID)))
	assert.Equal(t, "acme-nieuw", fixture.repo.brands[brand.ID].Slug)
}

func TestBrandHandler_Delete(t *testing.T) {
	fixture := newBrandFixture(t)

	brand := entity.NewBrand("Acme", "", "", "")
	fixture.repo.brands[brand.ID] = brand

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/v1/brands/"+brand.ID.String(), nil)
	fixture.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Nil(t, fixture.repo.brands[brand.ID])
}

func TestBrandHandler_Delete_NotFound(t *testing.T) {
	fixture := newBrandFixture(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/v1/brands/"+uuid.NewString(), nil)
	fixture.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBrandHandler_List(t *testing.T) {
	fixture := newBrandFixture(t)

	active := entity.NewBrand("Actief", "", "", "")
	inactive := entity.NewBrand("Inactief", "", "", "")
	inactive.IsActive = false
	fixture.repo.brands[active.ID] = active
	fixture.repo.brands[inactive.ID] = inactive

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/brands?active=true", nil)
	fixture.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []struct {
			Name string `json:"name"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Actief", resp.Data[0].Name)
}
