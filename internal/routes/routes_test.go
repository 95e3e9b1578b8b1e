package routes_test

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/01moynul/poi-geojson/internal/handlers"
	"github.com/01moynul/poi-geojson/internal/logging"
	"github.com/01moynul/poi-geojson/internal/middleware"
	"github.com/01moynul/poi-geojson/internal/pois"
	"github.com/01moynul/poi-geojson/internal/routes"
)

var _ = Describe("SetupRouter", func() {
	var (
		tempDir string
		h       *handlers.Handlers
		router  *gin.Engine
	)

	BeforeEach(func() {
		logging.Init(logging.Config{Level: "error", Format: "json", Output: GinkgoWriter})

		var err error
		tempDir, err = os.MkdirTemp("", "poi-routes-*")
		Expect(err).NotTo(HaveOccurred())
		cnfPath := filepath.Join(tempDir, "crawler.my.cnf")
		Expect(os.WriteFile(cnfPath, []byte("[client]\ndatabase = pois\n"), 0600)).To(Succeed())

		h = &handlers.Handlers{
			ClientConfigPath: cnfPath,
			OpenDB: func(context.Context, string) (*sql.DB, error) {
				db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
				if err != nil {
					return nil, err
				}
				mock.ExpectQuery(pois.DatasetYamap.Query()).WillReturnRows(
					sqlmock.NewRows([]string{"id", "name", "lat", "lon", "elevation_m"}).
						AddRow(int64(1), "Hut", 35.0, 138.0, nil),
				)
				return db, nil
			},
		}
		router = routes.SetupRouter(h)
	})

	AfterEach(func() {
		os.RemoveAll(tempDir)
	})

	serve := func(method, target string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
		return rec
	}

	expectGeoJSONHeaders := func(rec *httptest.ResponseRecorder) {
		Expect(rec.Header().Get("Content-Type")).To(Equal("application/geo+json; charset=utf-8"))
		Expect(rec.Header().Get("Access-Control-Allow-Origin")).To(Equal("*"))
	}

	DescribeTable("POI paths",
		func(path string) {
			rec := serve(http.MethodGet, path)
			Expect(rec.Code).To(Equal(http.StatusOK))
			expectGeoJSONHeaders(rec)
			Expect(rec.Body.String()).To(ContainSubstring(`"name":"Hut"`))
			Expect(rec.Header().Get(middleware.RequestIDHeader)).NotTo(BeEmpty())
		},
		Entry("/pois", "/pois"),
		Entry("/pois.php", "/pois.php"),
		Entry("/v1/pois", "/v1/pois"),
	)

	It("should send GeoJSON and CORS headers on configuration errors", func() {
		h.ClientConfigPath = filepath.Join(tempDir, "absent.cnf")

		rec := serve(http.MethodGet, "/pois")
		Expect(rec.Code).To(Equal(http.StatusInternalServerError))
		expectGeoJSONHeaders(rec)
	})

	It("should send GeoJSON and CORS headers on database errors", func() {
		h.OpenDB = func(context.Context, string) (*sql.DB, error) {
			return nil, errors.New("connection refused")
		}

		rec := serve(http.MethodGet, "/pois?db=yamareco")
		Expect(rec.Code).To(Equal(http.StatusInternalServerError))
		expectGeoJSONHeaders(rec)
		Expect(rec.Body.String()).To(ContainSubstring(`"features":[]`))
	})

	It("should answer the CORS preflight", func() {
		rec := serve(http.MethodOptions, "/pois")
		Expect(rec.Code).To(Equal(http.StatusNoContent))
		Expect(rec.Header().Get("Access-Control-Allow-Origin")).To(Equal("*"))
	})

	It("should answer ping", func() {
		rec := serve(http.MethodGet, "/v1/ping")
		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(rec.Body.String()).To(ContainSubstring("pong!"))
	})

	It("should expose metrics", func() {
		serve(http.MethodGet, "/pois")

		rec := serve(http.MethodGet, "/metrics")
		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(rec.Body.String()).To(ContainSubstring("poi_requests_total"))
	})
})
