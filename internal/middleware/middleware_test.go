package middleware_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/01moynul/poi-geojson/internal/logging"
	"github.com/01moynul/poi-geojson/internal/middleware"
)

var _ = Describe("Middleware", func() {
	var router *gin.Engine

	BeforeEach(func() {
		router = gin.New()
	})

	Describe("RequestID", func() {
		BeforeEach(func() {
			router.Use(middleware.RequestID())
			router.GET("/id", func(c *gin.Context) {
				c.String(http.StatusOK, middleware.GetRequestID(c))
			})
		})

		It("should generate an id when none is sent", func() {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/id", nil))

			id := rec.Header().Get(middleware.RequestIDHeader)
			Expect(id).To(HaveLen(36))
			Expect(rec.Body.String()).To(Equal(id))
		})

		It("should keep an upstream id", func() {
			req := httptest.NewRequest(http.MethodGet, "/id", nil)
			req.Header.Set(middleware.RequestIDHeader, "edge-123")
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Header().Get(middleware.RequestIDHeader)).To(Equal("edge-123"))
			Expect(rec.Body.String()).To(Equal("edge-123"))
		})
	})

	Describe("CORSMiddleware", func() {
		BeforeEach(func() {
			router.Use(middleware.CORSMiddleware())
			router.GET("/pois", func(c *gin.Context) {
				c.Status(http.StatusOK)
			})
		})

		It("should allow any origin", func() {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/pois", nil))

			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Header().Get("Access-Control-Allow-Origin")).To(Equal("*"))
		})

		It("should short-circuit the preflight", func() {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/pois", nil))

			Expect(rec.Code).To(Equal(http.StatusNoContent))
			Expect(rec.Header().Get("Access-Control-Allow-Methods")).To(ContainSubstring("GET"))
		})
	})

	Describe("RequestLogger", func() {
		var buf *bytes.Buffer

		BeforeEach(func() {
			buf = &bytes.Buffer{}
			logging.Init(logging.Config{Level: "info", Format: "json", Output: buf})

			router.Use(middleware.RequestID(), middleware.RequestLogger())
			router.GET("/fail", func(c *gin.Context) {
				c.Status(http.StatusInternalServerError)
			})
		})

		AfterEach(func() {
			logging.Init(logging.Config{Level: "info", Format: "json"})
		})

		It("should log failed requests at error level", func() {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fail?db=yamareco", nil))

			Expect(buf.String()).To(ContainSubstring(`"level":"error"`))
			Expect(buf.String()).To(ContainSubstring(`"status":500`))
			Expect(buf.String()).To(ContainSubstring(`"query":"db=yamareco"`))
		})
	})
})
