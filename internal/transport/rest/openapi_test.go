package rest_test

import (
	"context"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// The published OpenAPI document must stay valid and keep describing every
// route the router serves.
var _ = Describe("OpenAPI document", func() {
	var doc *openapi3.T

	BeforeEach(func() {
		loader := openapi3.NewLoader()
		loader.IsExternalRefsAllowed = true

		var err error
		doc, err = loader.LoadFromFile("../../../api/openapi.yml")
		Expect(err).NotTo(HaveOccurred())
	})

	It("should pass schema validation", func() {
		Expect(doc.Validate(context.Background())).To(Succeed())
	})

	It("should describe every served endpoint", func() {
		expected := map[string][]string{
			"/api/register":       {http.MethodPost},
			"/api/login":          {http.MethodPost},
			"/api/employees":      {http.MethodGet, http.MethodPost},
			"/api/employees/{id}": {http.MethodGet, http.MethodPut, http.MethodDelete},
			"/api/statistics":     {http.MethodGet},
			"/api/health":         {http.MethodGet},
		}

		for path, methods := range expected {
			item := doc.Paths.Find(path)
			Expect(item).NotTo(BeNil(), "path %s missing from document", path)
			for _, method := range methods {
				Expect(item.GetOperation(method)).NotTo(BeNil(), "%s %s missing from document", method, path)
			}
		}
	})

	It("should mark the employee and statistics endpoints as bearer-protected", func() {
		for _, path := range []string{"/api/employees", "/api/employees/{id}", "/api/statistics"} {
			item := doc.Paths.Find(path)
			Expect(item).NotTo(BeNil())
			for _, op := range item.Operations() {
				Expect(op.Security).NotTo(BeNil(), "operation on %s lacks a security requirement", path)
			}
		}
	})
})
