package rest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/aero-sizing/wingweight/pkg/config"
	"github.com/aero-sizing/wingweight/pkg/wingweight"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus"
)

var _ = Describe("Server", func() {
	var server *Server

	do := func(method, path, body string) *httptest.ResponseRecorder {
		var req *http.Request
		if body == "" {
			req = httptest.NewRequest(method, path, nil)
		} else {
			req = httptest.NewRequest(method, path, strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
		}
		w := httptest.NewRecorder()
		server.Handler().ServeHTTP(w, req)
		return w
	}

	BeforeEach(func() {
		server = NewServer(prometheus.NewRegistry())
	})

	Context("model descriptions", func() {
		It("lists the models", func() {
			w := do(http.MethodGet, "/models", "")
			Expect(w.Code).To(Equal(http.StatusOK))

			var names []string
			Expect(json.Unmarshal(w.Body.Bytes(), &names)).To(Succeed())
			Expect(names).To(Equal([]string{wingweight.Pegasus, wingweight.TBW}))
		})

		It("describes a model surface", func() {
			w := do(http.MethodGet, "/models/tbw", "")
			Expect(w.Code).To(Equal(http.StatusOK))

			var spec config.SurfaceSpec
			Expect(json.Unmarshal(w.Body.Bytes(), &spec)).To(Succeed())
			Expect(spec.Name).To(Equal(wingweight.TBW))
			Expect(spec.Parameters).To(HaveLen(8))
			Expect(spec.Quadratic).To(HaveLen(36))
			Expect(spec.Intercept).To(Equal(-4257.26345359943))
		})

		It("returns the documented defaults", func() {
			w := do(http.MethodGet, "/models/pegasus/defaults", "")
			Expect(w.Code).To(Equal(http.StatusOK))

			var in wingweight.PegasusInputs
			Expect(json.Unmarshal(w.Body.Bytes(), &in)).To(Succeed())
			Expect(in).To(Equal(wingweight.DefaultPegasusInputs()))
		})

		It("rejects unknown models", func() {
			w := do(http.MethodGet, "/models/concorde", "")
			Expect(w.Code).To(Equal(http.StatusNotFound))
			Expect(w.Body.String()).To(ContainSubstring("model concorde not found"))
		})
	})

	Context("evaluation", func() {
		It("evaluates the PEGASUS baseline", func() {
			w := do(http.MethodPost, "/evaluate/pegasus", `{"battery_weight_ratio": 0.3}`)
			Expect(w.Code).To(Equal(http.StatusOK))

			var result struct {
				Model       string                   `json:"model"`
				Inputs      wingweight.PegasusInputs `json:"inputs"`
				WingWeight  float64                  `json:"wingWeight"`
				Units       string                   `json:"units"`
				OutOfBounds []map[string]any         `json:"outOfBounds"`
			}
			Expect(json.Unmarshal(w.Body.Bytes(), &result)).To(Succeed())
			Expect(result.Model).To(Equal(wingweight.Pegasus))
			Expect(result.Inputs).To(Equal(wingweight.BaselinePegasusInputs()))
			Expect(result.WingWeight).To(BeNumerically("~", wingweight.PegasusJMPReference, 1e-9))
			Expect(result.Units).To(Equal("lb"))
			Expect(result.OutOfBounds).To(BeEmpty())
		})

		It("evaluates the defaults when the body is empty", func() {
			w := do(http.MethodPost, "/evaluate/tbw", "")
			Expect(w.Code).To(Equal(http.StatusOK))

			var result EvaluationResult
			result.Inputs = &wingweight.TBWInputs{}
			Expect(json.Unmarshal(w.Body.Bytes(), &result)).To(Succeed())
			Expect(result.WingWeight).To(BeNumerically("~", wingweight.TBWJMPReference, 1e-8))
		})

		It("reports bound violations without refusing to evaluate", func() {
			w := do(http.MethodPost, "/evaluate/tbw", `{"mtow": 200000, "wing_sweep_delta": -20}`)
			Expect(w.Code).To(Equal(http.StatusOK))

			var result struct {
				OutOfBounds []struct {
					Parameter string  `json:"parameter"`
					Value     float64 `json:"value"`
				} `json:"outOfBounds"`
				WingWeight float64 `json:"wingWeight"`
			}
			Expect(json.Unmarshal(w.Body.Bytes(), &result)).To(Succeed())
			Expect(result.OutOfBounds).To(HaveLen(2))
			Expect(result.OutOfBounds[0].Parameter).To(Equal(wingweight.WingSweepDelta))
			Expect(result.OutOfBounds[1].Parameter).To(Equal(wingweight.MTOW))
			Expect(result.OutOfBounds[1].Value).To(Equal(200000.0))

			in := wingweight.DefaultTBWInputs()
			in.MTOW = 200000
			in.WingSweepDelta = -20
			Expect(result.WingWeight).To(Equal(wingweight.EvaluateTBW(in)))
		})

		It("rejects unknown fields", func() {
			w := do(http.MethodPost, "/evaluate/pegasus", `{"wing_span": 90}`)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("rejects malformed bodies", func() {
			w := do(http.MethodPost, "/evaluate/pegasus", `{"mtow": "heavy"}`)
			Expect(w.Code).To(Equal(http.StatusBadRequest))

			w = do(http.MethodPost, "/evaluate/pegasus", `null`)
			Expect(w.Code).To(Equal(http.StatusBadRequest))

			w = do(http.MethodPost, "/evaluate/pegasus", `{"mtow": 50000} {"wing_span": 90}`)
			Expect(w.Code).To(Equal(http.StatusBadRequest))

			w = do(http.MethodPost, "/evaluate/pegasus", `{"mtow": 50000} garbage`)
			Expect(w.Code).To(Equal(http.StatusBadRequest))

			w = do(http.MethodPost, "/gradient/tbw", `{"mtow": 150000}{}`)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("rejects estimates that overflow", func() {
			w := do(http.MethodPost, "/evaluate/pegasus", `{"mtow": 1e300}`)
			Expect(w.Code).To(Equal(http.StatusUnprocessableEntity))

			metrics := do(http.MethodGet, MetricsPath, "").Body.String()
			Expect(metrics).To(ContainSubstring(`wingweight_request_errors_total{error_type="non_finite",model="pegasus"} 1`))
			Expect(metrics).NotTo(ContainSubstring(`wingweight_evaluations_total{model="pegasus"}`))
			Expect(metrics).NotTo(ContainSubstring(`wingweight_last_estimate_pounds{model="pegasus"}`))
		})

		It("rejects unknown models", func() {
			w := do(http.MethodPost, "/evaluate/concorde", `{}`)
			Expect(w.Code).To(Equal(http.StatusNotFound))
		})
	})

	Context("gradient", func() {
		It("returns one sensitivity per parameter in fitted order", func() {
			w := do(http.MethodPost, "/gradient/tbw", "")
			Expect(w.Code).To(Equal(http.StatusOK))

			var result struct {
				Model    string        `json:"model"`
				Gradient []Sensitivity `json:"gradient"`
			}
			Expect(json.Unmarshal(w.Body.Bytes(), &result)).To(Succeed())
			Expect(result.Model).To(Equal(wingweight.TBW))
			Expect(result.Gradient).To(HaveLen(8))
			Expect(result.Gradient[0].Parameter).To(Equal(wingweight.WingAFThickness))
			Expect(result.Gradient[7].Parameter).To(Equal(wingweight.EngineWeight))
		})
	})

	Context("metrics", func() {
		It("exposes evaluation counters", func() {
			Expect(do(http.MethodPost, "/evaluate/pegasus", "").Code).To(Equal(http.StatusOK))
			Expect(do(http.MethodPost, "/evaluate/pegasus", `{"wing_area": 900}`).Code).To(Equal(http.StatusOK))

			w := do(http.MethodGet, MetricsPath, "")
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(ContainSubstring(`wingweight_evaluations_total{model="pegasus"} 2`))
			Expect(w.Body.String()).To(ContainSubstring(`wingweight_bound_violations_total{model="pegasus",parameter="wing_area"} 1`))
		})
	})
})
