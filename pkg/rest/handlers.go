package rest

import (
	"fmt"
	"math"
	"net/http"

	"github.com/aero-sizing/wingweight/internal/logger"
	"github.com/aero-sizing/wingweight/pkg/surrogate"
	"github.com/aero-sizing/wingweight/pkg/utils"
	"github.com/aero-sizing/wingweight/pkg/wingweight"
	"github.com/gin-gonic/gin"
)

// Handlers for REST API calls

// Result of evaluating one design point
type EvaluationResult struct {
	Model       string                     `json:"model"`
	Inputs      wingweight.Inputs          `json:"inputs"`
	WingWeight  float64                    `json:"wingWeight"`
	Units       string                     `json:"units"`
	OutOfBounds []surrogate.BoundViolation `json:"outOfBounds,omitempty"`
}

// Partial derivative of the estimate with respect to one parameter
type Sensitivity struct {
	Parameter  string  `json:"parameter"`
	Derivative float64 `json:"derivative"`
}

// Sensitivities of the estimate at one design point
type GradientResult struct {
	Model    string            `json:"model"`
	Inputs   wingweight.Inputs `json:"inputs"`
	Gradient []Sensitivity     `json:"gradient"`
}

func (server *Server) getModels(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, wingweight.Names())
}

func (server *Server) getModel(c *gin.Context) {
	model := server.lookup(c)
	if model == nil {
		return
	}
	c.IndentedJSON(http.StatusOK, model.Surface().Spec())
}

func (server *Server) getModelDefaults(c *gin.Context) {
	model := server.lookup(c)
	if model == nil {
		return
	}
	c.IndentedJSON(http.StatusOK, model.NewInputs())
}

func (server *Server) evaluate(c *gin.Context) {
	model := server.lookup(c)
	if model == nil {
		return
	}
	in := server.bindInputs(c, model)
	if in == nil {
		return
	}

	estimate, err := model.Evaluate(in)
	if err != nil {
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	violations, _ := model.Surface().CheckBounds(in.Vector())
	if len(violations) > 0 {
		logger.Log.Warnw("evaluating outside documented bounds", "model", model.Name(), "violations", violations)
	}
	if math.IsNaN(estimate) || math.IsInf(estimate, 0) {
		server.emitter.EmitErrorMetrics(model.Name(), ErrorTypeNonFinite)
		c.IndentedJSON(http.StatusUnprocessableEntity, gin.H{"message": "estimate of model " + model.Name() + " is not finite"})
		return
	}
	server.emitter.EmitEvaluationMetrics(model.Name(), estimate, violations)
	logger.Log.Debugw("evaluated", "model", model.Name(), "wingWeight", estimate)

	c.IndentedJSON(http.StatusOK, EvaluationResult{
		Model:       model.Name(),
		Inputs:      in,
		WingWeight:  estimate,
		Units:       model.Surface().Units(),
		OutOfBounds: violations,
	})
}

func (server *Server) gradient(c *gin.Context) {
	model := server.lookup(c)
	if model == nil {
		return
	}
	in := server.bindInputs(c, model)
	if in == nil {
		return
	}

	g, err := model.Surface().Gradient(in.Vector())
	if err != nil {
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	result := GradientResult{
		Model:    model.Name(),
		Inputs:   in,
		Gradient: make([]Sensitivity, len(g)),
	}
	for i, name := range model.Surface().ParameterNames() {
		if math.IsNaN(g[i]) || math.IsInf(g[i], 0) {
			server.emitter.EmitErrorMetrics(model.Name(), ErrorTypeNonFinite)
			c.IndentedJSON(http.StatusUnprocessableEntity, gin.H{"message": "gradient of model " + model.Name() + " is not finite"})
			return
		}
		result.Gradient[i] = Sensitivity{Parameter: name, Derivative: g[i]}
	}
	c.IndentedJSON(http.StatusOK, result)
}

// lookup the model named in the path, replying 404 when unknown
func (server *Server) lookup(c *gin.Context) *wingweight.Model {
	name := c.Param("name")
	model, err := wingweight.Lookup(name)
	if err != nil {
		server.emitter.EmitErrorMetrics(name, ErrorTypeUnknownModel)
		c.IndentedJSON(http.StatusNotFound, gin.H{"message": "model " + name + " not found"})
		return nil
	}
	return model
}

// bindInputs overlays the request body on the model defaults; an empty body evaluates the defaults
func (server *Server) bindInputs(c *gin.Context, model *wingweight.Model) wingweight.Inputs {
	in := model.NewInputs()
	data, err := c.GetRawData()
	if err != nil {
		server.emitter.EmitErrorMetrics(model.Name(), ErrorTypeDecode)
		c.IndentedJSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return nil
	}
	if len(data) == 0 {
		return in
	}
	decoded, err := utils.FromDataToSpec(data, in)
	if err == nil && *decoded == nil {
		err = fmt.Errorf("no inputs for model %s", model.Name())
	}
	if err != nil {
		server.emitter.EmitErrorMetrics(model.Name(), ErrorTypeDecode)
		c.IndentedJSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return nil
	}
	return *decoded
}
