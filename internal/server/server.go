package server

import (
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ChicagoDave/tradecalc/pkg/bending"
	"github.com/ChicagoDave/tradecalc/pkg/circuit"
	"github.com/ChicagoDave/tradecalc/pkg/conduit"
	"github.com/ChicagoDave/tradecalc/pkg/evaluate"
	"github.com/ChicagoDave/tradecalc/pkg/job"
	"github.com/ChicagoDave/tradecalc/pkg/nec"
	"github.com/ChicagoDave/tradecalc/pkg/validation"
	"github.com/ChicagoDave/tradecalc/pkg/wiring"
)

// Server exposes the calculators as a JSON API.
type Server struct {
	projectPath string
	port        int
	logger      *zap.Logger
}

// New creates a server. projectPath may be empty, in which case
// GET /api/run is not available.
func New(projectPath string, port int, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		projectPath: projectPath,
		port:        port,
		logger:      logger,
	}
}

// Start launches the HTTP server.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Info("tradecalc server starting",
		zap.String("addr", "http://localhost"+addr),
		zap.String("project", s.projectPath))

	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}

// Handler returns the router.
func (s *Server) Handler() http.Handler {
	router := gin.New()
	router.Use(gin.Recovery(), s.requestLogger())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	api.GET("/tables", s.handleTables)
	api.GET("/checklist", s.handleChecklist)
	api.GET("/loto", s.handleLOTO)
	api.GET("/ground/:amps", s.handleGround)
	api.POST("/voltage-drop", s.handleVoltageDrop)
	api.POST("/conduit-fill", s.handleConduitFill)
	api.POST("/offset", s.handleOffset)
	api.POST("/three-way", s.handleThreeWay)
	api.POST("/troubleshoot", s.handleTroubleshoot)
	api.GET("/run", s.handleRunProject)
	api.POST("/run", s.handleRun)

	return router
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Debug("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("elapsed", time.Since(start)))
	}
}

func (s *Server) handleTables(c *gin.Context) {
	c.JSON(http.StatusOK, nec.Tables())
}

func (s *Server) handleChecklist(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"steps": circuit.TroubleshootingChecklist()})
}

func (s *Server) handleLOTO(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"steps":     circuit.LOTOSteps(),
		"procedure": circuit.LOTOProcedure(),
	})
}

func (s *Server) handleGround(c *gin.Context) {
	amps, err := strconv.Atoi(c.Param("amps"))
	if err != nil {
		badRequest(c, fmt.Errorf("rating must be an integer: %w", err))
		return
	}
	gauge, err := nec.SizeGroundConductor(amps)
	if err != nil {
		unprocessable(c, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"rating_amps": amps, "gauge": gauge})
}

type voltageDropResponse struct {
	wiring.Drop
	ExceedsRecommended bool `json:"exceeds_recommended"`
}

func (s *Server) handleVoltageDrop(c *gin.Context) {
	var run wiring.Run
	if err := c.ShouldBindJSON(&run); err != nil {
		badRequest(c, err)
		return
	}
	d, err := wiring.VoltageDrop(run)
	if err != nil {
		code := "non_positive_voltage"
		if errors.Is(err, wiring.ErrUnknownGauge) {
			code = "unknown_gauge"
		}
		unprocessable(c, err, code)
		return
	}
	if !finite(d.Volts, d.Percent) {
		unprocessable(c, errNonFinite, codeNonFinite)
		return
	}
	c.JSON(http.StatusOK, voltageDropResponse{Drop: d, ExceedsRecommended: d.ExceedsRecommended()})
}

type conduitFillRequest struct {
	ConduitArea   float64 `json:"conduit_area"`
	ConductorArea float64 `json:"conductor_area"`
	Conductors    int     `json:"conductors"`
	WireType      string  `json:"wire_type"`
}

func (s *Server) handleConduitFill(c *gin.Context) {
	var req conduitFillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if req.ConduitArea <= 0 {
		unprocessable(c, errors.New("conduit_area must be > 0"), "")
		return
	}
	a := conduit.Fill(req.ConduitArea, req.ConductorArea, req.Conductors)
	if !finite(a.Ratio, a.Percent) {
		unprocessable(c, errNonFinite, codeNonFinite)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"assessment":      a,
		"max_fill_factor": conduit.MaxFillFactor(req.WireType, req.Conductors),
	})
}

type offsetRequest struct {
	Height float64 `json:"height"`
	Angle  float64 `json:"angle"`
}

func (s *Server) handleOffset(c *gin.Context) {
	var req offsetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	layout, report := bending.Offset(req.Height, req.Angle)
	if !finite(layout.DistanceBetweenBends, layout.Shrink) {
		unprocessable(c, errNonFinite, codeNonFinite)
		return
	}
	c.JSON(http.StatusOK, gin.H{"layout": layout, "validation": report})
}

type threeWayRequest struct {
	DoorSwitch bool `json:"door_switch"`
	BedSwitch  bool `json:"bed_switch"`
}

func (s *Server) handleThreeWay(c *gin.Context) {
	var req threeWayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": circuit.SolveThreeWay(req.DoorSwitch, req.BedSwitch)})
}

type troubleshootRequest struct {
	VoltageAtPanel float64 `json:"voltage_at_panel"`
	BreakerTripped bool    `json:"breaker_tripped"`
	ContinuityOhms float64 `json:"continuity_ohms"`
}

func (s *Server) handleTroubleshoot(c *gin.Context) {
	var req troubleshootRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, circuit.TroubleshootNoPower(req.VoltageAtPanel, req.BreakerTripped, req.ContinuityOhms))
}

type runResponse struct {
	Results    *evaluate.Results  `json:"results"`
	Validation *validation.Report `json:"validation"`
}

func (s *Server) handleRun(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		badRequest(c, err)
		return
	}
	j, err := job.Parse(body)
	if err != nil {
		badRequest(c, err)
		return
	}
	s.respondRun(c, j)
}

func (s *Server) handleRunProject(c *gin.Context) {
	if s.projectPath == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "server started without a project"})
		return
	}
	j, err := job.LoadProject(s.projectPath)
	if err != nil {
		s.logger.Error("loading project job", zap.String("project", s.projectPath), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	s.respondRun(c, j)
}

func (s *Server) respondRun(c *gin.Context, j *job.Job) {
	res, report := evaluate.Run(j)
	s.logger.Info("job evaluated",
		zap.String("run_id", res.RunID),
		zap.String("job", res.Job),
		zap.String("summary", report.Summary))
	c.JSON(http.StatusOK, runResponse{Results: res, Validation: report})
}

const codeNonFinite = "non_finite_result"

var errNonFinite = errors.New("result is not a finite number")

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

func unprocessable(c *gin.Context, err error, code string) {
	body := gin.H{"error": err.Error()}
	if code != "" {
		body["code"] = code
	}
	c.JSON(http.StatusUnprocessableEntity, body)
}
