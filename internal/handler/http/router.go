package http

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/cmlabs-hris/hr-dashboard-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

// RouterOptions tags access logs and sets CORS.
type RouterOptions struct {
	AppName        string
	Version        string
	Env            string
	LogLevel       slog.Level
	AllowedOrigins []string
}

// Handlers groups every handler the router mounts.
type Handlers struct {
	Employee  EmployeeHandler
	Leave     LeaveHandler
	Asset     AssetHandler
	Training  TrainingHandler
	Record    RecordHandler
	Dashboard DashboardHandler
	Report    ReportHandler
	File      FileHandler
	Event     EventHandler
}

// Pinger reports whether the primary store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

func NewRouter(opts RouterOptions, h Handlers, ready Pinger) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(opts.Env != "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", opts.AppName),
		slog.String("version", opts.Version),
		slog.String("env", opts.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(chiMiddleware.RequestID)
	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  opts.LogLevel,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/healthz"))

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if err := ready.Ping(r.Context()); err != nil {
			slog.Warn("readiness check failed", "error", err)
			writeUnavailable(w)
			return
		}
		response.Success(w, map[string]string{"status": "ready"})
	})

	r.Get("/files/*", h.File.Serve)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/events", h.Event.Stream)

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", h.Employee.List)
			r.Get("/{id}", h.Employee.Get)
			r.Get("/{id}/self-service", h.Employee.GetSelfService)
		})

		r.Route("/leaves", func(r chi.Router) {
			r.Get("/", h.Leave.List)
			r.Post("/", h.Leave.Submit)
			r.Get("/{id}", h.Leave.Get)
			r.Post("/{id}/approve", h.Leave.Approve)
			r.Post("/{id}/reject", h.Leave.Reject)
		})

		r.Route("/assets", func(r chi.Router) {
			r.Get("/", h.Asset.List)
			r.Get("/{id}", h.Asset.Get)
			r.Post("/{id}/assign", h.Asset.Assign)
			r.Post("/{id}/maintenance", h.Asset.ScheduleMaintenance)
		})

		r.Route("/asset-assignments", func(r chi.Router) {
			r.Get("/", h.Asset.ListAssignments)
			r.Post("/{id}/return", h.Asset.Return)
		})

		r.Route("/maintenance-logs", func(r chi.Router) {
			r.Get("/", h.Asset.ListMaintenance)
			r.Post("/{id}/start", h.Asset.StartMaintenance)
			r.Post("/{id}/complete", h.Asset.CompleteMaintenance)
			r.Post("/{id}/cancel", h.Asset.CancelMaintenance)
			r.Post("/{id}/fail", h.Asset.FailMaintenance)
		})

		r.Route("/trainings", func(r chi.Router) {
			r.Get("/", h.Training.List)
			r.Get("/{id}", h.Training.Get)
			r.Post("/{id}/enroll", h.Training.Enroll)
			r.Delete("/{id}/participants/{employeeID}", h.Training.CancelEnrollment)
		})

		r.Get("/time-logs", h.Record.ListTimeLogs)
		r.Get("/candidates", h.Record.ListCandidates)
		r.Get("/performance", h.Record.ListPerformance)
		r.Get("/benefits", h.Record.ListBenefits)

		r.Route("/payroll", func(r chi.Router) {
			r.Get("/", h.Record.ListPayroll)
			r.Post("/{id}/payslip", h.Report.GeneratePayslip)
		})

		r.Post("/reports/assets", h.Report.ExportAssets)

		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/kpis", h.Dashboard.GetKPIs)
			r.Get("/employees", h.Dashboard.GetEmployees)
			r.Get("/leaves", h.Dashboard.GetLeaves)
			r.Get("/attendance", h.Dashboard.GetAttendance)
			r.Get("/payroll", h.Dashboard.GetPayroll)
			r.Get("/recruitment", h.Dashboard.GetRecruitment)
			r.Get("/performance", h.Dashboard.GetPerformance)
			r.Get("/trainings", h.Dashboard.GetTrainings)
			r.Get("/benefits", h.Dashboard.GetBenefits)
			r.Get("/assets", h.Dashboard.GetAssets)
		})
	})
	return r
}

func writeUnavailable(w http.ResponseWriter) {
	response.JSON(w, http.StatusServiceUnavailable, response.Response{
		Success: false,
		Error: &response.ErrorDetail{
			Code:    "SERVICE_UNAVAILABLE",
			Message: "Primary data source unavailable",
		},
	})
}
