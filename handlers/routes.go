package handlers

import (
	"database/sql"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"valuation/middleware"
	"valuation/repository"
	"valuation/services"
	"valuation/utils"
)

// Dependencies are the collaborators the HTTP surface is wired to. Audit and DB may be nil.
type Dependencies struct {
	Store  *repository.SessionStore
	Geo    services.GeoLookup
	Tokens *utils.TokenIssuer
	Sink   repository.SubmissionSink
	Audit  ChangeRecorder
	DB     *sql.DB
	Logger *zap.Logger
}

// RegisterRoutes mounts every API route on r.
func RegisterRoutes(r *gin.Engine, d Dependencies) {
	api := r.Group("/api")

	api.GET("/health", Health(d.Store, d.DB))

	// ==================== LOCATIONS ====================
	api.GET("/locations/states", GetStates(d.Geo))
	api.POST("/locations/select", SelectLocation(d.Geo))

	// ==================== APPROVALS ====================
	api.GET("/approvals/kinds", GetApprovalKinds())
	api.GET("/approvals/classify", ClassifyApproval())

	// ==================== VALUATIONS ====================
	api.POST("/valuations", CreateValuation(d.Store, d.Tokens))
	api.GET("/valuations/:id", GetValuation(d.Store))
	api.GET("/valuations/:id/sections/:section", GetValuationSection(d.Store))
	api.GET("/valuations/:id/report.pdf", DownloadValuationPDF(d.Store))
	api.GET("/valuations/:id/report.xlsx", DownloadValuationWorkbook(d.Store))
	api.GET("/valuations/:id/qrcode", GetValuationQRCode(d.Store))

	edit := api.Group("/valuations/:id", middleware.RequireEditToken(d.Tokens))
	edit.DELETE("", DeleteValuation(d.Store))
	edit.POST("/events", ApplyFieldEvent(d.Store, d.Audit, d.Logger))
	edit.POST("/submit", SubmitValuation(d.Store, d.Sink, d.Logger))
}
