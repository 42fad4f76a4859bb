package handlers

import (
	"bytes"
	"fmt"
	"image/png"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"valuation/repository"
	"valuation/services"
)

// DownloadValuationPDF godoc
// @Summary      Download the valuation report as PDF
// @Tags         reports
// @Produce      application/pdf
// @Param        id   path      string  true  "Valuation ID"
// @Success      200  {file}    file    "PDF report"
// @Failure      404  {object}  models.ErrorResponse
// @Router       /api/valuations/{id}/report.pdf [get]
func DownloadValuationPDF(store *repository.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := store.Get(c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}

		var buf bytes.Buffer
		if err := services.BuildValuationPDF(&buf, session.Report()); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate PDF"})
			return
		}

		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=valuation_%s.pdf", session.ID()))
		c.Data(http.StatusOK, "application/pdf", buf.Bytes())
	}
}

// DownloadValuationWorkbook godoc
// @Summary      Download the valuation report as an Excel workbook
// @Tags         reports
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        id   path      string  true  "Valuation ID"
// @Success      200  {file}    file    "XLSX workbook"
// @Failure      404  {object}  models.ErrorResponse
// @Router       /api/valuations/{id}/report.xlsx [get]
func DownloadValuationWorkbook(store *repository.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := store.Get(c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}

		f, err := services.BuildValuationWorkbook(session.Report())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		defer f.Close()

		buf, err := f.WriteToBuffer()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write workbook"})
			return
		}

		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=valuation_%s.xlsx", session.ID()))
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
	}
}

// GetValuationQRCode godoc
// @Summary      QR code carrying the valuation reference
// @Tags         reports
// @Produce      image/png
// @Param        id    path      string  true   "Valuation ID"
// @Param        size  query     int     false  "QR size in pixels (128-1024)"
// @Success      200  {file}    file    "PNG image"
// @Failure      404  {object}  models.ErrorResponse
// @Router       /api/valuations/{id}/qrcode [get]
func GetValuationQRCode(store *repository.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := store.Get(c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}

		size, err := strconv.Atoi(c.DefaultQuery("size", "256"))
		if err != nil || size < 128 || size > 1024 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "size must be between 128 and 1024"})
			return
		}

		img, err := services.BuildReferenceQR(session.Report(), size)
		if err != nil {
			c.String(http.StatusInternalServerError, "QR code generation failed")
			return
		}

		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			c.String(http.StatusInternalServerError, "Failed to encode image")
			return
		}
		c.Data(http.StatusOK, "image/png", buf.Bytes())
	}
}
