package controllers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"os"
	"path"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vnkhanh/vacation-server/config"
	"github.com/vnkhanh/vacation-server/middleware"
	"github.com/vnkhanh/vacation-server/models"
)

type exportRequest struct {
	Format    string  `json:"format"`
	RangeFrom *string `json:"range_from,omitempty"`
	RangeTo   *string `json:"range_to,omitempty"`
}

// CreateExport queues a CSV export of a trip's expenses and processes it in
// the background.
func CreateExport(c *gin.Context) {
	trip := c.MustGet(middleware.CtxTrip).(models.Trip)

	var req exportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload"})
		return
	}
	if req.Format == "" {
		req.Format = "csv"
	}
	if req.Format != "csv" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Only csv is supported"})
		return
	}

	var fromPtr, toPtr *time.Time
	if req.RangeFrom != nil {
		if t, err := time.Parse(time.RFC3339, *req.RangeFrom); err == nil {
			fromPtr = &t
		}
	}
	if req.RangeTo != nil {
		if t, err := time.Parse(time.RFC3339, *req.RangeTo); err == nil {
			toPtr = &t
		}
	}

	jobID := uuid.New().String()
	job := models.ExportJob{
		JobID:     jobID,
		TripID:    trip.ID,
		Format:    req.Format,
		RangeFrom: fromPtr,
		RangeTo:   toPtr,
		Status:    "queued",
	}
	config.DB.Create(&job)

	go processExportJob(jobID)

	c.JSON(http.StatusAccepted, gin.H{
		"job_id": jobID,
		"status": "queued",
	})
}

// GetExport returns the finished file, or the job status while it runs.
func GetExport(c *gin.Context) {
	jobID := c.Param("job_id")
	var job models.ExportJob
	if err := config.DB.First(&job, "job_id = ?", jobID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"message": "Job not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "DB error"})
		return
	}

	if job.Status == "done" && job.FilePath != nil {
		c.FileAttachment(*job.FilePath, path.Base(*job.FilePath))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"job_id": job.JobID,
		"status": job.Status,
		"error":  job.ErrorMsg,
	})
}

func processExportJob(jobID string) {
	var job models.ExportJob
	if err := config.DB.First(&job, "job_id = ?", jobID).Error; err != nil {
		return
	}
	config.DB.Model(&job).Update("status", "processing")

	outDir := "./exports"
	os.MkdirAll(outDir, 0755)

	filename := fmt.Sprintf("export_%s.csv", job.JobID)
	outPath := path.Join(outDir, filename)

	f, err := os.Create(outPath)
	if err != nil {
		em := err.Error()
		config.DB.Model(&job).Updates(map[string]interface{}{"status": "failed", "error_msg": em})
		return
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{"expense_id", "date", "category", "description", "amount", "currency"}
	w.Write(header)

	var expenses []models.Expense
	q := config.DB.Where("trip_id = ?", job.TripID).Order("date ASC, id ASC")
	if job.RangeFrom != nil {
		q = q.Where("created_at >= ?", job.RangeFrom)
	}
	if job.RangeTo != nil {
		q = q.Where("created_at <= ?", job.RangeTo)
	}
	if err := q.Find(&expenses).Error; err != nil {
		em := err.Error()
		config.DB.Model(&job).Updates(map[string]interface{}{"status": "failed", "error_msg": em})
		return
	}

	for _, e := range expenses {
		desc := ""
		if e.Description != nil {
			desc = *e.Description
		}
		row := []string{
			fmt.Sprintf("%d", e.ID),
			e.Date,
			e.Category,
			desc,
			fmt.Sprintf("%.2f", e.Amount),
			e.Currency,
		}
		w.Write(row)
	}

	fp := outPath
	config.DB.Model(&job).Updates(map[string]interface{}{"status": "done", "file_path": fp})
}
